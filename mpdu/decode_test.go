package mpdu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/0x0mar/wraith/mpdu"
)

// Scenario 1: minimal CTS.
func TestDecodeMinimalCTS(t *testing.T) {
	buf := []byte{0xC4, 0x00, 0x3A, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	r, err := mpdu.Decode(buf, false)
	require.NoError(t, err)
	assert.Equal(t, mpdu.FrameCtrl, r.FrameControl.Type)
	assert.Equal(t, mpdu.STCtrlCTS, r.FrameControl.Subtype)
	assert.Equal(t, uint16(0x013A), r.Duration)
	assert.Equal(t, mpdu.Broadcast, r.Addr1)
	assert.Equal(t, 10, r.Size.Header)
	assert.Equal(t, 10, r.Size.Total)
	assert.NotContains(t, r.Present, "addr2")
}

// Scenario 2: RTS with FCS.
func TestDecodeRTSWithFCS(t *testing.T) {
	buf := []byte{
		0xB4, 0x00, 0x3A, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // min header
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // addr2
		0xDE, 0xAD, 0xBE, 0xEF, // fcs trailer
	}
	r, err := mpdu.Decode(buf, true)
	require.NoError(t, err)
	assert.Equal(t, mpdu.STCtrlRTS, r.FrameControl.Subtype)
	assert.Equal(t, "11:22:33:44:55:66", r.Addr2)
	assert.Equal(t, 16, r.Size.Header)
	assert.Equal(t, 20, r.Size.Total)
	require.NotNil(t, r.FCS)
	assert.Equal(t, uint32(0xEFBEADDE), *r.FCS)
	assert.Contains(t, r.Present, "fcs")
}

// Scenario 3: beacon with IEs.
func TestDecodeBeacon(t *testing.T) {
	buf := []byte{0x80, 0x00, 0x00, 0x00}
	buf = append(buf, bcast()...)  // addr1
	buf = append(buf, apMAC()...)  // addr2
	buf = append(buf, apMAC()...)  // addr3
	buf = append(buf, 0x00, 0x00)  // seqctrl
	buf = append(buf, leU64(0)...) // timestamp
	buf = append(buf, leU16(100)...)
	buf = append(buf, leU16(0x0421)...)
	buf = append(buf, 0x00, 0x04, 't', 'e', 's', 't')
	buf = append(buf, 0x01, 0x02, 0x82, 0x84)

	r, err := mpdu.Decode(buf, false)
	require.NoError(t, err)
	require.NotNil(t, r.FixedParams)
	require.NotNil(t, r.FixedParams.BeaconIntUs)
	assert.Equal(t, uint32(100*1024), *r.FixedParams.BeaconIntUs)
	require.Len(t, r.InfoElements, 2)
	assert.Equal(t, byte(0), r.InfoElements[0].TagID)
	assert.Equal(t, []byte("test"), r.InfoElements[0].Raw)
	assert.Equal(t, byte(1), r.InfoElements[1].TagID)
	assert.Equal(t, []float32{1.0, 2.0}, r.InfoElements[1].Rates)
}

// Scenario 4: compressed Block-Ack.
func TestDecodeBlockAckCompressed(t *testing.T) {
	buf := []byte{0x94, 0x00, 0x00, 0x00}
	buf = append(buf, apMAC()...) // addr1
	buf = append(buf, apMAC()...) // addr2
	buf = append(buf, leU16(0b00000101)...) // ba control: compressed-bm=1, ackpolicy=1
	buf = append(buf, 0x00, 0x00)           // seq control
	buf = append(buf, make([]byte, 8)...)   // bitmap

	r, err := mpdu.Decode(buf, false)
	require.NoError(t, err)
	require.NotNil(t, r.BAControl)
	assert.Equal(t, mpdu.BATypeCompressed, r.BAControl.Type)
	require.NotNil(t, r.BAInfo)
	assert.Len(t, r.BAInfo.BABitmap, 16)
}

// Scenario 5: Data to-DS+from-DS with QoS.
func TestDecodeDataQoS(t *testing.T) {
	buf := []byte{0x88, 0x03, 0x00, 0x00}
	buf = append(buf, apMAC()...)
	buf = append(buf, apMAC()...)
	buf = append(buf, apMAC()...)
	buf = append(buf, 0x00, 0x00) // seqctrl
	buf = append(buf, apMAC()...) // addr4
	buf = append(buf, 0x07, 0x00) // qos

	r, err := mpdu.Decode(buf, false)
	require.NoError(t, err)
	assert.Contains(t, r.Present, "addr4")
	require.NotNil(t, r.QoS)
	assert.Equal(t, uint8(7), r.QoS.TID)
	assert.False(t, r.QoS.EOSP)
	assert.Equal(t, uint8(0), r.QoS.AckPolicy)
	assert.False(t, r.QoS.AMSDU)
	assert.Equal(t, uint8(0), r.QoS.TXOP)
}

// Scenario 6: undersized buffer.
func TestDecodeUndersized(t *testing.T) {
	_, err := mpdu.Decode(make([]byte, 8), false)
	require.Error(t, err)
	var de *mpdu.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, mpdu.ErrInvalidFrameSize, de.Kind)
}

func TestDecodeUnknownControlSubtype(t *testing.T) {
	buf := make([]byte, 10)
	buf[0] = 0x04 // control, subtype 0 (reserved)
	_, err := mpdu.Decode(buf, false)
	require.Error(t, err)
	var de *mpdu.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, mpdu.ErrUnknownControlSubtype, de.Kind)
}

func TestSubtypeName(t *testing.T) {
	assert.Equal(t, "beacon", mpdu.SubtypeName(mpdu.FrameMgmt, mpdu.STMgmtBeacon))
	assert.Equal(t, "rts", mpdu.SubtypeName(mpdu.FrameCtrl, mpdu.STCtrlRTS))
	assert.Equal(t, "qos-data", mpdu.SubtypeName(mpdu.FrameData, mpdu.STDataQoSData))
}

// --- property-based tests (spec.md §8) ---

// P1/P2: size invariants.
func TestPropertySizeInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		buf := genCTSFrame(rt)
		r, err := mpdu.Decode(buf, false)
		require.NoError(rt, err)
		assert.Equal(rt, r.Size.Header, r.Size.Total)
		assert.LessOrEqual(rt, r.Size.Total, len(buf))

		withFCS := append(append([]byte{}, buf...), 0, 0, 0, 0)
		r2, err := mpdu.Decode(withFCS, true)
		require.NoError(rt, err)
		assert.Equal(rt, 4, r2.Size.Total-r2.Size.Header)
	})
}

func genCTSFrame(rt *rapid.T) []byte {
	buf := make([]byte, 10)
	buf[0] = 0xC4
	buf[1] = byte(rapid.IntRange(0, 255).Draw(rt, "flags"))
	for i := 2; i < 10; i++ {
		buf[i] = byte(rapid.IntRange(0, 255).Draw(rt, "b"))
	}
	return buf
}

// P4: sequence_control round-trips fragno/seqno.
func TestPropertySequenceControl(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := uint16(rapid.IntRange(0, 0xFFFF).Draw(rt, "v"))
		buf := []byte{0x08, 0x00, 0x00, 0x00}
		buf = append(buf, apMAC()...)
		buf = append(buf, apMAC()...)
		buf = append(buf, apMAC()...)
		buf = append(buf, byte(v), byte(v>>8))

		r, err := mpdu.Decode(buf, false)
		require.NoError(rt, err)
		sc := r.SeqControl
		require.NotNil(rt, sc)
		assert.Less(rt, sc.FragNo, uint16(16))
		assert.Less(rt, sc.SeqNo, uint16(4096))
		assert.Equal(rt, v, sc.FragNo|(sc.SeqNo<<4))
	})
}

// MAC round-trip: bytes -> string -> bytes.
func TestPropertyMACRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var mac [6]byte
		for i := range mac {
			mac[i] = byte(rapid.IntRange(0, 255).Draw(rt, "b"))
		}
		buf := make([]byte, 10)
		buf[0] = 0xC4
		copy(buf[4:], mac[:])

		r, err := mpdu.Decode(buf, false)
		require.NoError(rt, err)

		parsed, err := mpdu.ParseMACString(r.Addr1)
		require.NoError(rt, err)
		assert.Equal(rt, mac, parsed)
	})
}

func bcast() []byte { return []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF} }
func apMAC() []byte { return []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55} }

func leU16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func leU64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
