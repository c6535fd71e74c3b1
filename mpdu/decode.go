// Package mpdu implements the core 802.11 MAC frame decoder (IEEE Std
// 802.11-2012 §8 MPDU formats): Frame Control dispatch, header parsing for
// Management/Control/Data frames, subfield decoding, and the
// information-element stream. The decoder is stateless, synchronous and
// reentrant — a pure function of its inputs (spec.md §5).
//
// Grounded on _examples/original_source/radio/mpdu.py, with the
// cursor/bit-reading idiom carried from
// _examples/heistp-wanonpcap/radiotap_80211.go.
package mpdu

import "encoding/hex"

// MinFrameSize is the minimum MPDU size: 2 bytes frame control + 2 bytes
// duration + 6 bytes addr1.
const MinFrameSize = 10

// MaxMPDU is the maximum MPDU size in bytes (spec.md §6). The decoder
// accepts any buffer from MinFrameSize up to this; larger buffers still
// decode, the limit is advisory for upstream callers.
const MaxMPDU = 7991

// Decode parses buffer (an MPDU, optionally with a trailing 4-byte FCS) into
// a Record, or returns a DecodeError. buffer is only read, never mutated or
// retained past the call; any slices captured in the returned Record are
// freshly allocated copies.
func Decode(buffer []byte, hasFCS bool) (*Record, error) {
	if len(buffer) < MinFrameSize {
		return nil, errFrameSize()
	}

	ft, st, err := classify(buffer[0])
	if err != nil {
		return nil, err
	}
	flags := buffer[1]

	r := &Record{
		FrameControl: FrameControl{Type: ft, Subtype: st, Flags: flags},
	}
	r.present("frame_control")
	r.present("duration")
	r.present("addr1")

	frame := buffer
	if hasFCS {
		if len(frame) < 4 {
			return nil, errFrameSize()
		}
		fcsBytes := frame[len(frame)-4:]
		fcs := uint32(fcsBytes[0]) | uint32(fcsBytes[1])<<8 |
			uint32(fcsBytes[2])<<16 | uint32(fcsBytes[3])<<24
		r.FCS = &fcs
		frame = frame[:len(frame)-4]
	}

	c := NewCursor(frame)
	if _, err := c.ReadU16LE("framectrl"); err != nil {
		return nil, err
	}
	duration, err := c.ReadU16LE("duration")
	if err != nil {
		return nil, err
	}
	r.Duration = duration
	addr1, err := c.ReadBytes("addr1", 6)
	if err != nil {
		return nil, err
	}
	r.Addr1 = formatMAC(addr1)

	switch ft {
	case FrameCtrl:
		err = parseControl(c, st, r)
	case FrameMgmt:
		err = parseMgmt(c, st, r)
	case FrameData:
		err = parseData(c, st, r)
	default:
		// Unreachable: classify() never returns FrameRsrv without an error
		// (see dispatch.go), preserved for defense and parity with the
		// source's dead "unresolved" branch.
		err = errUnresolved()
	}
	if err != nil {
		return nil, err
	}

	r.Version = 0
	r.Size = Size{Header: c.Position(), Total: c.Position()}
	if hasFCS {
		r.present("fcs")
		r.Size.Total += 4
	}
	return r, nil
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}
