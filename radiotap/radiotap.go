// Package radiotap strips the variable-length radiotap header that
// precedes an 802.11 MPDU captured in monitor mode (pcap linktype 127,
// DLT_IEEE802_11_RADIOTAP), so a caller can locate the MPDU start offset
// before handing the remainder to mpdu.Decode.
//
// This is ambient capture-side plumbing, not part of the decoder core
// (spec.md §1 treats the capture loop as an external collaborator); it is
// adapted from the RadiotapHeader type in
// _examples/heistp-wanonpcap/radiotap_80211.go, trimmed to header framing
// only (the teacher's file also anonymized MAC addresses in place, which is
// out of scope here).
package radiotap

import (
	"encoding/binary"
	"fmt"
)

// HeaderLen is the minimum radiotap header size: version, pad, length and
// the first presence-flags word.
const HeaderLen = 8

// Header is the fixed portion of a radiotap header (the variable-length
// field data that follows Present is not interpreted).
type Header struct {
	Version byte
	Pad     byte
	Len     uint16
	Present uint32
}

// Parse reads the radiotap header from the front of b and returns it along
// with b sliced to the MPDU that follows (b[h.Len:]).
func Parse(b []byte) (Header, []byte, error) {
	var h Header
	if len(b) < HeaderLen {
		return h, nil, fmt.Errorf("radiotap: short buffer: need %d bytes, have %d", HeaderLen, len(b))
	}
	h.Version = b[0]
	h.Pad = b[1]
	h.Len = binary.LittleEndian.Uint16(b[2:4])
	h.Present = binary.LittleEndian.Uint32(b[4:8])
	if int(h.Len) > len(b) {
		return h, nil, fmt.Errorf("radiotap: header length %d exceeds buffer length %d", h.Len, len(b))
	}
	return h, b[h.Len:], nil
}
