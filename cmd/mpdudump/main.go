// Command mpdudump reads a pcap capture (DLT_IEEE802_11_RADIOTAP, linktype
// 127) from stdin (no file argument is accepted) and, with --verbose, logs
// a structured summary of every 802.11 MPDU it decodes. It exists to exercise the mpdu package against real
// captures; the core decoder itself takes no flags, reads no files, and
// performs no I/O (spec.md §6).
//
// Adapted from the pcap streaming loop in
// _examples/heistp-wanonpcap/main.go (Magic/GlobalHeader/PacketHeader,
// dispatch by pcap linktype): where the teacher anonymized addresses in
// place, mpdudump instead decodes and logs each frame.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/0x0mar/wraith/mpdu"
	"github.com/0x0mar/wraith/radiotap"
)

// radiotapLinkType is the pcap linktype for 802.11 frames preceded by a
// radiotap header. https://www.tcpdump.org/linktypes.html
const radiotapLinkType = 127

// MagicLE / MagicBE are the pcap global-header magic values.
const (
	MagicLE Magic = 0xd4c3b2a1
	MagicBE Magic = 0xa1b2c3d4
)

// Magic is a pcap file's magic number, which also carries its byte order.
type Magic uint32

func (m *Magic) Read(r io.Reader) error {
	if err := binary.Read(r, binary.BigEndian, m); err != nil {
		return err
	}
	if *m != MagicLE && *m != MagicBE {
		return fmt.Errorf("bad magic: 0x%x", uint32(*m))
	}
	return nil
}

func (m *Magic) ByteOrder() binary.ByteOrder {
	if *m == MagicLE {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// GlobalHeader is a pcap global header (magic read separately).
type GlobalHeader struct {
	VersionMajor uint16
	VersionMinor uint16
	ThisZone     int32
	Sigfigs      uint32
	Snaplen      uint32
	LinkLayer    uint32
}

// PacketHeader is a pcap per-packet header.
type PacketHeader struct {
	TimestampSec  uint32
	TimestampUsec uint32
	Len           uint32
	OrigLen       uint32
}

func run(r io.Reader, log *logrus.Logger, hasFCS bool) (packets uint64, decoded uint64, err error) {
	br := bufio.NewReader(r)

	var magic Magic
	if err = magic.Read(br); err != nil {
		return
	}
	order := magic.ByteOrder()

	var gh GlobalHeader
	if err = binary.Read(br, order, &gh); err != nil {
		return
	}
	log.Infof("pcap: byte order %s, version %d.%d, snaplen %d, linktype %d",
		order, gh.VersionMajor, gh.VersionMinor, gh.Snaplen, gh.LinkLayer)
	if gh.LinkLayer != radiotapLinkType {
		err = fmt.Errorf("unsupported link layer %d (want %d, DLT_IEEE802_11_RADIOTAP)",
			gh.LinkLayer, radiotapLinkType)
		return
	}

	for {
		var ph PacketHeader
		if err = binary.Read(br, order, &ph); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		if ph.Len > mpdu.MaxMPDU+radiotap.HeaderLen {
			err = fmt.Errorf("packet %d exceeds max size", packets)
			return
		}
		b := make([]byte, ph.Len)
		if _, err = io.ReadFull(br, b); err != nil {
			return
		}
		packets++

		rh, mpduBytes, perr := radiotap.Parse(b)
		if perr != nil {
			log.WithError(perr).Warnf("packet %d: radiotap parse failed", packets)
			continue
		}

		rec, derr := mpdu.Decode(mpduBytes, hasFCS)
		if derr != nil {
			log.WithFields(logrus.Fields{
				"packet":       packets,
				"radiotap_len": rh.Len,
			}).WithError(derr).Debug("mpdu decode failed")
			continue
		}
		decoded++
		log.WithFields(logrus.Fields{
			"packet":  packets,
			"type":    rec.FrameControl.Type,
			"subtype": mpdu.SubtypeName(rec.FrameControl.Type, rec.FrameControl.Subtype),
			"addr1":   rec.Addr1,
		}).Debug("decoded mpdu")
	}
}

func main() {
	hasFCS := pflag.Bool("fcs", false, "capture includes a trailing 4-byte FCS per frame")
	verbose := pflag.BoolP("verbose", "v", false, "log every decoded frame at debug level")
	pflag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	packets, decoded, err := run(os.Stdin, log, *hasFCS)
	if err != nil {
		log.WithError(err).Errorf("stopped after %d packets (%d decoded)", packets, decoded)
		os.Exit(1)
	}
	log.Infof("processed %d packets, %d decoded", packets, decoded)
}
