package mpdu

// parseData parses a Data-frame body starting right after addr1, per
// spec.md §4.8. Grounded on parsedata() in
// _examples/original_source/radio/mpdu.py. HT Control reading is
// intentionally not performed (spec.md §9 documented gap); no payload or
// information-element scan is performed for data frames.
func parseData(c *Cursor, st int, r *Record) error {
	addr2, err := c.ReadBytes("addr2", 6)
	if err != nil {
		return err
	}
	r.Addr2 = formatMAC(addr2)
	r.present("addr2")

	addr3, err := c.ReadBytes("addr3", 6)
	if err != nil {
		return err
	}
	r.Addr3 = formatMAC(addr3)
	r.present("addr3")

	seq, err := c.ReadU16LE("seqctrl")
	if err != nil {
		return err
	}
	sc := sequenceControl(seq)
	r.SeqControl = &sc
	r.present("seq_control")

	flags := frameControlFlags(r.FrameControl.Flags)
	if flags.ToDS && flags.FromDS {
		addr4, err := c.ReadBytes("addr4", 6)
		if err != nil {
			return err
		}
		r.Addr4 = formatMAC(addr4)
		r.present("addr4")
	}

	if st >= STDataQoSData && st <= STDataQoSCFAckCFPoll && st != STDataRsrv13 {
		lsb, err := c.ReadU8("qos")
		if err != nil {
			return err
		}
		msb, err := c.ReadU8("qos")
		if err != nil {
			return err
		}
		q := qosControl(lsb, msb)
		r.QoS = &q
		r.present("qos")
	}

	return nil
}
