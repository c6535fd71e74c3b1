package mpdu

// parseControl parses a Control-frame body starting right after addr1, per
// spec.md §4.6. Grounded on parsectrl() in
// _examples/original_source/radio/mpdu.py.
func parseControl(c *Cursor, st int, r *Record) error {
	switch st {
	case STCtrlCTS, STCtrlACK:
		// no further fields

	case STCtrlRTS, STCtrlPSPoll, STCtrlCFEnd, STCtrlCFEndCFAck:
		addr2, err := c.ReadBytes("addr2", 6)
		if err != nil {
			return err
		}
		r.Addr2 = formatMAC(addr2)
		r.present("addr2")

	case STCtrlBlockAckReq:
		addr2, err := c.ReadBytes("addr2", 6)
		if err != nil {
			return err
		}
		r.Addr2 = formatMAC(addr2)
		r.present("addr2")

		barRaw, err := c.ReadU16LE("barctrl")
		if err != nil {
			return err
		}
		bar := baControl(barRaw)
		r.present("bar_control")

		info := &BARInfo{}
		if !bar.MultiTID {
			if !bar.CompressedBM {
				bar.Type = BATypeBasic
			} else {
				bar.Type = BATypeCompressed
			}
			v, err := c.ReadU16LE("barinfo")
			if err != nil {
				return err
			}
			sc := sequenceControl(v)
			info.SeqControl = &sc
		} else if !bar.CompressedBM {
			bar.Type = BATypeReserved
			info.Unparsed = hexEncode(c.TakeRemaining())
		} else {
			bar.Type = BATypeMultiTID
			for i := 0; i <= int(bar.TIDInfo); i++ {
				w0, err := c.ReadU16LE("pertid")
				if err != nil {
					return err
				}
				w1, err := c.ReadU16LE("pertid")
				if err != nil {
					return err
				}
				info.TIDs = append(info.TIDs, perTID(w0, w1))
			}
		}
		r.BARControl = &bar
		r.BARInfo = info
		r.present("bar_info")

	case STCtrlBlockAck:
		addr2, err := c.ReadBytes("addr2", 6)
		if err != nil {
			return err
		}
		r.Addr2 = formatMAC(addr2)
		r.present("addr2")

		baRaw, err := c.ReadU16LE("bactrl")
		if err != nil {
			return err
		}
		ba := baControl(baRaw)
		r.present("ba_control")

		info := &BAInfo{}
		if !ba.MultiTID {
			v, err := c.ReadU16LE("bainfo")
			if err != nil {
				return err
			}
			sc := sequenceControl(v)
			info.SeqControl = &sc
			if !ba.CompressedBM {
				ba.Type = BATypeBasic
				bm, err := c.ReadBytes("babitmap", 128)
				if err != nil {
					return err
				}
				info.BABitmap = hexEncode(bm)
			} else {
				ba.Type = BATypeCompressed
				bm, err := c.ReadBytes("babitmap", 8)
				if err != nil {
					return err
				}
				info.BABitmap = hexEncode(bm)
			}
		} else if !ba.CompressedBM {
			// Reserved multi-tid, non-compressed: the source captures the
			// unparsed remainder but does NOT advance the cursor here,
			// unlike the symmetric BAR branch above. Preserved exactly
			// (spec.md §9 "Reserved BA case cursor bug").
			ba.Type = BATypeReserved
			rest, err := c.Peek("bainfo", c.Len())
			if err != nil {
				return err
			}
			info.Unparsed = hexEncode(rest)
		} else {
			ba.Type = BATypeMultiTID
			for i := 0; i <= int(ba.TIDInfo); i++ {
				w0, err := c.ReadU16LE("pertid")
				if err != nil {
					return err
				}
				w1, err := c.ReadU16LE("pertid")
				if err != nil {
					return err
				}
				bm, err := c.ReadBytes("babitmap", 8)
				if err != nil {
					return err
				}
				info.TIDs = append(info.TIDs, PerTIDBitmap{PerTID: perTID(w0, w1), BABitmap: hexEncode(bm)})
			}
		}
		r.BAControl = &ba
		r.BAInfo = info
		r.present("ba_info")

	case STCtrlWrapper:
		cfc, err := c.ReadU16LE("carriedframectrl")
		if err != nil {
			return err
		}
		htc, err := c.ReadU32LE("htc")
		if err != nil {
			return err
		}
		r.Wrapper = &ControlWrapper{
			CarriedFrameControl: cfc,
			HTC:                 htc,
			CarriedFrame:        hexEncode(c.TakeRemaining()),
		}
		r.present("carried_frame_control")
		r.present("htc")
		r.present("carried_frame")

	default:
		return errUnknownControlSubtype(st)
	}
	return nil
}
