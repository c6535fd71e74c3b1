package mpdu

import "github.com/0x0mar/wraith/ie"

// parseMgmt parses a Management-frame body starting right after addr1, per
// spec.md §4.7. Grounded on parsemgmt() in
// _examples/original_source/radio/mpdu.py. HT Control reading is
// intentionally not performed even when the order flag is set (spec.md §9
// documented gap).
func parseMgmt(c *Cursor, st int, r *Record) error {
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

	fp := &FixedParams{}
	haveFixed := true

	switch st {
	case STMgmtAssocReq:
		cap, err := c.ReadU16LE("capability")
		if err != nil {
			return err
		}
		listen, err := c.ReadU16LE("listen-int")
		if err != nil {
			return err
		}
		fp.Capability = &cap
		fp.ListenInt = &listen

	case STMgmtAssocResp, STMgmtReassocResp:
		cap, err := c.ReadU16LE("capability")
		if err != nil {
			return err
		}
		status, err := c.ReadU16LE("status-code")
		if err != nil {
			return err
		}
		aidRaw, err := c.ReadU16LE("aid")
		if err != nil {
			return err
		}
		aid := uint16(leastAID(aidRaw))
		fp.Capability = &cap
		fp.StatusCode = &status
		fp.AID = &aid

	case STMgmtReassocReq:
		cap, err := c.ReadU16LE("capability")
		if err != nil {
			return err
		}
		listen, err := c.ReadU16LE("listen-int")
		if err != nil {
			return err
		}
		curAP, err := c.ReadBytes("current-ap", 6)
		if err != nil {
			return err
		}
		fp.Capability = &cap
		fp.ListenInt = &listen
		fp.CurrentAP = formatMAC(curAP)

	case STMgmtProbeReq:
		haveFixed = false // all fields are information elements

	case STMgmtTimingAdv:
		ts, err := c.ReadU64LE("timestamp")
		if err != nil {
			return err
		}
		cap, err := c.ReadU16LE("capability")
		if err != nil {
			return err
		}
		fp.Timestamp = &ts
		fp.Capability = &cap

	case STMgmtProbeResp, STMgmtBeacon:
		ts, err := c.ReadU64LE("timestamp")
		if err != nil {
			return err
		}
		bi, err := c.ReadU16LE("beacon-int")
		if err != nil {
			return err
		}
		cap, err := c.ReadU16LE("capability")
		if err != nil {
			return err
		}
		biUs := uint32(bi) * 1024 // stored in microseconds
		fp.Timestamp = &ts
		fp.BeaconIntUs = &biUs
		fp.Capability = &cap

	case STMgmtDisassoc, STMgmtDeauth:
		rc, err := c.ReadU16LE("reason-code")
		if err != nil {
			return err
		}
		fp.ReasonCode = &rc

	case STMgmtAuth:
		algo, err := c.ReadU16LE("algorithm-no")
		if err != nil {
			return err
		}
		seqNo, err := c.ReadU16LE("auth-seq")
		if err != nil {
			return err
		}
		status, err := c.ReadU16LE("status-code")
		if err != nil {
			return err
		}
		fp.AlgorithmNo = &algo
		fp.AuthSeq = &seqNo
		fp.StatusCode = &status

	case STMgmtAction, STMgmtActionNoAck:
		cat, err := c.ReadU8("category")
		if err != nil {
			return err
		}
		act, err := c.ReadU8("action")
		if err != nil {
			return err
		}
		fp.Category = &cat
		fp.Action = &act

		if c.Len() > 0 {
			r.ActionElement = c.TakeRemaining()
			r.present("action_element")
		}

	case STMgmtATIM, STMgmtRsrv7, STMgmtRsrv15:
		// no fixed params, no IE scan
		return nil

	default:
		return nil
	}

	if haveFixed {
		r.FixedParams = fp
		r.present("fixed_params")
	}

	return parseInfoElements(c, r)
}

const aidMask = 14

func leastAID(v uint16) uint16 {
	return uint16(uint64(v) & ((1 << aidMask) - 1))
}

// parseInfoElements consumes the remainder of the frame as a stream of
// (tag_id, length, body) tagged elements, refining vendor-specific and
// rates tags. Grounded on the info-elements loop in parsemgmt().
func parseInfoElements(c *Cursor, r *Record) error {
	if c.Len() == 0 {
		return nil
	}
	r.present("info_elements")
	for c.Len() > 0 {
		tagID, err := c.ReadU8("tag_id")
		if err != nil {
			return err
		}
		length, err := c.ReadU8("length")
		if err != nil {
			return err
		}
		body, err := c.ReadBytes("ie_body", int(length))
		if err != nil {
			return err
		}

		item := InfoElement{TagID: tagID}
		switch tagID {
		case ie.EIDVendSpec:
			if len(body) >= 3 {
				oui, rest := ie.VendorOUI(body)
				item.VendorOUI = oui
				item.VendorRest = rest
			} else {
				item.Raw = body
			}
		case ie.EIDSupportedRates, ie.EIDExtRates:
			rates := make([]float32, 0, len(body))
			for _, b := range body {
				rates = append(rates, ie.RateMbps(b))
			}
			item.Rates = rates
		default:
			item.Raw = body
		}
		r.InfoElements = append(r.InfoElements, item)
	}
	return nil
}
