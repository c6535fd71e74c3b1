package mpdu

// FrameType is the 2-bit 802.11 frame type.
type FrameType int

const (
	FrameMgmt FrameType = iota
	FrameCtrl
	FrameData
	FrameRsrv
)

func (t FrameType) String() string {
	switch t {
	case FrameMgmt:
		return "mgmt"
	case FrameCtrl:
		return "ctrl"
	case FrameData:
		return "data"
	default:
		return "rsrv"
	}
}

// Management subtypes (Std Table 8-1).
const (
	STMgmtAssocReq = iota
	STMgmtAssocResp
	STMgmtReassocReq
	STMgmtReassocResp
	STMgmtProbeReq
	STMgmtProbeResp
	STMgmtTimingAdv
	STMgmtRsrv7
	STMgmtBeacon
	STMgmtATIM
	STMgmtDisassoc
	STMgmtAuth
	STMgmtDeauth
	STMgmtAction
	STMgmtActionNoAck
	STMgmtRsrv15
)

var stMgmtNames = []string{
	"assoc-req", "assoc-resp", "reassoc-req", "reassoc-resp", "probe-req",
	"probe-resp", "timing-adv", "rsrv", "beacon", "atim", "disassoc", "auth",
	"deauth", "action", "action_noack", "rsrv",
}

// Control subtypes (Std Table 8-1).
const (
	STCtrlRsrv0 = iota
	STCtrlRsrv1
	STCtrlRsrv2
	STCtrlRsrv3
	STCtrlRsrv4
	STCtrlRsrv5
	STCtrlRsrv6
	STCtrlWrapper
	STCtrlBlockAckReq
	STCtrlBlockAck
	STCtrlPSPoll
	STCtrlRTS
	STCtrlCTS
	STCtrlACK
	STCtrlCFEnd
	STCtrlCFEndCFAck
)

var stCtrlNames = []string{
	"rsrv", "rsrv", "rsrv", "rsrv", "rsrv", "rsrv", "rsrv", "wrapper",
	"block-ack-req", "block-ack", "pspoll", "rts", "cts", "ack", "cfend",
	"cfend-cfack",
}

// Data subtypes (Std Table 8-1).
const (
	STDataData = iota
	STDataCFAck
	STDataCFPoll
	STDataCFAckCFPoll
	STDataNull
	STDataNullCFAck
	STDataNullCFPoll
	STDataNullCFAckCFPoll
	STDataQoSData
	STDataQoSDataCFAck
	STDataQoSDataCFPoll
	STDataQoSDataCFAckCFPoll
	STDataQoSNull
	STDataRsrv13
	STDataQoSCFPoll
	STDataQoSCFAckCFPoll
)

var stDataNames = []string{
	"data", "cfack", "cfpoll", "cfack_cfpoll", "null", "null-cfack",
	"null-cfpoll", "null-cfack-cfpoll", "qos-data", "qos-data-cfack",
	"qos-data-cfpoll", "qos-data-cfack-cfpoll", "qos-null", "rsrv",
	"qos-cfpoll", "qos-cfack-cfpoll",
}

// classify maps the first octet of a frame to (type, subtype). The high
// nibble is the subtype, the next 2 bits the type, and the low 2 bits the
// (always-zero) protocol version.
func classify(first byte) (FrameType, int, error) {
	ver := first & 0x3
	typ := (first >> 2) & 0x3
	st := int((first >> 4) & 0xF)

	// The three lookup tables are built from exact byte values with
	// version == 0 (Std 8.2.4.1.1); a nonzero version never appears in any
	// table, so it is rejected here exactly as a byte with an unrecognized
	// type would be, matching the source's dict-lookup behavior.
	if ver != 0 {
		return FrameRsrv, st, errFrameType()
	}
	switch FrameType(typ) {
	case FrameMgmt, FrameCtrl, FrameData:
		return FrameType(typ), st, nil
	default:
		return FrameRsrv, st, errFrameType()
	}
}

// SubtypeName returns the subtype description for (ft, st), matching the
// original source's subtypes(ft,st) helper (SPEC_FULL.md §5).
func SubtypeName(ft FrameType, st int) string {
	if st < 0 || st > 15 {
		return "rsrv"
	}
	switch ft {
	case FrameMgmt:
		return stMgmtNames[st]
	case FrameCtrl:
		return stCtrlNames[st]
	case FrameData:
		return stDataNames[st]
	default:
		return "rsrv"
	}
}
