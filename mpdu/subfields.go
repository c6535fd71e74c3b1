package mpdu

import "github.com/0x0mar/wraith/bits"

// field extracts the x-bit value starting at bit s from v, right-justified.
// Equivalent to combining bits.Mid and bits.Most in one step.
func field(s, x uint, v uint64) uint64 {
	return bits.Most(s, bits.Mid(s, x, v))
}

// Frame Control flag bits. Grounded on _FC_FIELDS_ in
// _examples/original_source/radio/mpdu.py.
var fcFields = bits.Table{
	"td": 1 << 0, // to-DS
	"fd": 1 << 1, // from-DS
	"mf": 1 << 2, // more fragments
	"r":  1 << 3, // retry
	"pm": 1 << 4, // power management
	"md": 1 << 5, // more data
	"pf": 1 << 6, // protected frame
	"o":  1 << 7, // order
}

// FrameControlFlags is the named-flag view of the Frame Control flags byte.
type FrameControlFlags struct {
	ToDS, FromDS, MoreFrag, Retry, PwrMgmt, MoreData, Protected, Order bool
}

func frameControlFlags(b byte) FrameControlFlags {
	m := fcFields.Map(uint64(b))
	return FrameControlFlags{
		ToDS:      m["td"] == 1,
		FromDS:    m["fd"] == 1,
		MoreFrag:  m["mf"] == 1,
		Retry:     m["r"] == 1,
		PwrMgmt:   m["pm"] == 1,
		MoreData:  m["md"] == 1,
		Protected: m["pf"] == 1,
		Order:     m["o"] == 1,
	}
}

// SeqControl is the decoded Sequence Control field (Std 8.2.4.4).
type SeqControl struct {
	FragNo uint16
	SeqNo  uint16
}

const seqCtrlDivider = 4

func sequenceControl(v uint16) SeqControl {
	return SeqControl{
		FragNo: uint16(bits.Least(seqCtrlDivider, uint64(v))),
		SeqNo:  uint16(bits.Most(seqCtrlDivider, uint64(v))),
	}
}

// QoSControl is the decoded QoS Control field (Std 8.2.4.5). Full
// disambiguation of the high byte by sender role and subtype is not
// performed; it is preserved verbatim as TXOP, matching the documented
// limitation in the original source.
type QoSControl struct {
	TID       uint8
	EOSP      bool
	AckPolicy uint8
	AMSDU     bool
	TXOP      uint8
}

const (
	qosTIDEnd         = 4
	qosAckPolicyStart = 5
	qosAckPolicyLen   = 2
)

var qosFields = bits.Table{
	"eosp":   1 << 4,
	"a-msdu": 1 << 7,
}

func qosControl(lsb, msb byte) QoSControl {
	m := qosFields.Map(uint64(lsb))
	return QoSControl{
		TID:       uint8(bits.Least(qosTIDEnd, uint64(lsb))),
		EOSP:      m["eosp"] == 1,
		AckPolicy: uint8(field(qosAckPolicyStart, qosAckPolicyLen, uint64(lsb))),
		AMSDU:     m["a-msdu"] == 1,
		TXOP:      msb,
	}
}

// QoSAPPSBuffer is the AP-PS buffer-state refinement of the QoS Control high
// byte, sent by an AP with EOSP unset (Std Table 8-4).
type QoSAPPSBuffer struct {
	Rsrv                   bool
	BufferStateIndicated   bool
	HighPri                uint8
	APBuffered             uint8
}

var qosAPPSBufferFields = bits.Table{
	"rsrv":                    1 << 0,
	"buffer-state-indicated":  1 << 1,
}

const (
	qosAPPSBufferHighPriStart = 2
	qosAPPSBufferHighPriLen   = 2
	qosAPPSBufferAPBuffStart = 4
)

func qosAPPSBuffer(v byte) QoSAPPSBuffer {
	m := qosAPPSBufferFields.Map(uint64(v))
	return QoSAPPSBuffer{
		Rsrv:                 m["rsrv"] == 1,
		BufferStateIndicated: m["buffer-state-indicated"] == 1,
		HighPri:              uint8(field(qosAPPSBufferHighPriStart, qosAPPSBufferHighPriLen, uint64(v))),
		APBuffered:           uint8(bits.Most(qosAPPSBufferAPBuffStart, uint64(v))),
	}
}

// QoSMesh is the Mesh refinement of the QoS Control high byte.
type QoSMesh struct {
	MeshControl bool
	PwrSaveLvl  bool
	RSPI        bool
	HighPri     uint8
}

var qosMeshFields = bits.Table{
	"mesh-control": 1 << 0,
	"pwr-save-lvl": 1 << 1,
	"rspi":         1 << 2,
}

const qosMeshRsrvStart = 3

func qosMesh(v byte) QoSMesh {
	m := qosMeshFields.Map(uint64(v))
	return QoSMesh{
		MeshControl: m["mesh-control"] == 1,
		PwrSaveLvl:  m["pwr-save-lvl"] == 1,
		RSPI:        m["rspi"] == 1,
		HighPri:     uint8(bits.Most(qosMeshRsrvStart, uint64(v))),
	}
}

// HTControl is the decoded HT Control field (Std 8.2.4.6).
type HTControl struct {
	LACRsrv        bool
	LACTrq         bool
	LACMAIMRQ      bool
	NDPAnnouncement bool
	ACConstraint   bool
	RDGMorePPDU    bool
	LACMAIMSI      uint32
	LACMFSI        uint32
	LACMFBASELCmd  uint32
	LACMFBASELData uint32
	CalibrationPos uint32
	CalibrationSeq uint32
	Rsrv1          uint32
	CSISteering    uint32
	Rsrv2          uint32
}

var htcFields = bits.Table{
	"lac-rsrv":         1 << 0,
	"lac-trq":          1 << 1,
	"lac-mai-mrq":      1 << 2,
	"ndp-announcement": 1 << 24,
	"ac-constraint":    1 << 30,
	"rdg-more-ppdu":    1 << 31,
}

const (
	htcLACMAIMSIStart      = 3
	htcLACMAIMSILen        = 3
	htcLACMFSIStart        = 6
	htcLACMFSILen          = 3
	htcLACMFBASELCmdStart  = 9
	htcLACMFBASELCmdLen    = 3
	htcLACMFBASELDataStart = 12
	htcLACMFBASELDataLen   = 4
	htcCalibrationPosStart = 16
	htcCalibrationPosLen   = 2
	htcCalibrationSeqStart = 18
	htcCalibrationSeqLen   = 2
	htcRsrv1Start          = 20
	htcRsrv1Len            = 2
	htcCSISteeringStart    = 22
	htcCSISteeringLen      = 2
	htcRsrv2Start          = 25
	htcRsrv2Len            = 5
)

func htControl(v uint32) HTControl {
	m := htcFields.Map(uint64(v))
	f := func(s, x uint) uint32 { return uint32(field(s, x, uint64(v))) }
	return HTControl{
		LACRsrv:         m["lac-rsrv"] == 1,
		LACTrq:          m["lac-trq"] == 1,
		LACMAIMRQ:       m["lac-mai-mrq"] == 1,
		NDPAnnouncement: m["ndp-announcement"] == 1,
		ACConstraint:    m["ac-constraint"] == 1,
		RDGMorePPDU:     m["rdg-more-ppdu"] == 1,
		LACMAIMSI:       f(htcLACMAIMSIStart, htcLACMAIMSILen),
		LACMFSI:         f(htcLACMFSIStart, htcLACMFSILen),
		LACMFBASELCmd:   f(htcLACMFBASELCmdStart, htcLACMFBASELCmdLen),
		LACMFBASELData:  f(htcLACMFBASELDataStart, htcLACMFBASELDataLen),
		CalibrationPos:  f(htcCalibrationPosStart, htcCalibrationPosLen),
		CalibrationSeq:  f(htcCalibrationSeqStart, htcCalibrationSeqLen),
		Rsrv1:           f(htcRsrv1Start, htcRsrv1Len),
		CSISteering:     f(htcCSISteeringStart, htcCSISteeringLen),
		Rsrv2:           f(htcRsrv2Start, htcRsrv2Len),
	}
}

// BAControlType discriminates the BA/BAR Control multi-tid/compressed-bm
// combination (Std Table 8-16).
type BAControlType int

const (
	BATypeBasic BAControlType = iota
	BATypeCompressed
	BATypeReserved
	BATypeMultiTID
)

func (t BAControlType) String() string {
	switch t {
	case BATypeBasic:
		return "basic"
	case BATypeCompressed:
		return "compressed"
	case BATypeReserved:
		return "reserved"
	case BATypeMultiTID:
		return "multi-tid"
	default:
		return "unknown"
	}
}

// BAControl is the decoded BA/BAR Control field (Std 8.3.1.8/8.3.1.9). Type
// is populated by the caller once the multi-tid/compressed-bm combination
// and, for BAR frames, the subtype are known.
type BAControl struct {
	AckPolicy     bool
	MultiTID      bool
	CompressedBM  bool
	Rsrv          uint16
	TIDInfo       uint16
	Type          BAControlType
}

var baCtrlFields = bits.Table{
	"ackpolicy":     1 << 0,
	"multi-tid":     1 << 1,
	"compressed-bm": 1 << 2,
}

const (
	baCtrlRsrvStart    = 3
	baCtrlRsrvLen      = 9
	baCtrlTIDInfoStart = 12
)

func baControl(v uint16) BAControl {
	m := baCtrlFields.Map(uint64(v))
	return BAControl{
		AckPolicy:    m["ackpolicy"] == 1,
		MultiTID:     m["multi-tid"] == 1,
		CompressedBM: m["compressed-bm"] == 1,
		Rsrv:         uint16(field(baCtrlRsrvStart, baCtrlRsrvLen, uint64(v))),
		TIDInfo:      uint16(bits.Most(baCtrlTIDInfoStart, uint64(v))),
	}
}

// PerTID is one Per-TID Info + Sequence Control pair from a Multi-TID
// BlockAck/BlockAckReq information field (Std Fig 8-22/8-23).
type PerTID struct {
	SeqControl
	Rsrv uint16
	TID  uint16
}

const baCtrlPerTIDDivider = 12

func perTID(w0, w1 uint16) PerTID {
	return PerTID{
		SeqControl: sequenceControl(w1),
		Rsrv:       uint16(bits.Least(baCtrlPerTIDDivider, uint64(w0))),
		TID:        uint16(bits.Most(baCtrlPerTIDDivider, uint64(w0))),
	}
}

// CapabilityInfo is the decoded Capability Information field (Std 8.4.1.4).
type CapabilityInfo struct {
	ESS, IBSS, CFPollable, CFPollReq, Privacy, ShortPre, PBCC, ChAgility,
	SpecMgmt, QoS, TimeSlot, APSD, RDOMeas, DFSSOFDM, DelayedBA, ImmediateBA bool
}

var capInfoFields = bits.Table{
	"ess":          1 << 0,
	"ibss":         1 << 1,
	"cfpollable":   1 << 2,
	"cf-poll req":  1 << 3,
	"privacy":      1 << 4,
	"short-pre":    1 << 5,
	"pbcc":         1 << 6,
	"ch-agility":   1 << 7,
	"spec-mgmt":    1 << 8,
	"qos":          1 << 9,
	"time-slot":    1 << 10,
	"apsd":         1 << 11,
	"rdo-meas":     1 << 12,
	"dfss-ofdm":    1 << 13,
	"delayed-ba":   1 << 14,
	"immediate-ba": 1 << 15,
}

func capabilityInfo(v uint16) CapabilityInfo {
	m := capInfoFields.Map(uint64(v))
	return CapabilityInfo{
		ESS:          m["ess"] == 1,
		IBSS:         m["ibss"] == 1,
		CFPollable:   m["cfpollable"] == 1,
		CFPollReq:    m["cf-poll req"] == 1,
		Privacy:      m["privacy"] == 1,
		ShortPre:     m["short-pre"] == 1,
		PBCC:         m["pbcc"] == 1,
		ChAgility:    m["ch-agility"] == 1,
		SpecMgmt:     m["spec-mgmt"] == 1,
		QoS:          m["qos"] == 1,
		TimeSlot:     m["time-slot"] == 1,
		APSD:         m["apsd"] == 1,
		RDOMeas:      m["rdo-meas"] == 1,
		DFSSOFDM:     m["dfss-ofdm"] == 1,
		DelayedBA:    m["delayed-ba"] == 1,
		ImmediateBA:  m["immediate-ba"] == 1,
	}
}

// dataSubtypeFields refines a Data subtype nibble into its named bits (Std
// 8.2.4.1.3). Supplements spec.md per SPEC_FULL.md §5.
var dataSubtypeFields = bits.Table{
	"cf-ack":  1 << 0,
	"cf-poll": 1 << 1,
	"no-body": 1 << 2,
	"qos":     1 << 3,
}

// DataSubtypeFlags returns the named-flag view of a Data frame subtype
// nibble (0..15).
func DataSubtypeFlags(subtype int) map[string]int {
	return dataSubtypeFields.Map(uint64(subtype))
}
