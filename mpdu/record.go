package mpdu

// FrameControl is the decoded first two octets' type/subtype/flags summary.
type FrameControl struct {
	Type    FrameType
	Subtype int
	Flags   byte
}

// Size is (header_bytes_consumed, total_bytes_consumed); the two differ by
// 4 only when FCS was requested (spec.md §3 invariants).
type Size struct {
	Header int
	Total  int
}

// BARControl / BARInfo hold the Block-Ack-Request control and info fields.
type BARInfo struct {
	SeqControl *SeqControl
	TIDs       []PerTID
	Unparsed   string // hex-encoded
}

// BAInfo holds the Block-Ack info field: a sequence control plus bitmap for
// basic/compressed acks, or a per-TID list for multi-tid acks, or raw
// unparsed bytes for the reserved combination.
type BAInfo struct {
	SeqControl *SeqControl
	BABitmap   string // hex-encoded
	TIDs       []PerTIDBitmap
	Unparsed   string // hex-encoded
}

// PerTIDBitmap is one multi-tid BlockAck TID entry: per-TID info plus its
// own 8-byte bitmap.
type PerTIDBitmap struct {
	PerTID
	BABitmap string // hex-encoded
}

// ControlWrapper holds the Control-Wrapper carried-frame fields (Std 8.3.1.10).
type ControlWrapper struct {
	CarriedFrameControl uint16
	HTC                 uint32
	CarriedFrame        string // hex-encoded
}

// InfoElement is one (tag_id, body) pair from a management frame's
// information-element stream. Body holds exactly one of Raw, VendorOUI/
// VendorRest, or Rates, depending on TagID.
type InfoElement struct {
	TagID      byte
	Raw        []byte
	VendorOUI  string
	VendorRest []byte
	Rates      []float32
}

// IsVendor reports whether this element was refined as vendor-specific.
func (e InfoElement) IsVendor() bool { return e.VendorOUI != "" }

// IsRates reports whether this element was refined as a rates list.
func (e InfoElement) IsRates() bool { return e.Rates != nil }

// FixedParams holds the subtype-specific fixed-parameter block for
// Management frames. Only the fields relevant to the frame's subtype are
// populated; callers should consult Record.FrameControl.Subtype.
type FixedParams struct {
	Capability  *uint16
	ListenInt   *uint16
	StatusCode  *uint16
	AID         *uint16
	CurrentAP   string
	Timestamp   *uint64
	BeaconIntUs *uint32
	ReasonCode  *uint16
	AlgorithmNo *uint16
	AuthSeq     *uint16
	Category    *byte
	Action      *byte
}

// Record is the decode record produced per frame (spec.md §3).
type Record struct {
	Version      int
	Size         Size
	Present      []string
	FrameControl FrameControl
	Duration     uint16
	Addr1        string
	Addr2        string
	Addr3        string
	Addr4        string
	SeqControl   *SeqControl
	FCS          *uint32

	// Control-frame payloads.
	BARControl *BAControl
	BARInfo    *BARInfo
	BAControl  *BAControl
	BAInfo     *BAInfo
	Wrapper    *ControlWrapper

	// Data-frame payload.
	QoS *QoSControl

	// Management-frame payloads.
	FixedParams    *FixedParams
	InfoElements   []InfoElement
	ActionElement  []byte
}

func (r *Record) present(name string) {
	r.Present = append(r.Present, name)
}
