package element

// Kind identifies the type of a single tuple Element and doubles as the
// one-byte wire tag written before its payload.
//
// The numeric values are part of the on-wire contract (spec §9 "Tag
// values"): any assignment satisfying the order below is conforming, but
// once chosen it must never change, since it is baked into every encoded
// tuple. Ascending order, matching spec §4.3:
//
//	SEP < NULL < NEG_TIME < NEG_INTEGER < BOOL < INTEGER < TIME < BLOB < TEXT < UUID
type Kind byte

const (
	// KindSep is the inter-tuple separator used by the batch codec. It is
	// not a real element kind: a tuple decoder that encounters it stops and
	// reports end-of-tuple rather than producing an Element. It sorts below
	// every real kind tag so a longer batch sharing a prefix batch never
	// compares less than a shorter one at the separator boundary.
	KindSep Kind = iota
	KindNull
	KindNegTime
	KindNegInteger
	KindBool
	KindInteger
	KindTime
	KindBlob
	KindText
	KindUUID
)

func (k Kind) String() string {
	switch k {
	case KindSep:
		return "Sep"
	case KindNull:
		return "Null"
	case KindNegTime:
		return "NegTime"
	case KindNegInteger:
		return "NegInteger"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindTime:
		return "Time"
	case KindBlob:
		return "Blob"
	case KindText:
		return "Text"
	case KindUUID:
		return "Uuid"
	default:
		return "Unknown"
	}
}
