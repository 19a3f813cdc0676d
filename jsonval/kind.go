package jsonval

type KindEnum int

const (
	KindUndefined KindEnum = iota // not representable in JSON (func, chan, ...), skipped by walkers

	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// IsScalar reports whether the kind is a leaf value (null included).
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}

func (k KindEnum) IsContainer() bool {
	return k == KindArray || k == KindObject
}
