package protocol

// ValueKind discriminates the variants of a wire Value.
type ValueKind uint8

const (
	// NilKind is the null marker reply.
	NilKind ValueKind = iota
	// OkayKind is the bare "OK" status reply.
	OkayKind
	// IntKind is an integer reply.
	IntKind
	// SimpleStringKind is a status-line text reply.
	SimpleStringKind
	// BulkStringKind is a binary-safe string reply.
	BulkStringKind
	// ArrayKind is a multi-element reply.
	ArrayKind
)

func (k ValueKind) String() string {
	switch k {
	case NilKind:
		return "Nil"
	case OkayKind:
		return "Okay"
	case IntKind:
		return "Int"
	case SimpleStringKind:
		return "SimpleString"
	case BulkStringKind:
		return "BulkString"
	case ArrayKind:
		return "Array"
	default:
		return "Unknown"
	}
}

// Value is the tagged union a server reply arrives as. Only the variant
// selected by Kind carries meaningful payload fields.
type Value struct {
	kind  ValueKind
	bytes []byte
	text  string
	num   int64
	elems []Value
}

// NilValue returns the null marker reply.
func NilValue() Value { return Value{kind: NilKind} }

// OkayValue returns the bare "OK" status reply.
func OkayValue() Value { return Value{kind: OkayKind} }

// IntValue returns an integer reply.
func IntValue(n int64) Value { return Value{kind: IntKind, num: n} }

// SimpleStringValue returns a status-line text reply.
func SimpleStringValue(s string) Value { return Value{kind: SimpleStringKind, text: s} }

// BulkStringValue returns a binary-safe string reply.
func BulkStringValue(b []byte) Value { return Value{kind: BulkStringKind, bytes: b} }

// ArrayValue returns a multi-element reply.
func ArrayValue(elems ...Value) Value { return Value{kind: ArrayKind, elems: elems} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether v is the null marker.
func (v Value) IsNil() bool { return v.kind == NilKind }

// Bytes returns the payload of a BulkString value, or nil for other kinds.
func (v Value) Bytes() []byte {
	if v.kind != BulkStringKind {
		return nil
	}

	return v.bytes
}

// Text returns the payload of a SimpleString value, or "" for other kinds.
func (v Value) Text() string {
	if v.kind != SimpleStringKind {
		return ""
	}

	return v.text
}

// Int returns the payload of an Int value, or 0 for other kinds.
func (v Value) Int() int64 {
	if v.kind != IntKind {
		return 0
	}

	return v.num
}

// Elems returns the elements of an Array value, or nil for other kinds.
func (v Value) Elems() []Value {
	if v.kind != ArrayKind {
		return nil
	}

	return v.elems
}

// Equal reports deep equality of two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case NilKind, OkayKind:
		return true
	case IntKind:
		return v.num == other.num
	case SimpleStringKind:
		return v.text == other.text
	case BulkStringKind:
		return string(v.bytes) == string(other.bytes)
	case ArrayKind:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
