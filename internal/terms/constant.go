package terms

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ConstantKind tags which primitive a Constant carries.
type ConstantKind int

const (
	U8 ConstantKind = iota
	U16
	U32
	U64
	S8
	S16
	S32
	S64
	F32
	F64
	Char
	String
)

func (k ConstantKind) String() string {
	switch k {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case S8:
		return "S8"
	case S16:
		return "S16"
	case S32:
		return "S32"
	case S64:
		return "S64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Char:
		return "Char"
	case String:
		return "String"
	default:
		return "Constant?"
	}
}

// Constant is a primitive value carried by both Term and Value (spec §3.4).
// Value holds the Go representation matching Kind: uint64 for the unsigned
// kinds, int64 for the signed kinds, float32/float64, rune for Char, and
// string for String. Equality compares this representation with Go's ==:
// for the float kinds that is IEEE 754 comparison, so NaN compares unequal
// to itself and +0 equals -0.
type Constant struct {
	Kind  ConstantKind
	Value interface{}
}

// NewStringConstant builds a String constant, NFC-normalizing its payload
// once at construction. Without this, two String constants built from
// differently-normalized UTF-8 source text (e.g. "café" composed vs
// decomposed) would carry different Go strings and would wrongly compare
// unequal under Constant.Equal's bitwise rule, even though spec §4.6
// treats them as the same literal. Mirrors the teacher's lexer, which
// applies the identical NFC normalization once at the input boundary
// rather than at every comparison site.
func NewStringConstant(s string) Constant {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return Constant{Kind: String, Value: s}
}

func (c Constant) String() string {
	return fmt.Sprintf("%v : %s", c.Value, c.Kind)
}

// Equal reports equality of the representation under Go's == (IEEE 754
// comparison for F32/F64). Two constants of different kinds are never equal.
func (c Constant) Equal(other Constant) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case F32:
		a, _ := c.Value.(float32)
		b, _ := other.Value.(float32)
		return a == b // false for NaN, matching IEEE identity
	case F64:
		a, _ := c.Value.(float64)
		b, _ := other.Value.(float64)
		return a == b
	default:
		return c.Value == other.Value
	}
}
