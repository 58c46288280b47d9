package explorer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the scalar type carried by a Cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindString
	KindInt
	KindFloat
)

// Cell is one scalar in a table: a string, an integer, a float or nothing.
type Cell struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// Empty is the missing value.
var Empty = Cell{}

func Str(s string) Cell { return Cell{kind: KindString, s: s} }
func Int(i int) Cell { return Cell{kind: KindInt, i: int64(i)} }
func Float(f float64) Cell { return Cell{kind: KindFloat, f: f} }
func (c Cell) Kind() Kind { return c.kind }
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// CellOf converts a Go value into a Cell. Cells pass through unchanged and
// nil becomes Empty.
func CellOf(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Empty
	case Cell:
		return x
	case string:
		return Str(x)
	case int:
		return Int(x)
	case int64:
		return Cell{kind: KindInt, i: x}
	case float64:
		return Float(x)
	case bool:
		return Str(strconv.FormatBool(x))
	default:
		return Str(fmt.Sprint(x))
	}
}

// String renders the cell the way it appears in an explorer file. Integral
// floats keep a trailing ".0" and NaN renders empty.
func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.s
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return formatFloat(c.f)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ""
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
