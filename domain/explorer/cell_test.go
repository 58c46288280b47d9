package explorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"empty", Empty, ""},
		{"string", Str("OrRd"), "OrRd"},
		{"int", Int(2019), "2019"},
		{"integral float", Float(0), "0.0"},
		{"fraction", Float(30.0001), "30.0001"},
		{"nan", Float(math.NaN()), ""},
		{"negative", Float(-2.5), "-2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, KindEmpty, CellOf(nil).Kind())
	assert.Equal(t, KindInt, CellOf(5).Kind())
	assert.Equal(t, KindFloat, CellOf(0.0).Kind())
	assert.Equal(t, "true", CellOf(true).String())
	assert.Equal(t, Str("x"), CellOf(Str("x")))
}
