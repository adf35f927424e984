package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 5, 5},
		{"float64 from JSON", float64(12), 12},
		{"string", " 42 ", 42},
		{"bytes", []byte("7"), 7},
		{"invalid string", "abc", 0},
		{"nil", nil, 0},
		{"uint", uint(3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToIntOr(t *testing.T) {
	assert.Equal(t, 10, ToIntOr("", 10))
	assert.Equal(t, 10, ToIntOr("x", 10))
	assert.Equal(t, 3, ToIntOr("3", 10))
	assert.Equal(t, 10, ToIntOr(nil, 10))
	assert.Equal(t, 4, ToIntOr(4, 10))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "900123", ToString(float64(900123)))
	assert.Equal(t, "12", ToString(12))
	assert.Equal(t, "x", ToString([]byte("x")))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("Sí"))
	assert.True(t, ToBool("TRUE"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}
