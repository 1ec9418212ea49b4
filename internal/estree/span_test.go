package estree

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestComputeLineStarts(t *testing.T) {
	assert.DeepEqual(t, ComputeLineStarts("a\nb"), []int{0, 2})
	assert.DeepEqual(t, ComputeLineStarts("a\r\nb"), []int{0, 3})
	assert.DeepEqual(t, ComputeLineStarts("a\rb"), []int{0, 2})
	assert.DeepEqual(t, ComputeLineStarts("a\u2028b"), []int{0, 4})
	assert.DeepEqual(t, ComputeLineStarts("a\u2029b"), []int{0, 4})
	assert.DeepEqual(t, ComputeLineStarts(""), []int{0})
	// trailing newline opens a final empty line
	assert.DeepEqual(t, ComputeLineStarts("a\n"), []int{0, 2})
}

func TestPositionFor(t *testing.T) {
	s := NewSpanTranslator("ab\r\ncd\ne")

	assert.Equal(t, s.PositionFor(0), Position{Line: 1, Column: 0})
	assert.Equal(t, s.PositionFor(1), Position{Line: 1, Column: 1})
	assert.Equal(t, s.PositionFor(4), Position{Line: 2, Column: 0})
	assert.Equal(t, s.PositionFor(5), Position{Line: 2, Column: 1})
	assert.Equal(t, s.PositionFor(7), Position{Line: 3, Column: 0})
}

func TestPositionForClamps(t *testing.T) {
	s := NewSpanTranslator("ab")

	assert.Equal(t, s.PositionFor(-1), Position{Line: 1, Column: 0})
	assert.Equal(t, s.PositionFor(99), Position{Line: 1, Column: 2})
}

func TestPositionForUnicodeLineBreak(t *testing.T) {
	s := NewSpanTranslator("a\u2028b")

	assert.Equal(t, s.PositionFor(4), Position{Line: 2, Column: 0})
}

func TestLocationFor(t *testing.T) {
	s := NewSpanTranslator("ab\ncd")

	loc := s.LocationFor(Range{1, 4})
	assert.Equal(t, loc.Start, Position{Line: 1, Column: 1})
	assert.Equal(t, loc.End, Position{Line: 2, Column: 1})
}
