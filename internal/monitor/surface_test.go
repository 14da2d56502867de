package monitor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfacePut_InBounds(t *testing.T) {
	s := NewSurface(3, 10)
	s.Put(1, 2, "hello", nil)

	assert.Equal(t, "", s.Line(0))
	assert.Equal(t, "  hello", s.Line(1))
}

func TestSurfacePut_TruncatesAtRightEdge(t *testing.T) {
	s := NewSurface(1, 5)
	s.Put(0, 3, "overflow", nil)

	assert.Equal(t, "   ov", s.Line(0))
}

func TestSurfacePut_OutOfBoundsIsNoOp(t *testing.T) {
	s := NewSurface(2, 5)

	// None of these should panic or write anything
	s.Put(-1, 0, "x", nil)
	s.Put(2, 0, "x", nil)
	s.Put(0, 5, "x", nil)
	s.Put(0, 99, "x", nil)

	assert.Equal(t, "", s.Line(0))
	assert.Equal(t, "", s.Line(1))
}

func TestSurface_ZeroSize(t *testing.T) {
	s := NewSurface(0, 0)
	s.Put(0, 0, "x", nil)
	assert.Equal(t, "", s.Render())

	s = NewSurface(-2, -3)
	s.Put(0, 0, "x", nil)
	assert.Equal(t, 0, s.Rows())
}

func TestSurfaceHLine(t *testing.T) {
	s := NewSurface(1, 10)
	s.HLine(0, 0, 4, '-', nil)
	assert.Equal(t, "----", s.Line(0))
}

func TestSurfaceVLine(t *testing.T) {
	s := NewSurface(3, 10)
	s.VLine(5, 0, 3, '|', nil)

	for row := 0; row < 3; row++ {
		assert.Equal(t, "     |", s.Line(row))
	}
}

func TestSurfaceVLine_ClipsAtBottom(t *testing.T) {
	s := NewSurface(2, 4)
	s.VLine(0, 0, 100, '|', nil)

	assert.Equal(t, "|", s.Line(0))
	assert.Equal(t, "|", s.Line(1))
}

func TestSurfaceRender_PlainText(t *testing.T) {
	s := NewSurface(2, 8)
	s.Put(0, 0, "ab", nil)
	s.Put(1, 0, "cd", nil)

	lines := strings.Split(s.Render(), "\n")
	assert.Equal(t, []string{"ab", "cd"}, lines)
}

func TestSurfaceRender_TrimsTrailingBlanks(t *testing.T) {
	s := NewSurface(1, 20)
	s.Put(0, 0, "x", nil)

	assert.Equal(t, "x", s.Render())
}
