package session

import (
	"strings"
	"testing"

	"github.com/entrhq/passgen/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource counts draws so tests can observe regeneration.
type countingSource struct {
	inner generator.Source
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.inner.Float64()
}

func onlyFrom(password, alphabet string) bool {
	for _, r := range password {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

func TestNew_Defaults(t *testing.T) {
	s := New(generator.DefaultOptions(), generator.NewSource(1))

	assert.Equal(t, 8, s.Length())
	assert.False(t, s.AllowDigits())
	assert.False(t, s.AllowSpecial())
	assert.False(t, s.Selected())
	require.Len(t, s.Password(), 8)
	assert.True(t, onlyFrom(s.Password(), generator.Letters))
}

func TestNew_ClampsLength(t *testing.T) {
	s := New(generator.Options{Length: 1}, generator.NewSource(1))
	assert.Equal(t, generator.MinLength, s.Length())
	assert.Len(t, s.Password(), generator.MinLength)
}

func TestSetLength_Regenerates(t *testing.T) {
	s := New(generator.DefaultOptions(), generator.NewSource(2))

	s.SetLength(20)

	assert.Equal(t, 20, s.Length())
	require.Len(t, s.Password(), 20)
	assert.True(t, onlyFrom(s.Password(), generator.Letters))
}

func TestSetLength_Clamps(t *testing.T) {
	s := New(generator.DefaultOptions(), generator.NewSource(2))

	s.SetLength(250)
	assert.Equal(t, 100, s.Length())
	assert.Len(t, s.Password(), 100)

	s.SetLength(0)
	assert.Equal(t, 6, s.Length())
	assert.Len(t, s.Password(), 6)
}

func TestStep(t *testing.T) {
	s := New(generator.DefaultOptions(), generator.NewSource(3))

	s.Step(10)
	assert.Equal(t, 18, s.Length())
	s.Step(-100)
	assert.Equal(t, generator.MinLength, s.Length())
	assert.Len(t, s.Password(), generator.MinLength)
}

func TestToggleDigits(t *testing.T) {
	s := New(generator.Options{Length: 10}, generator.NewSource(4))

	s.ToggleDigits()

	assert.True(t, s.AllowDigits())
	require.Len(t, s.Password(), 10)
	assert.True(t, onlyFrom(s.Password(), generator.Letters+generator.Digits))

	s.ToggleDigits()
	assert.False(t, s.AllowDigits())
	assert.True(t, onlyFrom(s.Password(), generator.Letters))
}

func TestToggleSpecial(t *testing.T) {
	s := New(generator.Options{Length: 40}, generator.NewSource(5))

	s.ToggleSpecial()

	assert.True(t, s.AllowSpecial())
	assert.True(t, onlyFrom(s.Password(), generator.Letters+generator.Specials))
}

func TestSetters_AlwaysRegenerate(t *testing.T) {
	src := &countingSource{inner: generator.NewSource(6)}
	s := New(generator.DefaultOptions(), src)
	require.Equal(t, 8, src.draws)

	// Setting the same value still counts as a change event.
	s.SetLength(8)
	assert.Equal(t, 16, src.draws)
	s.SetAllowDigits(false)
	assert.Equal(t, 24, src.draws)
	s.SetAllowSpecial(false)
	assert.Equal(t, 32, src.draws)
}

func TestSelect_ClearedOnRegenerate(t *testing.T) {
	s := New(generator.DefaultOptions(), generator.NewSource(7))

	s.Select()
	assert.True(t, s.Selected())

	s.ToggleDigits()
	assert.False(t, s.Selected())
}

func TestOptions(t *testing.T) {
	s := New(generator.Options{Length: 12, Digits: true}, generator.NewSource(8))
	s.SetAllowSpecial(true)

	assert.Equal(t, generator.Options{Length: 12, Digits: true, Special: true}, s.Options())
}
