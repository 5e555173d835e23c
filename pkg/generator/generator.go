// Package generator builds random passwords from a fixed, ordered alphabet.
//
// Every position is sampled independently and uniformly from the alphabet
// assembled for the requested options. Enabling digits or special characters
// widens the alphabet; it does not guarantee that such a character appears.
package generator

import (
	"math/rand/v2"
	"strings"
)

const (
	// Letters is always part of the alphabet: lowercase first, then uppercase.
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Digits is appended when Options.Digits is set.
	Digits = "0123456789"

	// Specials is appended when Options.Special is set.
	Specials = "!@#$%^&*()-_=+[]{}|;:<,>.?/"

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 8
)

// Options selects the password length and which optional character groups
// join the alphabet.
type Options struct {
	Length  int
	Digits  bool
	Special bool
}

// DefaultOptions returns the widget defaults: 8 characters, letters only.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// Source yields uniform random numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a Source backed by the runtime's shared generator.
func DefaultSource() Source {
	return globalSource{}
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Alphabet assembles the ordered character set for opts.
func Alphabet(opts Options) string {
	alphabet := Letters
	if opts.Digits {
		alphabet += Digits
	}
	if opts.Special {
		alphabet += Specials
	}
	return alphabet
}

// Generate returns a password of ClampLength(opts.Length) characters drawn
// from Alphabet(opts). A nil src falls back to DefaultSource.
func Generate(opts Options, src Source) string {
	if src == nil {
		src = DefaultSource()
	}

	alphabet := Alphabet(opts)
	length := ClampLength(opts.Length)

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[pick(src, len(alphabet))])
	}
	return sb.String()
}

// pick maps one draw from src onto an index in [0, n).
func pick(src Source, n int) int {
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
