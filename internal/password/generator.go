// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package password

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/samber/oops"
)

// ErrEmptyCharset is returned when no character category is enabled, or the
// configured filters remove every candidate character.
var ErrEmptyCharset = oops.Code("PASSWORD_EMPTY_CHARSET").Errorf("no character categories selected")

// Generator produces passwords from a cryptographically secure randomness
// source. The zero value is not usable; construct with NewGenerator.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithRand returns a Generator reading randomness from r.
// Intended for tests that need deterministic output; r must still be a
// cryptographic source when the output is used as a real password.
func NewGeneratorWithRand(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate derives the character pool from s and produces one password.
//
// Minimum counts are injected first: MinSpecial characters sampled with
// replacement from the special class and MinDigits from the digit class
// (readable variants when s.ReadableOnly), each only when that class is
// enabled. The remainder is filled from the full pool, then the buffer is
// shuffled so injected characters land in random positions.
//
// When MinSpecial+MinDigits exceeds s.Length the result is longer than
// s.Length rather than truncated or rejected. Callers that need a hard cap
// must validate the bounds before calling.
func (g *Generator) Generate(s Settings) (string, error) {
	pool := BuildCharset(s)
	if pool == "" {
		return "", ErrEmptyCharset
	}

	var buf []byte
	if s.Special && s.MinSpecial > 0 {
		b, err := g.sample(s.specialAlphabet(), s.MinSpecial)
		if err != nil {
			return "", err
		}
		buf = append(buf, b...)
	}
	if s.Digits && s.MinDigits > 0 {
		b, err := g.sample(s.digitAlphabet(), s.MinDigits)
		if err != nil {
			return "", err
		}
		buf = append(buf, b...)
	}
	if remaining := s.Length - len(buf); remaining > 0 {
		b, err := g.sample(pool, remaining)
		if err != nil {
			return "", err
		}
		buf = append(buf, b...)
	}

	if err := g.shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// GenerateMultiple calls Generate count times. The calls are independent;
// duplicate passwords are possible and not filtered out.
func (g *Generator) GenerateMultiple(s Settings, count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.Generate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

// sample draws n characters from alphabet with replacement.
func (g *Generator) sample(alphabet string, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		idx, err := g.intn(len(alphabet))
		if err != nil {
			return nil, err
		}
		out[i] = alphabet[idx]
	}
	return out, nil
}

// shuffle performs an in-place Fisher-Yates permutation of buf.
func (g *Generator) shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

// intn returns a uniform random int in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, oops.Code("PASSWORD_RAND_FAILED").Wrap(err)
	}
	return int(v.Int64()), nil
}
