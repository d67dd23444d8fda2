// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

// Package password implements secure password generation.
package password

import "strings"

// Character classes, full and readable variants. Readable variants drop
// glyphs that are easily mistranscribed (l/o, I/O, 0/1).
const (
	lowerFull     = "abcdefghijklmnopqrstuvwxyz"
	lowerReadable = "abcdefghijkmnpqrstuvwxyz"

	upperFull     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperReadable = "ABCDEFGHJKLMNPQRSTUVWXYZ"

	digitsFull     = "0123456789"
	digitsReadable = "23456789"

	specialFull     = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	specialReadable = "!@#$%^&*-_+="
)

// Ambiguous holds the characters stripped from the pool when
// Settings.ExcludeAmbiguous is set, regardless of which class they came from.
const Ambiguous = "0Ol1I|\\`'"

// Settings describes a single generation request. It is a plain value;
// callers own it and pass a copy into each call.
//
// Length and the minimum counts are not bounds-checked here. The interactive
// layer validates user input before it reaches the generator.
type Settings struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Special          bool
	ReadableOnly     bool
	ExcludeAmbiguous bool
	MinDigits        int
	MinSpecial       int
}

// BuildCharset derives the sampling pool for s: the union of every enabled
// class (readable variants when ReadableOnly), minus the Ambiguous set when
// ExcludeAmbiguous. The pool is returned as an ordered string so it can be
// indexed uniformly; the ordering itself carries no meaning.
func BuildCharset(s Settings) string {
	var b strings.Builder
	if s.Lowercase {
		b.WriteString(variant(lowerFull, lowerReadable, s.ReadableOnly))
	}
	if s.Uppercase {
		b.WriteString(variant(upperFull, upperReadable, s.ReadableOnly))
	}
	if s.Digits {
		b.WriteString(s.digitAlphabet())
	}
	if s.Special {
		b.WriteString(s.specialAlphabet())
	}

	pool := b.String()
	if s.ExcludeAmbiguous {
		pool = strings.Map(func(r rune) rune {
			if strings.ContainsRune(Ambiguous, r) {
				return -1
			}
			return r
		}, pool)
	}
	return pool
}

// digitAlphabet returns the digit class used for minimum-count injection.
func (s Settings) digitAlphabet() string {
	return variant(digitsFull, digitsReadable, s.ReadableOnly)
}

// specialAlphabet returns the special class used for minimum-count injection.
func (s Settings) specialAlphabet() string {
	return variant(specialFull, specialReadable, s.ReadableOnly)
}

func variant(full, readable string, readableOnly bool) string {
	if readableOnly {
		return readable
	}
	return full
}
