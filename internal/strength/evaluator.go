// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

// Package strength scores passwords with a composition heuristic.
//
// The score is the sum of three order-independent sub-metrics (length,
// character variety, repetition), so evaluating any permutation of the same
// characters yields the same result. This is a coarse heuristic, not an
// entropy estimate.
package strength

import "fmt"

// Rating is the qualitative level derived from the composite score.
type Rating int

// Ratings ordered weakest to strongest.
const (
	VeryWeak Rating = iota
	Weak
	Medium
	Strong
	VeryStrong
)

// Label returns the human-readable rating name.
func (r Rating) Label() string {
	switch r {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// Symbol returns a short marker paired with the label for terminal display.
func (r Rating) Symbol() string {
	switch r {
	case VeryWeak:
		return "!!"
	case Weak:
		return "!"
	case Medium:
		return "~"
	case Strong:
		return "+"
	case VeryStrong:
		return "++"
	default:
		return "?"
	}
}

func (r Rating) String() string { return r.Label() }

// Result is the outcome of evaluating one password.
type Result struct {
	// Score is the composite 0-11 value.
	Score int
	// Rating buckets Score into five qualitative levels.
	Rating Rating
	// Feedback holds one line per sub-metric, in fixed order: length,
	// variety (omitted when no character class matched), repetition.
	Feedback []string
}

// Evaluate scores password on length, character variety and repetition.
// It is a pure function of its input.
func Evaluate(password string) Result {
	runes := []rune(password)

	lengthScore, lengthNote := scoreLength(len(runes))
	varietyScore, varietyNote := scoreVariety(runes)
	repeatScore, repeatNote := scoreRepetition(runes)

	total := lengthScore + varietyScore + repeatScore

	feedback := make([]string, 0, 3)
	feedback = append(feedback, lengthNote)
	if varietyScore > 0 {
		feedback = append(feedback, varietyNote)
	}
	feedback = append(feedback, repeatNote)

	return Result{
		Score:    total,
		Rating:   rate(total),
		Feedback: feedback,
	}
}

// scoreLength buckets the character count into 1-4.
func scoreLength(n int) (int, string) {
	switch {
	case n < 8:
		return 1, "length: too short (aim for 12 or more characters)"
	case n < 12:
		return 2, "length: medium"
	case n < 16:
		return 3, "length: good"
	default:
		return 4, "length: excellent"
	}
}

// scoreVariety counts which of the four character classes appear. A string
// matching no class at all (e.g. pure whitespace) scores 0 with no note.
func scoreVariety(runes []rune) (int, string) {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	classes := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if present {
			classes++
		}
	}

	switch classes {
	case 0:
		return 0, ""
	case 1:
		return 1, "variety: only one character type"
	case 2:
		return 2, "variety: two character types"
	case 3:
		return 3, "variety: three character types"
	default:
		return 4, "variety: all character types"
	}
}

// scoreRepetition rates the ratio of distinct characters to total length.
// The ratio is defined as 0 for empty input.
func scoreRepetition(runes []rune) (int, string) {
	ratio := 0.0
	if len(runes) > 0 {
		distinct := make(map[rune]struct{}, len(runes))
		for _, r := range runes {
			distinct[r] = struct{}{}
		}
		ratio = float64(len(distinct)) / float64(len(runes))
	}

	switch {
	case ratio < 0.5:
		return 1, "repetition: many repeated characters"
	case ratio < 0.8:
		return 2, "repetition: some repeated characters"
	default:
		return 3, "repetition: few repeated characters"
	}
}

// rate buckets the composite score into a Rating.
func rate(score int) Rating {
	switch {
	case score <= 4:
		return VeryWeak
	case score <= 6:
		return Weak
	case score <= 8:
		return Medium
	case score <= 10:
		return Strong
	default:
		return VeryStrong
	}
}
