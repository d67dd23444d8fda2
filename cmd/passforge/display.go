// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 PassForge Contributors

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/passforge/passforge/internal/strength"
)

// ratingBadge renders a colored "(symbol label)" marker for a rating.
func ratingBadge(r strength.Rating) string {
	return ratingColor(r).Sprintf("(%s %s)", r.Symbol(), r.Label())
}

// ratingColor maps ratings onto terminal colors, red through green.
func ratingColor(r strength.Rating) *color.Color {
	switch r {
	case strength.VeryWeak:
		return color.New(color.FgRed, color.Bold)
	case strength.Weak:
		return color.New(color.FgRed)
	case strength.Medium:
		return color.New(color.FgYellow)
	case strength.Strong:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

// printEvaluation writes the score, rating and feedback lines for one result.
func printEvaluation(w io.Writer, res strength.Result) {
	fmt.Fprintf(w, "Score:  %d/11\n", res.Score)
	fmt.Fprintf(w, "Rating: %s\n", ratingBadge(res.Rating))
	for _, line := range res.Feedback {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}
