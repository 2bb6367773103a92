// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scaling applied to the secondary scorers in WeightedRatio.
const (
	tokenScale          = 0.95
	partialScale        = 0.90
	longPartialScale    = 0.60
	partialLengthRatio  = 1.5
	longPartialLenRatio = 8.0
)

// Normalize lowercases s, replaces every non letter/digit rune with a space
// and collapses surrounding whitespace.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Ratio returns the edit-distance similarity of a and b on a 0..100 scale:
// 100 * (1 - distance / max(len(a), len(b))), measured in runes.
func Ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(d)/float64(max(la, lb)))
}

// PartialRatio scores the shorter string against the best-matching window of
// the longer string of the same rune length.
func PartialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return Ratio(a, b)
	}
	short := string(ra)
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		if s := Ratio(short, string(rb[i:i+len(ra)])); s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// TokenSortRatio compares the strings after sorting their tokens.
func TokenSortRatio(a, b string, partial bool) float64 {
	sa, sb := sortedTokens(a), sortedTokens(b)
	if partial {
		return PartialRatio(sa, sb)
	}
	return Ratio(sa, sb)
}

// TokenSetRatio compares the shared tokens against each side's full token set,
// so extra words on one side cost little.
func TokenSetRatio(a, b string, partial bool) float64 {
	setA, setB := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for t := range setA {
		if _, ok := setB[t]; ok {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range setB {
		if _, ok := setA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(common, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	score := Ratio
	if partial {
		score = PartialRatio
	}
	best := score(combinedA, combinedB)
	if sect != "" {
		best = math.Max(best, score(sect, combinedA))
		best = math.Max(best, score(sect, combinedB))
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}

// WeightedRatio blends Ratio, PartialRatio and the token scorers, picking the
// best scaled score. Partial scorers are only consulted when one normalized
// string is at least 1.5 times longer than the other. Inputs are normalized
// first; an empty side scores 0.
func WeightedRatio(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}

	base := Ratio(a, b)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lenRatio < partialLengthRatio {
		return math.Max(base, math.Max(
			TokenSortRatio(a, b, false)*tokenScale,
			TokenSetRatio(a, b, false)*tokenScale,
		))
	}

	scale := partialScale
	if lenRatio > longPartialLenRatio {
		scale = longPartialScale
	}
	return math.Max(
		math.Max(base, PartialRatio(a, b)*scale),
		math.Max(
			TokenSortRatio(a, b, true)*tokenScale*scale,
			TokenSetRatio(a, b, true)*tokenScale*scale,
		),
	)
}
