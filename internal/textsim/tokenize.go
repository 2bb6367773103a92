// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package textsim

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Analyzer turns a document into the terms counted by the vectorizer.
// It is safe for concurrent use once constructed.
type Analyzer struct {
	minN      int
	maxN      int
	stopWords StopWords
}

// NewAnalyzer creates an analyzer producing word n-grams of length minN..maxN.
// A nil stop-word set disables stop-word removal.
func NewAnalyzer(minN, maxN int, stopWords StopWords) *Analyzer {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	return &Analyzer{minN: minN, maxN: maxN, stopWords: stopWords}
}

// StripAccents decomposes s (NFKD) and removes combining marks.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Tokenize lowercases and accent-strips s and returns the maximal runs of
// letters, digits and underscores.
func Tokenize(s string) []string {
	s = strings.ToLower(StripAccents(s))
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Terms returns the n-gram terms of doc in document order. Stop words are
// removed before n-grams are formed, and n-gram tokens are joined by one space.
func (a *Analyzer) Terms(doc string) []string {
	tokens := Tokenize(doc)
	if a.stopWords != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if !a.stopWords.Contains(tok) {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	if a.maxN == 1 && a.minN == 1 {
		return tokens
	}

	terms := make([]string, 0, len(tokens)*(a.maxN-a.minN+1))
	for n := a.minN; n <= a.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			if n == 1 {
				terms = append(terms, tokens[i])
				continue
			}
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
