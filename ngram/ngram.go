// Package ngram provides padding and lazy character n-gram splitting for
// Unicode strings.
//
// Splitting operates on runes, never on byte offsets, so multi-byte
// characters are always kept intact. Sequences returned by Grams are
// restartable single-pass producers: ranging over the same sequence twice
// yields the same windows, and breaking early stops production immediately.
package ngram

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Sentinel is the boundary marker prepended and appended to terms before
// splitting, so edge n-grams encode string start and end.
//
// The sentinel may collide with real input characters; callers indexing text
// that legitimately contains '§' get slightly distorted boundary grams.
const Sentinel = '§'

// Pad returns k sentinel runes, followed by word, followed by k sentinel runes.
func Pad(word string, k int) string {
	if k <= 0 {
		return word
	}

	pads := strings.Repeat(string(Sentinel), k)

	var sb strings.Builder
	sb.Grow(len(pads)*2 + len(word))
	sb.WriteString(pads)
	sb.WriteString(word)
	sb.WriteString(pads)

	return sb.String()
}

// Grams returns a lazy sequence of every consecutive n-rune window of text.
// The sequence is empty if text has fewer than n runes or n < 1.
func Grams(text string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n < 1 {
			return
		}

		runes := []rune(text)
		for i := 0; i+n <= len(runes); i++ {
			if !yield(string(runes[i : i+n])) {
				return
			}
		}
	}
}

// Count returns the number of n-rune windows in text: runeLen(text)-n+1,
// or 0 if text is shorter than n runes.
func Count(text string, n int) int {
	if n < 1 {
		return 0
	}

	c := utf8.RuneCountInString(text) - n + 1
	if c < 0 {
		return 0
	}
	return c
}
