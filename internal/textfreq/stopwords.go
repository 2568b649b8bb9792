package textfreq

import (
	_ "embed"
	"strings"
)

// The bundled English list mirrors the standard NLP-toolkit stopword
// corpus, one word per line. Embedding it keeps the pipeline free of
// runtime resource downloads.
//
//go:embed stopwords_en.txt
var englishStopwords string

// Set is a stopword lookup set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a set from explicit words, lower-casing each.
func NewSet(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether w (already lower-cased by the tokenizer) is a
// stopword.
func (s *Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int { return len(s.words) }

// English returns the full embedded English stopword set.
func English() *Set {
	return NewSet(strings.Split(englishStopwords, "\n"))
}

// Basic returns the small hand-written set of common English function
// words used by the lite variant.
func Basic() *Set {
	return NewSet(basicWords)
}

var basicWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
	"has", "had", "do", "does", "did", "will", "would", "could", "should",
	"may", "might", "can", "this", "that", "these", "those", "i", "you",
	"he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "its", "our", "their", "mine", "yours", "hers",
	"ours", "theirs",
}
