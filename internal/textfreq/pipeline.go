// Package textfreq turns the free-text corpus of titles and abstracts
// into ranked word-frequency tables: tokenize, normalize, filter, count,
// rank. Output order is deterministic; count ties resolve to the token
// seen first in the corpus.
package textfreq

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits s into lower-cased word tokens. A token is a contiguous
// run of Unicode letters, digits, or underscore; any other rune delimits.
// Tokenizing the lower-cased output again yields the same sequence.
func Tokenize(s string) []string {
	tokens := make([]string, 0, len(s)/6+1)
	start := -1
	for i, r := range s {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, strings.ToLower(s[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, strings.ToLower(s[start:]))
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Entry is one ranked token with its occurrence count.
type Entry struct {
	Token string
	Count int
}

// Counts is a frequency table that remembers first-seen token order so
// that ranking ties break the same way on every run.
type Counts struct {
	counts map[string]int
	order  []string
}

func NewCounts() *Counts {
	return &Counts{counts: make(map[string]int)}
}

// Add increments the count for tok.
func (c *Counts) Add(tok string) {
	if _, ok := c.counts[tok]; !ok {
		c.order = append(c.order, tok)
	}
	c.counts[tok]++
}

// Get returns the count for tok, zero if absent.
func (c *Counts) Get(tok string) int { return c.counts[tok] }

// Len returns the number of distinct tokens.
func (c *Counts) Len() int { return len(c.order) }

// Top returns up to n entries sorted by count descending. Ties keep
// first-seen order (stable sort over the insertion sequence).
func (c *Counts) Top(n int) []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, tok := range c.order {
		out = append(out, Entry{Token: tok, Count: c.counts[tok]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Options controls filtering for the meaningful-word table.
type Options struct {
	// Stopwords is the active stopword set. Nil disables stopword
	// filtering (raw counting only applies it to the filtered table).
	Stopwords *Set
	// MinTokenLen keeps only tokens with at least this many runes in the
	// filtered table. The default of 3 drops one- and two-letter tokens.
	MinTokenLen int
	// Lemmatize reduces surviving tokens to a noun base form before the
	// filtered recount.
	Lemmatize bool
}

// DefaultOptions returns the full-variant pipeline settings.
func DefaultOptions() Options {
	return Options{Stopwords: English(), MinTokenLen: 3, Lemmatize: true}
}

// LiteOptions returns the self-contained variant: a small bundled
// function-word set and no morphological normalization.
func LiteOptions() Options {
	return Options{Stopwords: Basic(), MinTokenLen: 3, Lemmatize: false}
}

// Result holds both frequency tables plus corpus-level totals.
type Result struct {
	Raw      *Counts
	Filtered *Counts

	// TotalChars is the corpus length in runes, TotalWords the number of
	// whitespace-separated fields (both reported before tokenization).
	TotalChars int
	TotalWords int
}

// Analyze runs the pipeline over the full corpus text. An empty corpus
// produces empty tables, not an error.
func Analyze(corpus string, opt Options) Result {
	if opt.MinTokenLen <= 0 {
		opt.MinTokenLen = 3
	}
	res := Result{
		Raw:        NewCounts(),
		Filtered:   NewCounts(),
		TotalChars: utf8.RuneCountInString(corpus),
		TotalWords: len(strings.Fields(corpus)),
	}
	for _, tok := range Tokenize(corpus) {
		res.Raw.Add(tok)
		if opt.Stopwords != nil && opt.Stopwords.Contains(tok) {
			continue
		}
		if utf8.RuneCountInString(tok) < opt.MinTokenLen {
			continue
		}
		if opt.Lemmatize {
			tok = Lemma(tok)
		}
		res.Filtered.Add(tok)
	}
	return res
}
