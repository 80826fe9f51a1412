package wordcount

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation lists the runes stripped from input before tokenizing.
const Punctuation = `/,.;:?!"`

var punctuationStripper = strings.NewReplacer(
	"/", "",
	",", "",
	".", "",
	";", "",
	":", "",
	"?", "",
	"!", "",
	`"`, "",
)

// Tally maps a normalized word to the number of times it occurs.
type Tally map[string]int

// Entry is a single word and its count, as shown in the results list.
type Entry struct {
	Word  string
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Word, e.Count)
}

// Normalize lowercases text and removes every rune in Punctuation.
func Normalize(text string) string {
	lowered := cases.Lower(language.Und).String(text)
	return punctuationStripper.Replace(lowered)
}

// Tokenize splits normalized text on runs of whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Count normalizes text and tallies each resulting word.
func Count(text string) Tally {
	tally := make(Tally)
	for _, word := range Tokenize(Normalize(text)) {
		tally[word]++
	}
	return tally
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Entries returns the tally ordered by count descending, then word ascending.
func (t Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for word, n := range t {
		entries = append(entries, Entry{Word: word, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	return entries
}
