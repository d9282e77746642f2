package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// WordType is the grammatical category shown as a tile colour.
type WordType string

const (
	WordNoun  WordType = "noun"
	WordVerb  WordType = "verb"
	WordAdj   WordType = "adj"
	WordOther WordType = "other"
)

// AllWordTypes returns the word types in legend order.
func AllWordTypes() []WordType {
	return []WordType{WordNoun, WordVerb, WordAdj, WordOther}
}

// ParseWordType maps a source string onto a WordType. Unknown or empty
// values become WordOther.
func ParseWordType(s string) WordType {
	switch WordType(strings.ToLower(strings.TrimSpace(s))) {
	case WordNoun:
		return WordNoun
	case WordVerb:
		return WordVerb
	case WordAdj, "adjective":
		return WordAdj
	default:
		return WordOther
	}
}

// Label returns the legend text for a word type.
func (t WordType) Label() string {
	switch t {
	case WordNoun:
		return "Noun"
	case WordVerb:
		return "Verb"
	case WordAdj:
		return "Adjective"
	default:
		return "Word"
	}
}

// Word is a single tile. Position is its 1-based slot in the canonical
// sentence.
type Word struct {
	ID       string
	Position int
	Text     string
	Type     WordType
}

// Question is one sentence to rebuild.
type Question struct {
	Source       string
	Words        []Word
	Hint         string
	Explanation  string
	SolutionText string
}

// CanonicalOrder returns a copy of the words sorted by position.
func (q Question) CanonicalOrder() []Word {
	words := slices.Clone(q.Words)
	slices.SortStableFunc(words, func(a, b Word) int {
		return a.Position - b.Position
	})
	return words
}

// Solution returns the display text of the correct sentence.
func (q Question) Solution() string {
	if q.SolutionText != "" {
		return q.SolutionText
	}
	words := q.CanonicalOrder()
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// Level is an ordered group of questions. ID is 1-based and matches the
// level's position in the catalog.
type Level struct {
	ID        int
	Title     string
	Questions []Question
}

// WordCount returns the number of tiles across all questions in the level.
func (l Level) WordCount() int {
	n := 0
	for _, q := range l.Questions {
		n += len(q.Words)
	}
	return n
}

// Catalog is the immutable course definition.
type Catalog struct {
	Version string
	Title   string
	Tagline string
	Levels  []Level
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.Levels)
}

// Level returns the level at the 0-based index.
func (c *Catalog) Level(index int) (Level, error) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, fmt.Errorf("level index %d out of range [0, %d)", index, len(c.Levels))
	}
	return c.Levels[index], nil
}
