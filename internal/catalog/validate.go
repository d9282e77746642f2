package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCatalogEntry is matched by every catalog integrity failure.
var ErrMalformedCatalogEntry = errors.New("malformed catalog entry")

// MalformedEntryError lists every integrity problem found in a question or
// catalog.
type MalformedEntryError struct {
	Problems []string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("%s:\n  %s", ErrMalformedCatalogEntry, strings.Join(e.Problems, "\n  "))
}

func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedCatalogEntry
}

// ValidateQuestion checks that a question's words have unique ids and that
// their positions form a contiguous 1..N permutation.
func ValidateQuestion(q Question) error {
	if errs := questionProblems(q); len(errs) > 0 {
		return &MalformedEntryError{Problems: errs}
	}
	return nil
}

func questionProblems(q Question) []string {
	var errs []string

	if len(q.Words) == 0 {
		return []string{"question has no words"}
	}

	n := len(q.Words)
	ids := make(map[string]bool, n)
	positions := make(map[int]bool, n)

	for _, w := range q.Words {
		switch {
		case w.ID == "":
			errs = append(errs, fmt.Sprintf("word %q has an empty id", w.Text))
		case ids[w.ID]:
			errs = append(errs, fmt.Sprintf("duplicate word id %q", w.ID))
		}
		ids[w.ID] = true

		if w.Position < 1 || w.Position > n {
			errs = append(errs, fmt.Sprintf("word %q position %d outside 1..%d", w.ID, w.Position, n))
			continue
		}
		if positions[w.Position] {
			errs = append(errs, fmt.Sprintf("word %q repeats position %d", w.ID, w.Position))
		}
		positions[w.Position] = true
	}

	for p := 1; p <= n; p++ {
		if !positions[p] {
			errs = append(errs, fmt.Sprintf("no word at position %d", p))
		}
	}

	return errs
}

// Validate performs all structural checks on a catalog and returns a single
// error describing every problem found, or nil if the catalog is valid.
func Validate(c *Catalog) error {
	if c == nil {
		return &MalformedEntryError{Problems: []string{"catalog is nil"}}
	}

	var errs []string

	if len(c.Levels) == 0 {
		errs = append(errs, "catalog has no levels")
	}

	for i, lvl := range c.Levels {
		prefix := fmt.Sprintf("level %d", i+1)
		if lvl.ID != i+1 {
			errs = append(errs, fmt.Sprintf("%s: id is %d, want %d", prefix, lvl.ID, i+1))
		}
		if strings.TrimSpace(lvl.Title) == "" {
			errs = append(errs, fmt.Sprintf("%s: empty title", prefix))
		}
		if len(lvl.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no questions", prefix))
		}
		for j, q := range lvl.Questions {
			for _, p := range questionProblems(q) {
				errs = append(errs, fmt.Sprintf("%s question %d: %s", prefix, j+1, p))
			}
		}
	}

	if len(errs) > 0 {
		return &MalformedEntryError{Problems: errs}
	}
	return nil
}
