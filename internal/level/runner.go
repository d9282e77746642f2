// Package level steps a learner through the questions of one level.
package level

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/grammarjourney/internal/catalog"
	"github.com/abhisek/grammarjourney/internal/exercise"
)

// Outcome is the result of advancing past a solved question.
type Outcome int

const (
	OutcomeNextQuestion  Outcome = iota // A fresh session for the next question
	OutcomeLevelComplete                // The last question was solved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNextQuestion:
		return "next_question"
	case OutcomeLevelComplete:
		return "level_complete"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Runner tracks the current question within a level. A new Runner is
// created every time a level is entered, so the index always starts at 0.
type Runner struct {
	level   catalog.Level
	shuffle exercise.Shuffler
	runID   string

	index   int
	session *exercise.Session
	done    bool
}

// New starts lvl at its first question. Every question is validated up
// front so a malformed entry fails before any play begins.
func New(lvl catalog.Level, shuffle exercise.Shuffler) (*Runner, error) {
	if len(lvl.Questions) == 0 {
		return nil, fmt.Errorf("level %d: %w", lvl.ID, &catalog.MalformedEntryError{
			Problems: []string{"no questions"},
		})
	}
	for i, q := range lvl.Questions {
		if err := catalog.ValidateQuestion(q); err != nil {
			return nil, fmt.Errorf("level %d question %d: %w", lvl.ID, i+1, err)
		}
	}
	if shuffle == nil {
		shuffle = exercise.RandomShuffler()
	}

	r := &Runner{
		level:   lvl,
		shuffle: shuffle,
		runID:   uuid.NewString(),
	}
	if err := r.startQuestion(0); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) startQuestion(index int) error {
	sess, err := exercise.New(r.level.Questions[index], r.shuffle)
	if err != nil {
		return fmt.Errorf("level %d question %d: %w", r.level.ID, index+1, err)
	}
	r.index = index
	r.session = sess
	return nil
}

// Advance moves past the current, solved question. On the last question it
// reports OutcomeLevelComplete and keeps the final session in place.
func (r *Runner) Advance() (Outcome, error) {
	if r.done {
		return 0, exercise.Reject("advance", "level already completed")
	}
	if !r.session.Complete() {
		return 0, exercise.Reject("advance", "question not answered correctly")
	}

	if r.index < len(r.level.Questions)-1 {
		if err := r.startQuestion(r.index + 1); err != nil {
			return 0, err
		}
		return OutcomeNextQuestion, nil
	}

	r.done = true
	return OutcomeLevelComplete, nil
}

// Restart reshuffles the current question. It is a no-op once the level
// is done.
func (r *Runner) Restart() {
	if r.done {
		return
	}
	r.session.Reset()
}

// Level returns the level being played.
func (r *Runner) Level() catalog.Level { return r.level }

// Session returns the live session for the current question.
func (r *Runner) Session() *exercise.Session { return r.session }

// QuestionIndex returns the 0-based index of the current question.
func (r *Runner) QuestionIndex() int { return r.index }

// QuestionCount returns the number of questions in the level.
func (r *Runner) QuestionCount() int { return len(r.level.Questions) }

// Done reports whether the level has been completed.
func (r *Runner) Done() bool { return r.done }

// RunID identifies this play-through in logs.
func (r *Runner) RunID() string { return r.runID }

// Progress returns the fraction of questions answered correctly so far.
func (r *Runner) Progress() float64 {
	total := len(r.level.Questions)
	answered := r.index
	if r.session.Complete() {
		answered++
	}
	return float64(answered) / float64(total)
}
