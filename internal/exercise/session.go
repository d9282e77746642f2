package exercise

import (
	"slices"

	"github.com/abhisek/grammarjourney/internal/catalog"
)

// Status is the correctness state of a question attempt.
type Status int

const (
	StatusPlaying   Status = iota // Building the answer
	StatusCorrect                 // Solved or given up; terminal until Reset
	StatusIncorrect               // Last check failed; cleared by the next move
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// State is a copy of a session's observable state, handed to renderers.
type State struct {
	Pool               []catalog.Word
	Placed             []catalog.Word
	Status             Status
	HintVisible        bool
	ExplanationVisible bool
	GaveUp             bool
}

// Session is the live attempt at one question. Every word of the question
// is in exactly one of pool and placed.
type Session struct {
	question catalog.Question
	shuffle  Shuffler

	pool   []catalog.Word
	placed []catalog.Word
	status Status

	hintVisible        bool
	explanationVisible bool
	gaveUp             bool
}

// New validates q and starts a fresh attempt with a shuffled word pool.
// A nil shuffle uses RandomShuffler.
func New(q catalog.Question, shuffle Shuffler) (*Session, error) {
	if err := catalog.ValidateQuestion(q); err != nil {
		return nil, err
	}
	if shuffle == nil {
		shuffle = RandomShuffler()
	}
	s := &Session{question: q, shuffle: shuffle}
	s.Reset()
	return s, nil
}

// Reset reshuffles the pool and clears the answer and all flags.
func (s *Session) Reset() {
	s.pool = shuffled(s.question.Words, s.shuffle)
	s.placed = nil
	s.status = StatusPlaying
	s.hintVisible = false
	s.explanationVisible = false
	s.gaveUp = false
}

// SelectWord moves a pool word to the end of the answer.
func (s *Session) SelectWord(id string) error {
	if s.status == StatusCorrect {
		return Reject("select", "question already solved")
	}
	i := indexOf(s.pool, id)
	if i < 0 {
		return Reject("select", "word "+id+" is not in the pool")
	}

	w := s.pool[i]
	s.pool = slices.Delete(s.pool, i, i+1)
	s.placed = append(s.placed, w)
	s.status = StatusPlaying
	return nil
}

// RemoveWord moves a placed word back to the end of the pool.
func (s *Session) RemoveWord(id string) error {
	if s.status == StatusCorrect {
		return Reject("remove", "question already solved")
	}
	i := indexOf(s.placed, id)
	if i < 0 {
		return Reject("remove", "word "+id+" is not placed")
	}

	w := s.placed[i]
	s.placed = slices.Delete(s.placed, i, i+1)
	s.pool = append(s.pool, w)
	s.status = StatusPlaying
	return nil
}

// CheckAnswer compares the placed words with the canonical order. Only a
// full-length, exactly ordered answer is correct.
func (s *Session) CheckAnswer() (Status, error) {
	if s.status == StatusCorrect {
		return s.status, Reject("check", "question already solved")
	}
	if len(s.placed) == 0 {
		return s.status, Reject("check", "no words placed")
	}

	if len(s.placed) == len(s.question.Words) && inCanonicalOrder(s.placed) {
		s.status = StatusCorrect
		s.explanationVisible = true
	} else {
		s.status = StatusIncorrect
	}
	return s.status, nil
}

// GiveUp places every word in canonical order and completes the question.
func (s *Session) GiveUp() error {
	if s.status == StatusCorrect {
		return Reject("give up", "question already solved")
	}
	s.placed = s.question.CanonicalOrder()
	s.pool = nil
	s.status = StatusCorrect
	s.explanationVisible = true
	s.gaveUp = true
	return nil
}

// ToggleHint shows or hides the hint. Status and placement are unaffected.
func (s *Session) ToggleHint() error {
	if s.status == StatusCorrect {
		return Reject("hint", "question already solved")
	}
	s.hintVisible = !s.hintVisible
	return nil
}

// Question returns the question being attempted.
func (s *Session) Question() catalog.Question { return s.question }

// Pool returns the unplaced words in presentation order.
func (s *Session) Pool() []catalog.Word { return slices.Clone(s.pool) }

// Placed returns the answer built so far.
func (s *Session) Placed() []catalog.Word { return slices.Clone(s.placed) }

func (s *Session) Status() Status           { return s.status }
func (s *Session) HintVisible() bool        { return s.hintVisible }
func (s *Session) ExplanationVisible() bool { return s.explanationVisible }
func (s *Session) GaveUp() bool             { return s.gaveUp }
func (s *Session) Complete() bool           { return s.status == StatusCorrect }

// CanCheck reports whether CheckAnswer would be accepted.
func (s *Session) CanCheck() bool {
	return s.status != StatusCorrect && len(s.placed) > 0
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return State{
		Pool:               s.Pool(),
		Placed:             s.Placed(),
		Status:             s.status,
		HintVisible:        s.hintVisible,
		ExplanationVisible: s.explanationVisible,
		GaveUp:             s.gaveUp,
	}
}

func indexOf(words []catalog.Word, id string) int {
	return slices.IndexFunc(words, func(w catalog.Word) bool { return w.ID == id })
}
