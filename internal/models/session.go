package models

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

// SessionState is the lifecycle stage of a StudySession.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionInProgress
	SessionFinished
)

func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionInProgress:
		return "in_progress"
	case SessionFinished:
		return "finished"
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// StudySession is a single forward pass over a set's terms in a random order
// fixed at creation. The set is never mutated.
type StudySession struct {
	id       uuid.UUID
	set      *FlashcardSet
	terms    []string
	position int
	revealed bool
	state    SessionState
}

// NewStudySession shuffles the set's terms with rng. The session stays in
// SessionNotStarted until Start is called. A nil rng uses the package-level source.
func NewStudySession(set *FlashcardSet, rng *rand.Rand) (*StudySession, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrEmptySet
	}

	// Start from sorted terms so a seeded rng yields the same order regardless of map iteration.
	terms := set.Terms()

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(terms), func(i, j int) {
		terms[i], terms[j] = terms[j], terms[i]
	})

	return &StudySession{
		id:    uuid.New(),
		set:   set,
		terms: terms,
		state: SessionNotStarted,
	}, nil
}

// Start positions the session on the first card.
func (s *StudySession) Start() error {
	if s.state != SessionNotStarted {
		return ErrSessionStarted
	}
	s.state = SessionInProgress
	return nil
}

func (s *StudySession) ID() uuid.UUID       { return s.id }
func (s *StudySession) Title() string       { return s.set.Title }
func (s *StudySession) State() SessionState { return s.state }
func (s *StudySession) Position() int       { return s.position }
func (s *StudySession) Len() int            { return len(s.terms) }
func (s *StudySession) Revealed() bool      { return s.revealed }

// Terms returns a copy of the shuffled term order.
func (s *StudySession) Terms() []string {
	return slices.Clone(s.terms)
}

// CurrentTerm returns the term at the current position.
func (s *StudySession) CurrentTerm() (string, error) {
	if err := s.inProgress(); err != nil {
		return "", err
	}
	return s.terms[s.position], nil
}

// Reveal marks the current card as revealed and returns its definition.
// Repeated calls before Advance return the same definition.
func (s *StudySession) Reveal() (string, error) {
	if err := s.inProgress(); err != nil {
		return "", err
	}
	s.revealed = true
	def, _ := s.set.Definition(s.terms[s.position])
	return def, nil
}

// Advance moves to the next card. Once every card has been shown the session
// becomes SessionFinished and must be discarded.
func (s *StudySession) Advance() (SessionState, error) {
	if err := s.inProgress(); err != nil {
		return s.state, err
	}

	s.position++
	s.revealed = false
	if s.position == len(s.terms) {
		s.state = SessionFinished
	}
	return s.state, nil
}

func (s *StudySession) inProgress() error {
	switch s.state {
	case SessionNotStarted:
		return ErrSessionNotStarted
	case SessionFinished:
		return ErrSessionFinished
	}
	return nil
}
