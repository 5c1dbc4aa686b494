package services

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"flashcards/internal/logger"
	"flashcards/internal/models"
)

// SetLoader loads a flashcard set by title.
type SetLoader interface {
	Load(title string) (*models.FlashcardSet, error)
}

// StudyStats counts session outcomes since startup.
type StudyStats struct {
	Started   int
	Completed int
	Abandoned int
}

// StudyService starts study sessions for sets chosen by title.
type StudyService struct {
	loader SetLoader
	rng    *rand.Rand
	logger logger.Logger

	mu    sync.Mutex
	stats StudyStats
}

// NewStudyService creates a study service. A nil rng shuffles with the global source.
func NewStudyService(loader SetLoader, rng *rand.Rand, log logger.Logger) *StudyService {
	return &StudyService{
		loader: loader,
		rng:    rng,
		logger: log.WithComponent("study"),
	}
}

// Begin loads the set stored under title and starts a new shuffled session over it.
func (s *StudyService) Begin(title string) (*models.StudySession, error) {
	set, err := s.loader.Load(title)
	if err != nil {
		s.logger.Error("Failed to load set for study", err, map[string]interface{}{"title": title})
		return nil, err
	}

	session, err := models.NewStudySession(set, s.rng)
	if err != nil {
		s.logger.Warning("Refusing to study set", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("study %q: %w", title, err)
	}
	if err := session.Start(); err != nil {
		return nil, fmt.Errorf("study %q: %w", title, err)
	}

	s.mu.Lock()
	s.stats.Started++
	s.mu.Unlock()

	s.logger.Info("Study session started", map[string]interface{}{
		"title":      title,
		"session_id": session.ID().String(),
		"cards":      session.Len(),
	})
	return session, nil
}

// End records how session ended. Finished sessions count as completed, anything else as abandoned.
func (s *StudyService) End(session *models.StudySession) {
	if session == nil {
		return
	}

	s.mu.Lock()
	completed := session.State() == models.SessionFinished
	if completed {
		s.stats.Completed++
	} else {
		s.stats.Abandoned++
	}
	s.mu.Unlock()

	s.logger.Info("Study session ended", map[string]interface{}{
		"title":      session.Title(),
		"session_id": session.ID().String(),
		"completed":  completed,
		"position":   session.Position(),
		"cards":      session.Len(),
	})
}

func (s *StudyService) Stats() StudyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
