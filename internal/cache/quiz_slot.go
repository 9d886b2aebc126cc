// Package cache holds the in-process cache of the most recently generated
// quiz. There is exactly one slot: each successful upload overwrites it, and
// nothing survives a process restart.
package cache

import (
	"sync"

	"craftquiz/internal/model"
)

// QuizSlot is a single guarded slot. Echo serves requests concurrently, so
// reads and writes go through an RWMutex; semantics stay last-writer-wins.
type QuizSlot struct {
	mu   sync.RWMutex
	quiz model.Quiz
	set  bool
}

// NewQuizSlot returns an empty slot.
func NewQuizSlot() *QuizSlot {
	return &QuizSlot{}
}

// Store overwrites the slot with the given quiz.
func (s *QuizSlot) Store(quiz model.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = quiz
	s.set = true
}

// Load returns the current quiz and whether one has been stored yet.
func (s *QuizSlot) Load() (model.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quiz, s.set
}
