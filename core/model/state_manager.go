// Package model provides state management shared by the classifiers.
package model

import (
	"sync"

	scierrors "github.com/lintext/textclass/pkg/errors"
)

// StateManager tracks the trained state of a model in a thread-safe manner.
// Classifiers hold one by composition rather than embedding a base type.
type StateManager struct {
	trained bool
	mu      sync.RWMutex
}

// NewStateManager creates a new StateManager in the untrained state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsTrained returns whether the model has been trained.
func (s *StateManager) IsTrained() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trained
}

// SetTrained marks the model as trained.
func (s *StateManager) SetTrained() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = true
}

// Reset returns the model to the untrained state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = false
}

// RequireTrained returns a NotFittedError naming the model and method if the
// model has not been trained.
func (s *StateManager) RequireTrained(modelName, method string) error {
	if !s.IsTrained() {
		return scierrors.NewNotFittedError(modelName, method)
	}
	return nil
}
