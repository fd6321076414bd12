package mocks

import (
	"fmt"

	"github.com/mcoot/susround/internal/dependencies/ids"
)

// MockIDs hands out predictable identifiers: player-1, player-2, ...
type MockIDs struct {
	Prefix string
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs using the "player" prefix
func NewMockIDs() *MockIDs {
	return &MockIDs{Prefix: "player"}
}

// NewID returns the next sequential identifier
func (g *MockIDs) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}

// Reset restarts the sequence
func (g *MockIDs) Reset() {
	g.next = 0
}
