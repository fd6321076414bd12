package factory

import (
	"time"

	"github.com/mcoot/susround/internal/content"
	"github.com/mcoot/susround/internal/dependencies/mocks"
	"github.com/mcoot/susround/internal/storage"
	"github.com/mcoot/susround/internal/storage/memory"
	"github.com/mcoot/susround/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage is NewTestApp over a caller-supplied store
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, content.Default(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}

// QueueIdentityDeal queues draws so the next round for n players deals
// roles in roster order: the first k players are the impostors and, with
// six or more players, the first crew-aligned player is the analyst.
func (t *TestApp) QueueIdentityDeal(n int) {
	for i := n - 1; i > 0; i-- {
		t.MockRandom.QueueIntn(i)
	}
	if n >= 6 {
		t.MockRandom.QueueIntn(0)
	}
}
