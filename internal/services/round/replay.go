package round

import (
	"fmt"

	"github.com/mcoot/susround/internal/model"
)

// Replay folds actions over an initial session. Validation failures are kept
// in the session's Error message and replay carries on, the same as a player
// correcting a typo; any other error stops the replay.
func Replay(m *Machine, initial model.Session, actions ...Action) (model.Session, error) {
	s := initial
	for i, a := range actions {
		next, err := m.Apply(s, a)
		if err != nil && !model.IsValidationError(err) {
			return s, fmt.Errorf("replay action %d (%s): %w", i, a.Type, err)
		}
		s = next
	}
	return s, nil
}
