package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/susround/internal/dependencies/clock"
	"github.com/mcoot/susround/internal/dependencies/random"
	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/round"
	"github.com/mcoot/susround/internal/storage"
)

const (
	// SessionCodeLength is the length of generated session codes
	SessionCodeLength = 6
	// SessionCodeAlphabet is the characters used in session codes (avoid confusing chars)
	SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxCodeAttempts = 16
)

// Controller owns stored sessions and feeds actions through the round machine
type Controller struct {
	storage storage.Storage
	machine *round.Machine
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu makes load, apply and save one step per dispatch
	mu sync.Mutex
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	machine *round.Machine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		machine: machine,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateSession creates an empty session in the lobby phase
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Generate unique session code
	var code model.SessionCode
	for attempt := 0; ; attempt++ {
		if attempt == maxCodeAttempts {
			return nil, fmt.Errorf("no free session code after %d attempts", maxCodeAttempts)
		}
		code = model.SessionCode(c.random.String(SessionCodeLength, SessionCodeAlphabet))
		if code == "" {
			continue
		}
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	session := model.NewSession(code, c.clock.Now())
	if err := c.storage.SaveSession(ctx, &session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created", slog.String("session_code", string(code)))
	return &session, nil
}

// GetSession retrieves a session by code
func (c *Controller) GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.storage.GetSession(ctx, code)
}

// ListSessions returns the codes of all live sessions
func (c *Controller) ListSessions(ctx context.Context) ([]model.SessionCode, error) {
	return c.storage.ListSessions(ctx)
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, code model.SessionCode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exists, err := c.storage.SessionExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSessionNotFound
	}

	if err := c.storage.DeleteSession(ctx, code); err != nil {
		return err
	}

	c.logger.Info("session deleted", slog.String("session_code", string(code)))
	return nil
}

// Dispatch applies an action to a stored session and persists the result.
//
// On a validation error the returned session carries the error message and
// is saved, so every viewer sees it. Phase violations and unknown actions
// leave storage untouched and return a nil session.
func (c *Controller) Dispatch(ctx context.Context, code model.SessionCode, action round.Action) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	next, applyErr := c.machine.Apply(*current, action)
	if applyErr != nil && !model.IsValidationError(applyErr) {
		c.logger.Warn("action rejected",
			slog.String("session_code", string(code)),
			slog.String("action", string(action.Type)),
			slog.String("phase", string(current.Phase)),
			slog.String("error", applyErr.Error()),
		)
		return nil, applyErr
	}

	if err := c.storage.SaveSession(ctx, &next); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if applyErr != nil {
		c.logger.Warn("action failed validation",
			slog.String("session_code", string(code)),
			slog.String("action", string(action.Type)),
			slog.String("error", applyErr.Error()),
		)
		return &next, applyErr
	}

	c.logger.Info("action applied",
		slog.String("session_code", string(code)),
		slog.String("action", string(action.Type)),
		slog.Int("round", next.Round),
		slog.String("phase", string(next.DisplayPhase())),
	)

	if !next.Outcome.Equal(current.Outcome) && next.Outcome != nil {
		c.logger.Info("round resolved",
			slog.String("session_code", string(code)),
			slog.Int("round", next.Round),
			slog.String("winner", string(next.Outcome.Winner)),
			slog.String("reason", next.Outcome.Reason),
		)
	}

	return &next, nil
}
