package storage

import (
	"context"

	"github.com/mcoot/susround/internal/model"
)

// Storage holds live round sessions, keyed by table code
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error)
	DeleteSession(ctx context.Context, code model.SessionCode) error
	SessionExists(ctx context.Context, code model.SessionCode) (bool, error)
	ListSessions(ctx context.Context) ([]model.SessionCode, error)
}
