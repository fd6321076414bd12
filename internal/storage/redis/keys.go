package redis

import (
	"fmt"

	"github.com/mcoot/susround/internal/model"
)

// Key prefix for all round data
const keyPrefix = "susround"

// sessionKey returns the Redis key for a Session
func sessionKey(code model.SessionCode) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, code)
}

// sessionIndexKey returns the Redis key for the SET of known session codes
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
