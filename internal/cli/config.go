package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession is returned by commands that need a session when none is set
var ErrNoSession = errors.New("no session selected: pass --session or run 'susround session create'")

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("SUSROUND_SERVER", "http://localhost:8080"),
		Session:     os.Getenv("SUSROUND_SESSION"),
		SessionFile: getEnvOrDefault("SUSROUND_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the session code from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		c.Session = normalizeCode(c.Session)
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.Session = normalizeCode(string(data))
	return nil
}

// SaveSession saves the session code to the session file
func (c *Config) SaveSession(code string) error {
	c.Session = normalizeCode(code)

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(c.Session), 0600)
}

// RequireSession returns the current session code or ErrNoSession
func (c *Config) RequireSession() (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	return c.Session, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".susround/session"
	}
	return filepath.Join(home, ".susround", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
