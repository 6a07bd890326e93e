package backend

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveSession writes s to path, readable only by the owner.
func SaveSession(path string, s Session) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// LoadSession reads a session saved by SaveSession.
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("reading session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parsing session: %w", err)
	}
	if s.Token == "" {
		return Session{}, errors.New("session file has no token")
	}
	return s, nil
}
