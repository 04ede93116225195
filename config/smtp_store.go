package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// SMTPSettings is an immutable snapshot of the transport configuration.
// The composer reads a fresh snapshot on every send; nothing mutates a
// snapshot after it has been published.
type SMTPSettings struct {
	Server      string `json:"server"`
	Port        string `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	SenderEmail string `json:"sender_email"`
}

// SMTPStore holds the current SMTP settings snapshot and persists updates
// to a JSON file so they survive restarts. Updates swap the snapshot
// atomically; readers never block writers and never observe a partial
// update. The snapshot is per-process - multi-process deployments need an
// external shared store if cross-process consistency matters.
type SMTPStore struct {
	path    string
	current atomic.Pointer[SMTPSettings]
}

// NewSMTPStore builds a store seeded from environment defaults. If the
// backing file exists, its values take precedence over the environment.
func NewSMTPStore(path string, defaults SMTPSettings) (*SMTPStore, error) {
	s := &SMTPStore{path: path}

	settings := defaults
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var saved SMTPSettings
		if jsonErr := json.Unmarshal(data, &saved); jsonErr != nil {
			return nil, fmt.Errorf("smtp store: corrupt settings file %s: %w", path, jsonErr)
		}
		settings = saved
	case errors.Is(err, os.ErrNotExist):
		// First run, environment defaults apply.
	default:
		return nil, fmt.Errorf("smtp store: read %s: %w", path, err)
	}

	s.current.Store(&settings)
	return s, nil
}

// Current returns the active settings snapshot.
func (s *SMTPStore) Current() SMTPSettings {
	return *s.current.Load()
}

// Update persists the new settings and then publishes them. The file is
// written to a temp file and renamed so a crash mid-write never leaves a
// corrupt store behind. The in-memory snapshot only changes after the
// write succeeds.
func (s *SMTPStore) Update(settings SMTPSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("smtp store: encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".smtp_config-*.tmp")
	if err != nil {
		return fmt.Errorf("smtp store: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("smtp store: write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("smtp store: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("smtp store: replace settings file: %w", err)
	}

	s.current.Store(&settings)
	return nil
}

// IsConfigured reports whether credentials are present. An unconfigured
// store is not an error - sends are simply attempted unauthenticated.
func (s *SMTPStore) IsConfigured() bool {
	cur := s.Current()
	return cur.Server != "" && cur.Username != "" && cur.Password != ""
}

// MaskUsername hides a credential for reflection endpoints: the first
// three characters are kept, the rest replaced with a mask marker.
func MaskUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 3 {
		return strings.Repeat("*", len(username))
	}
	return username[:3] + "***"
}
