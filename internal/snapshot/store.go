// Package snapshot saves screen captures as numbered PNG files.
package snapshot

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirEnv is the env var override for the snapshot directory.
	DirEnv = "PORTANAV_SNAPSHOT_DIR"
	// DefaultDir is the default directory under the user's home.
	DefaultDir = ".portanav/snapshots"
	// DefaultPattern names captures SCR_0000, SCR_0001, ...
	DefaultPattern = "SCR_????"
	// Ext is appended to every capture.
	Ext = ".PNG"
)

var (
	// ErrInvalidPattern means the pattern has no run of '?' to number.
	ErrInvalidPattern = errors.New("snapshot pattern has no '?' placeholder")
	// ErrPatternExhausted means every name the pattern allows is taken.
	ErrPatternExhausted = errors.New("snapshot pattern exhausted")
)

// Store writes captures into a directory.
type Store struct {
	dir     string
	pattern string
}

// NewStore creates a store writing to dir. An empty dir falls back to
// PORTANAV_SNAPSHOT_DIR, then ~/.portanav/snapshots. An empty pattern means
// DefaultPattern.
func NewStore(dir, pattern string) (*Store, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, _, _, err := splitPattern(pattern); err != nil {
		return nil, err
	}
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("snapshot dir: %w", err)
		}
		dir = filepath.Join(home, DefaultDir)
	}
	return &Store{dir: dir, pattern: pattern}, nil
}

// Dir returns the directory captures are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Pattern returns the file name pattern.
func (s *Store) Pattern() string {
	return s.pattern
}

// NextPath returns the first path, without extension, whose number fills
// the pattern's '?' run and that no existing file uses as its stem.
func (s *Store) NextPath(pattern string) (string, error) {
	prefix, width, suffix, err := splitPattern(pattern)
	if err != nil {
		return "", err
	}

	taken, err := stems(s.dir)
	if err != nil {
		return "", err
	}

	limit := 1
	for range width {
		limit *= 10
	}
	for n := range limit {
		stem := fmt.Sprintf("%s%0*d%s", prefix, width, n, suffix)
		if !taken[stem] {
			return filepath.Join(s.dir, stem), nil
		}
	}
	return "", fmt.Errorf("%s in %s: %w", pattern, s.dir, ErrPatternExhausted)
}

// Capture renders frame and saves it under the next free name.
// Returns the written file's path.
func (s *Store) Capture(frame string) (string, error) {
	stem, err := s.NextPath(s.pattern)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := stem + Ext
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, Render(frame)); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// splitPattern splits "SCR_????" into "SCR_", 4, "".
func splitPattern(pattern string) (prefix string, width int, suffix string, err error) {
	start := strings.IndexByte(pattern, '?')
	if start < 0 || strings.ContainsAny(pattern, `/\`) {
		return "", 0, "", fmt.Errorf("%q: %w", pattern, ErrInvalidPattern)
	}
	end := start
	for end < len(pattern) && pattern[end] == '?' {
		end++
	}
	// More digits than an int can count is never useful.
	if end-start > 9 {
		return "", 0, "", fmt.Errorf("%q: %w", pattern, ErrInvalidPattern)
	}
	return pattern[:start], end - start, pattern[end:], nil
}

// stems returns the file names in dir with their extensions removed.
// A missing dir has no stems.
func stems(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}
	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		name := e.Name()
		out[strings.TrimSuffix(name, filepath.Ext(name))] = true
	}
	return out, nil
}
