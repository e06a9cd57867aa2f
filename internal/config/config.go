// Package config loads a session's resource policy (the [limits] section)
// from a TOML manifest, following the teacher's project.LoadProjectModules
// pattern: toml.DecodeFile into a private shape, then check meta.IsDefined
// for each optional section so a minimal manifest (or none at all) still
// produces sane defaults rather than a parse error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrManifestNotFound is returned by Find when no ouros.toml exists between
// startDir and the filesystem root.
var ErrManifestNotFound = errors.New("config: ouros.toml not found")

// SessionPolicy is the fully-resolved resource policy for one interpreter
// session (spec §4.I's Tracker construction inputs).
type SessionPolicy struct {
	MaxMemoryBytes    uint64
	MaxOperations     uint64
	MaxRecursionDepth int
	Timeout           time.Duration
}

// DefaultSessionPolicy matches the conservative ceiling a session gets when
// no manifest is present: generous enough for ordinary scripts, small
// enough that a runaway allocation loop still terminates quickly.
func DefaultSessionPolicy() SessionPolicy {
	return SessionPolicy{
		MaxMemoryBytes:    256 << 20,
		MaxOperations:     50_000_000,
		MaxRecursionDepth: 1000,
		Timeout:           30 * time.Second,
	}
}

// manifest mirrors ouros.toml's on-disk shape.
type manifest struct {
	Limits struct {
		MaxMemoryMB   int64 `toml:"max_memory_mb"`
		MaxOperations int64 `toml:"max_operations"`
		MaxRecursion  int64 `toml:"max_recursion"`
		TimeoutMS     int64 `toml:"timeout_ms"`
	} `toml:"limits"`
}

// Find walks up from startDir looking for ouros.toml, mirroring
// FindSurgeToml's upward directory walk.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ouros.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses path's [limits] section into a SessionPolicy, filling in
// DefaultSessionPolicy for any field the manifest leaves at zero.
func Load(path string) (SessionPolicy, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return SessionPolicy{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	policy := DefaultSessionPolicy()
	if !meta.IsDefined("limits") {
		return policy, nil
	}
	if m.Limits.MaxMemoryMB > 0 {
		policy.MaxMemoryBytes = uint64(m.Limits.MaxMemoryMB) << 20
	}
	if m.Limits.MaxOperations > 0 {
		policy.MaxOperations = uint64(m.Limits.MaxOperations)
	}
	if m.Limits.MaxRecursion > 0 {
		policy.MaxRecursionDepth = int(m.Limits.MaxRecursion)
	}
	if m.Limits.TimeoutMS > 0 {
		policy.Timeout = time.Duration(m.Limits.TimeoutMS) * time.Millisecond
	}
	return policy, nil
}

// LoadFromDir finds and loads ouros.toml starting at dir, returning
// DefaultSessionPolicy unchanged if no manifest exists.
func LoadFromDir(dir string) (SessionPolicy, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return SessionPolicy{}, err
	}
	if !ok {
		return DefaultSessionPolicy(), nil
	}
	return Load(path)
}
