package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Settings is everything derived from one read of the overlay file.
type Settings struct {
	Scoring           *weights.Config
	RedactionPatterns []string
}

var settingsCache struct {
	mu       sync.RWMutex
	path     string
	exists   bool
	modTime  int64
	settings Settings
}

// CachedSettings returns the settings for path, re-reading the file only
// when its modification time changes. A missing file yields the defaults.
// A file that fails to parse or validate is not cached.
func CachedSettings(path string) (Settings, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	st, statErr := os.Stat(path)
	if statErr != nil {
		settingsCache.mu.RLock()
		if settingsCache.path == path && !settingsCache.exists {
			cached := settingsCache.settings
			settingsCache.mu.RUnlock()
			return cached, nil
		}
		settingsCache.mu.RUnlock()

		defaults := Settings{Scoring: weights.Default()}
		settingsCache.mu.Lock()
		settingsCache.path = path
		settingsCache.exists = false
		settingsCache.modTime = 0
		settingsCache.settings = defaults
		settingsCache.mu.Unlock()
		return defaults, nil
	}

	modTime := st.ModTime().UnixNano()
	settingsCache.mu.RLock()
	if settingsCache.path == path && settingsCache.exists && settingsCache.modTime == modTime {
		cached := settingsCache.settings
		settingsCache.mu.RUnlock()
		return cached, nil
	}
	settingsCache.mu.RUnlock()

	f, err := ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	cfg, err := f.ScoringConfig()
	if err != nil {
		return Settings{}, err
	}
	s := Settings{Scoring: cfg, RedactionPatterns: f.RedactionPatterns}

	settingsCache.mu.Lock()
	settingsCache.path = path
	settingsCache.exists = true
	settingsCache.modTime = modTime
	settingsCache.settings = s
	settingsCache.mu.Unlock()

	return s, nil
}

// CachedScoringConfig is CachedSettings narrowed to the scoring weights.
func CachedScoringConfig(path string) (*weights.Config, error) {
	s, err := CachedSettings(path)
	if err != nil {
		return nil, err
	}
	return s.Scoring, nil
}
