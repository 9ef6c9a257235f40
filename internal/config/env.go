package config

import (
	"os"
	"strconv"
	"strings"
)

// Server holds the HTTP server settings.
type Server struct {
	Addr         string
	ConfigPath   string
	BatchWorkers int
}

func DefaultServer() Server {
	return Server{
		Addr:         ":8080",
		ConfigPath:   DefaultPath,
		BatchWorkers: 4,
	}
}

// ServerFromEnv reads TENANCY_ADDR, TENANCY_CONFIG and TENANCY_BATCH_WORKERS.
// Unset or malformed values keep their defaults.
func ServerFromEnv() Server {
	s := DefaultServer()
	if v := strings.TrimSpace(os.Getenv("TENANCY_ADDR")); v != "" {
		s.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("TENANCY_CONFIG")); v != "" {
		s.ConfigPath = v
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TENANCY_BATCH_WORKERS"))); err == nil && n > 0 {
		s.BatchWorkers = n
	}
	return s
}
