package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataDir   string
	DBPath    string
	RemoteURL string
}

// New builds the runtime configuration. RemoteURL is empty when the local
// sqlite store backs the repository directly.
func New(dataDir, remoteURL string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "notehub.db"),
		RemoteURL: remoteURL,
	}, nil
}
