package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	HomePath     string
	StatePath    string
	DBPath       string
	SettingsPath string
	LogPath      string
	RedisAddr    string
}

func New(homePath string) (Config, error) {
	if homePath == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		homePath = filepath.Join(userHome, ".tomado")
	}
	return Config{
		HomePath:     homePath,
		StatePath:    filepath.Join(homePath, "state"),
		DBPath:       filepath.Join(homePath, "tomado.db"),
		SettingsPath: filepath.Join(homePath, "settings.yaml"),
		LogPath:      filepath.Join(homePath, "tomado.log"),
		RedisAddr:    os.Getenv("TOMADO_REDIS_ADDR"),
	}, nil
}
