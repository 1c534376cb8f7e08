package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	DBPath        string `yaml:"db_path" json:"db_path"`               // Path to the SQLite database
	BackupDir     string `yaml:"backup_dir" json:"backup_dir"`         // Directory for timestamped backups
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dbPath := "tasks.db"
	logPath := ""
	backupDir := "."
	if home != "" {
		dbPath = filepath.Join(home, ".taskdeck", "tasks.db")
		logPath = filepath.Join(home, ".taskdeck", "logs", "taskdeck.log")
		backupDir = filepath.Join(home, ".taskdeck", "backups")
	}

	return &Config{
		DBPath:        getEnv("TASKDECK_DB", dbPath),
		BackupDir:     getEnv("TASKDECK_BACKUP_DIR", backupDir),
		ConfirmDelete: true,
		LogLevel:      getEnv("TASKDECK_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("TASKDECK_LOG_FILE", logPath),
		LogConsole:    getEnv("TASKDECK_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck", "config.yaml"), nil
}

// Load loads config from ~/.taskdeck/config.yaml, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.taskdeck/config.yaml
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
