package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SearchConfig configures the catalog search core.
type SearchConfig struct {
	Root              string `yaml:"root"`
	Limit             int    `yaml:"limit"`
	WritePlaylistFile bool   `yaml:"write_playlist_file"`
	MatchMode         string `yaml:"match_mode"`
}

// LLMConfig configures the OpenAI-compatible chat backend used by the agent.
type LLMConfig struct {
	Enabled       bool    `yaml:"enabled"`
	BaseURL       string  `yaml:"base_url"`
	APIKeyEnv     string  `yaml:"api_key_env"`
	Model         string  `yaml:"model"`
	Temperature   float64 `yaml:"temperature"`
	TimeoutSecs   int     `yaml:"timeout_secs"`
	MaxIterations int     `yaml:"max_iterations"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Search SearchConfig `yaml:"search"`
	LLM    LLMConfig    `yaml:"llm"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/mp3search/config.yaml.
// If neither exists, it writes defaults to ~/.config/mp3search/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mp3search", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Search: SearchConfig{Root: defaultMusicRoot(), Limit: 20, MatchMode: "loose"},
		LLM: LLMConfig{
			Enabled:       true,
			BaseURL:       "http://localhost:1234/v1",
			APIKeyEnv:     "OPENAI_API_KEY",
			Model:         "openhermes-2.5-mistral-7b",
			TimeoutSecs:   60,
			MaxIterations: 5,
		},
	}
	return cfg
}

// defaultMusicRoot points at the user's Desktop folder, the historical
// default location for the searched library.
func defaultMusicRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Search.Root == "" {
		cfg.Search.Root = defaultMusicRoot()
	}
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = 20
	}
	if cfg.Search.MatchMode == "" {
		cfg.Search.MatchMode = "loose"
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "http://localhost:1234/v1"
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "openhermes-2.5-mistral-7b"
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = 60
	}
	if cfg.LLM.MaxIterations == 0 {
		cfg.LLM.MaxIterations = 5
	}
}
