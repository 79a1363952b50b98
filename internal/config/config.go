package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UploadConfig controls how uploaded documents are persisted for a session.
type UploadConfig struct {
	DirPrefix  string   `yaml:"dir_prefix"`
	Extensions []string `yaml:"extensions"`
}

// CollaboratorConfig holds the ordered candidate capability names tried when
// resolving the ingestion and chat collaborators. Highest priority first.
type CollaboratorConfig struct {
	IngestCandidates []string `yaml:"ingest_candidates"`
	ChatCandidates   []string `yaml:"chat_candidates"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Upload        UploadConfig       `yaml:"upload"`
	Collaborators CollaboratorConfig `yaml:"collaborators"`
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

// LoadDefault tries ./config.yaml first, then ~/.config/rag-chatbot/config.yaml.
// If neither exists, it writes defaults to ~/.config/rag-chatbot/config.yaml and returns them.
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
	return filepath.Join(home, ".config", "rag-chatbot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Upload: UploadConfig{
			DirPrefix:  "rag_uploads_",
			Extensions: []string{"pdf", "txt", "md"},
		},
		Collaborators: CollaboratorConfig{
			IngestCandidates: []string{"ingest_documents", "ingest_files", "ingest"},
			ChatCandidates:   []string{"chat", "ask", "answer_question", "query"},
		},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Upload.DirPrefix == "" {
		cfg.Upload.DirPrefix = "rag_uploads_"
	}
	if len(cfg.Upload.Extensions) == 0 {
		cfg.Upload.Extensions = []string{"pdf", "txt", "md"}
	}
	if len(cfg.Collaborators.IngestCandidates) == 0 {
		cfg.Collaborators.IngestCandidates = []string{"ingest_documents", "ingest_files", "ingest"}
	}
	if len(cfg.Collaborators.ChatCandidates) == 0 {
		cfg.Collaborators.ChatCandidates = []string{"chat", "ask", "answer_question", "query"}
	}
}
