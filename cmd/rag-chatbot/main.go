package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/paker7000/rag-chatbot/internal/config"
	"github.com/paker7000/rag-chatbot/internal/rag"
	"github.com/paker7000/rag-chatbot/internal/session"
	"github.com/paker7000/rag-chatbot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/rag-chatbot/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	creds := config.LoadCredentials()
	sess := session.New(creds, cfg, rag.Ingest(), rag.Chat())

	m := tui.New(sess, creds.Keys())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
