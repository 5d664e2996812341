package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"mp3search/internal/agent"
	"mp3search/internal/assistant"
	"mp3search/internal/catalog"
	"mp3search/internal/config"
	"mp3search/internal/playlist"
	"mp3search/internal/tags"
	"mp3search/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/mp3search/config.yaml if not provided)")
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

	// Assemble components
	searcher := catalog.NewSearcher(catalog.Config{
		Root:              cfg.Search.Root,
		Limit:             cfg.Search.Limit,
		WritePlaylistFile: cfg.Search.WritePlaylistFile,
		MatchMode:         cfg.Search.MatchMode,
	}, tags.NewReader(), playlist.Write)

	var ag assistant.AgentPort
	if cfg.LLM.Enabled {
		client := agent.NewClient(agent.ClientConfig{
			BaseURL:     cfg.LLM.BaseURL,
			APIKeyEnv:   cfg.LLM.APIKeyEnv,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
		})
		ag = agent.New(client, []agent.Tool{assistant.SearchTool(searcher)}, cfg.LLM.MaxIterations)
	}
	asst := assistant.New(searcher, ag)

	// One-shot mode: remaining args form a single query, answered on stdout.
	if args := flag.Args(); len(args) > 0 {
		fmt.Println(asst.Respond(strings.Join(args, " ")))
		return
	}

	m := tui.New(asst)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
