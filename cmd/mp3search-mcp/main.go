package main

import (
	"context"
	"flag"
	"log"

	"mp3search/internal/catalog"
	"mp3search/internal/config"
	"mp3search/internal/mcp"
	"mp3search/internal/playlist"
	"mp3search/internal/tags"
)

func main() {
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

	searcher := catalog.NewSearcher(catalog.Config{
		Root:              cfg.Search.Root,
		Limit:             cfg.Search.Limit,
		WritePlaylistFile: cfg.Search.WritePlaylistFile,
		MatchMode:         cfg.Search.MatchMode,
	}, tags.NewReader(), playlist.Write)

	srv := mcp.NewServer(searcher)
	if err := srv.Serve(context.Background()); err != nil {
		log.Fatalf("mcp server failed: %v", err)
	}
}
