package catalog

import (
	"fmt"
	"strings"

	"mp3search/internal/domain"
	"mp3search/internal/query"
)

const separator = "----------------------------------------"

// render produces the report: header, per-track metadata block, then the
// playlist summary block. When enabled, the playlist manifest is written as a
// side effect and a failure there is reported inline, never raised.
func (s *Searcher) render(req query.Request, results []domain.Result) string {
	terms := strings.Join(req.Terms, " ")
	if len(results) == 0 {
		return fmt.Sprintf("❌ No MP3 files found matching '%s'.\n", terms) +
			"Try different search terms or check if the folder contains MP3 files."
	}

	var b strings.Builder
	if terms != "" {
		fmt.Fprintf(&b, "🔍 Found %d MP3 files matching '%s':\n\n", len(results), terms)
	} else {
		fmt.Fprintf(&b, "🔍 Found %d MP3 files:\n\n", len(results))
	}

	for i, r := range results {
		meta := s.tags.Read(r.Entry.Path)
		fmt.Fprintf(&b, "%d. %s\n   BPM: %s | Genre: %s\n", i+1, r.Entry.Name, meta.BPM, meta.Genre)
	}

	fmt.Fprintf(&b, "\n📋 Playlist: %s (%d tracks)\n", req.Playlist, len(results))
	b.WriteString(separator)
	b.WriteString("\n")
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Entry.Name)
	}
	b.WriteString(separator)

	if s.cfg.WritePlaylistFile && s.manifest != nil {
		paths := make([]string, len(results))
		for i, r := range results {
			paths[i] = r.Entry.Path
		}
		if out, err := s.manifest(s.cfg.Root, req.Playlist, paths); err != nil {
			fmt.Fprintf(&b, "\n⚠️ Could not write playlist file: %v", err)
		} else {
			fmt.Fprintf(&b, "\n💾 Playlist saved to %s", out)
		}
	}

	return b.String()
}
