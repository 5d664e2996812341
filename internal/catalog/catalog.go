// Package catalog implements the MP3 search and report rendering core.
package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mp3search/internal/domain"
	"mp3search/internal/query"
)

// Match modes for filtering discovered files against search terms.
const (
	// MatchLoose keeps a file when its name contains at least one term.
	MatchLoose = "loose"
	// MatchPattern keeps a file only when its name matches the glob built
	// from all terms in order (*t1*t2*...*).
	MatchPattern = "pattern"
)

// DefaultLimit caps the number of returned results.
const DefaultLimit = 20

// Config carries all knobs of the search core. It is injected explicitly:
// the searcher never reads process environment or global state.
type Config struct {
	// Root is the directory scanned for .mp3 files.
	Root string
	// Limit caps the result count (DefaultLimit when <= 0).
	Limit int
	// WritePlaylistFile enables the manifest side effect in Root.
	WritePlaylistFile bool
	// MatchMode selects MatchLoose (default) or MatchPattern.
	MatchMode string
}

// ManifestWriter persists a playlist manifest and returns its path.
type ManifestWriter func(dir, name string, paths []string) (string, error)

// Searcher scans a directory tree for MP3 files, ranks them against parsed
// search terms and renders a playlist-style report. Each call is independent;
// the searcher holds no cross-call state.
type Searcher struct {
	cfg      Config
	tags     domain.TagReader
	manifest ManifestWriter
}

// NewSearcher creates a searcher with the given configuration and tag reader.
func NewSearcher(cfg Config, tags domain.TagReader, manifest ManifestWriter) *Searcher {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.MatchMode == "" {
		cfg.MatchMode = MatchLoose
	}
	return &Searcher{cfg: cfg, tags: tags, manifest: manifest}
}

// SearchQuery is the single-string-in, single-string-out tool boundary:
// it parses the raw query and runs the search. It never returns an error;
// every failure mode is reported inside the returned string.
func (s *Searcher) SearchQuery(raw string) string {
	return s.Search(query.Parse(raw))
}

// Search runs the scan, ranking and rendering for an already parsed request.
func (s *Searcher) Search(req query.Request) string {
	info, err := os.Stat(s.cfg.Root)
	if err != nil || !info.IsDir() {
		return "❌ Music directory not found at " + s.cfg.Root +
			". Please check the path or create the directory."
	}

	entries := s.enumerate()
	results := s.rank(entries, req.Terms)
	if len(results) > s.cfg.Limit {
		results = results[:s.cfg.Limit]
	}
	return s.render(req, results)
}

// enumerate walks the root and collects every .mp3 file. filepath.WalkDir
// visits entries in lexical order, so discovery order is deterministic for a
// given filesystem state and serves as the ranking tie-break.
func (s *Searcher) enumerate() []domain.Entry {
	var entries []domain.Entry
	_ = filepath.WalkDir(s.cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil //nolint:nilerr
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			entries = append(entries, domain.Entry{Path: path, Name: d.Name()})
		}
		return nil
	})
	return entries
}

// rank filters entries against the terms and orders them by the number of
// distinct matching terms, descending. Discovery order breaks ties. With no
// terms the entries pass through unranked.
func (s *Searcher) rank(entries []domain.Entry, terms []string) []domain.Result {
	results := make([]domain.Result, 0, len(entries))
	if len(terms) == 0 {
		for _, e := range entries {
			results = append(results, domain.Result{Entry: e})
		}
		return results
	}
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if !s.matches(name, terms) {
			continue
		}
		results = append(results, domain.Result{Entry: e, Score: score(name, terms)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func (s *Searcher) matches(name string, terms []string) bool {
	if s.cfg.MatchMode == MatchPattern {
		ok, err := filepath.Match(globPattern(terms), name)
		return err == nil && ok
	}
	for _, t := range terms {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// score counts the distinct terms contained in the lower-cased file name.
func score(name string, terms []string) int {
	n := 0
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if strings.Contains(name, t) {
			n++
		}
	}
	return n
}

// globPattern builds the strict-variant pattern *t1*t2*...* from the terms.
func globPattern(terms []string) string {
	var b strings.Builder
	b.WriteString("*")
	for _, t := range terms {
		b.WriteString(t)
		b.WriteString("*")
	}
	return b.String()
}
