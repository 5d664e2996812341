package query

import (
	"strings"
	"time"
)

// Request is the structured form of a free-text search query.
type Request struct {
	// Terms are the lower-cased, whitespace-split search words. Empty means
	// "list everything" mode.
	Terms []string
	// Playlist is the display name for the result listing. Always non-empty:
	// a timestamp-derived name is generated when the query does not supply one.
	Playlist string
}

// now is swapped out in tests to pin the generated playlist name.
var now = time.Now

// Parse turns one free-text query into a Request. It is total: every string,
// including empty and malformed input, parses without error.
//
// Accepted shapes:
//   - plain search terms: "Ariana Grande god is a woman"
//   - "search: <terms> | playlist: <name>"
//   - "<terms> | playlist: <name>"
//
// Text wrapped in a tool-call syntax such as MP3Search('...') is unwrapped
// before parsing.
func Parse(raw string) Request {
	raw = stripToolWrapper(raw)

	searchTerms := ""
	playlist := ""

	if strings.Contains(raw, "|") {
		for _, part := range strings.Split(raw, "|") {
			part = strings.TrimSpace(part)
			lower := strings.ToLower(part)
			switch {
			case strings.HasPrefix(lower, "search:"):
				searchTerms = strings.TrimSpace(part[len("search:"):])
			case strings.HasPrefix(lower, "playlist:"):
				playlist = strings.TrimSpace(part[len("playlist:"):])
			default:
				// Unprefixed segment counts as search terms only if none
				// were found in an earlier segment.
				if searchTerms == "" {
					searchTerms = part
				}
			}
		}
	} else {
		searchTerms = strings.TrimSpace(raw)
	}

	if lower := strings.ToLower(searchTerms); strings.HasPrefix(lower, "search:") {
		searchTerms = strings.TrimSpace(searchTerms[len("search:"):])
	}

	if playlist == "" {
		playlist = "Playlist_" + now().Format("20060102_150405")
	}

	return Request{Terms: splitTerms(searchTerms), Playlist: playlist}
}

// stripToolWrapper extracts the argument of a tool-call-shaped query like
// MP3Search('jazz piano'), trimming surrounding quotes. The wrapper is only
// stripped when the whole query looks like a call: an identifier immediately
// followed by "(" and a trailing ")". A parenthetical inside ordinary search
// terms is left alone.
func stripToolWrapper(raw string) string {
	trimmed := strings.TrimSpace(raw)
	open := strings.Index(trimmed, "(")
	if open <= 0 || !strings.HasSuffix(trimmed, ")") {
		return raw
	}
	if !isIdentifier(trimmed[:open]) {
		return raw
	}
	closing := strings.LastIndex(trimmed, ")")
	inner := strings.TrimSpace(trimmed[open+1 : closing])
	return strings.Trim(inner, `'"`)
}

func isIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return s != ""
}

func splitTerms(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return nil
	}
	return fields
}
