package domain

// Entry represents a single audio file discovered under the search root.
// Entries are constructed fresh for every search and never cached.
type Entry struct {
	Path string
	Name string
}

// Metadata holds the tag fields displayed for a track. Fields that could not
// be read carry the UnknownValue sentinel.
type Metadata struct {
	BPM   string
	Genre string
}

// UnknownValue is rendered for tag fields that are absent or unreadable.
const UnknownValue = "Unknown"

// Result is an entry together with its relevance score: the number of
// distinct search terms contained in the lower-cased file name.
type Result struct {
	Entry Entry
	Score int
}

// TagReader extracts display metadata from an audio file. Implementations
// must degrade gracefully: failures yield UnknownValue fields, not errors.
type TagReader interface {
	Read(path string) Metadata
}
