// Package tags reads display metadata from MP3 files via their ID3v2 tags.
package tags

import (
	"github.com/bogem/id3v2/v2"

	"mp3search/internal/domain"
)

// Reader extracts BPM and genre from ID3v2 text frames.
type Reader struct{}

// NewReader creates an ID3 tag reader.
func NewReader() *Reader { return &Reader{} }

// Read returns the BPM (TBPM frame) and genre (TCON frame) for the file.
// Any failure, from an unreadable file to a missing frame, degrades the
// affected field to the Unknown sentinel. Read never fails the caller.
func (r *Reader) Read(path string) domain.Metadata {
	meta := domain.Metadata{BPM: domain.UnknownValue, Genre: domain.UnknownValue}

	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return meta
	}
	defer id3tag.Close()

	if bpm := textFrame(id3tag, "TBPM"); bpm != "" {
		meta.BPM = bpm
	}
	if genre := id3tag.Genre(); genre != "" {
		meta.Genre = genre
	}
	return meta
}

// textFrame reads the first text frame with the given ID, or "".
func textFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
