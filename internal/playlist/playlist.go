// Package playlist writes and reads simple line-oriented M3U manifests.
package playlist

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Header is the marker line opening every manifest.
const Header = "#EXTM3U"

// Write saves a manifest named after the playlist into dir: the header marker
// followed by one absolute file path per line. It returns the manifest path.
func Write(dir, name string, paths []string) (string, error) {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString(p)
		b.WriteString("\n")
	}
	out := filepath.Join(dir, sanitizeName(name)+".m3u")
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// Read returns the track paths listed in a manifest, skipping the header,
// comments and blank lines.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// sanitizeName keeps playlist labels usable as file names.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "playlist"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", string(os.PathSeparator), "_")
	return replacer.Replace(name)
}
