// Package assets embeds the default dictionary so the binary works without
// any word file configured.
package assets

import (
	"embed"
	"io"
)

// DefaultDictionary is the name of the embedded word list.
const DefaultDictionary = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenDictionary opens the embedded default word list.
func OpenDictionary() (io.ReadCloser, error) {
	return FS.Open(DefaultDictionary)
}
