// Package webui embeds the chat front-end so the proxy ships as a single
// binary.
package webui

import (
	"embed"
	"io/fs"
)

//go:embed static
var embeddedStatic embed.FS

// Assets returns the UI file tree rooted at the static directory, ready to
// be served with http.FileServer.
func Assets() (fs.FS, error) {
	return fs.Sub(embeddedStatic, "static")
}
