package webui

import (
	"io/fs"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAssets(t *testing.T) {
	assets, err := Assets()
	assert.Equal(t, err, nil)

	for _, name := range []string{"index.html", "app.js", "style.css"} {
		data, err := fs.ReadFile(assets, name)
		assert.Equal(t, err, nil)
		assert.NotEqual(t, 0, len(data))
	}
}
