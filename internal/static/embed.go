// Package static embeds the site's stylesheet so the server and the
// exporter publish the same bytes.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// FS returns the embedded assets rooted at the assets directory.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
