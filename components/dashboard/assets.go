package dashboard

import (
	"embed"
	"io/fs"
)

// DefaultAssetsPath is where the stylesheet and notice script are served.
const DefaultAssetsPath = "/static"

//go:embed static/*
var staticFS embed.FS

// StaticAssets exposes the embedded stylesheet and scripts rooted at static/.
func StaticAssets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}
