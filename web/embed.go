package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets (scripts and styles).
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static
var FS embed.FS

// Static returns the assets rooted at the static directory, as served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
