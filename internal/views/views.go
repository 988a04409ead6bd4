// Package views embeds the site's templates and static assets.
package views

import (
	"embed"
	"io/fs"
)

//go:embed layouts partials pages static
var FS embed.FS

// Static is the asset tree served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
