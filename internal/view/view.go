// Package view provides the embedded HTML template engine shared by the
// server and its tests.
package view

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// Engine returns a template engine over the embedded template tree.
// Template names are paths relative to templates/ without the extension,
// e.g. "users/index" or "layouts/main".
func Engine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
