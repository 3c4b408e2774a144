// Package web embeds the HTML views and static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v3"
)

//go:embed views static
var content embed.FS

// Views returns the embedded view templates rooted at the views directory.
func Views() fs.FS {
	sub, err := fs.Sub(content, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the embedded static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewEngine builds the template engine over the embedded views.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(Views()), ".html")
}
