// Package web serves the embedded API explorer UI. The assets are plain
// static files with no coupling to the data core; the page discovers the
// API through /api/endpoints at load time.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the explorer at / and its assets under /static.
func Register(r *gin.Engine) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(sub))

	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
