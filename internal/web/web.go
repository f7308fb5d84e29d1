// Package web serves the embedded single-page storefront client.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the client at / and its assets under /static.
func Register(r *gin.Engine) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	index, err := fs.ReadFile(assets, "static/index.html")
	if err != nil {
		panic(err)
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFS("/static", http.FS(sub))
}
