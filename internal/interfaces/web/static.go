// Package web serves the embedded dashboard page.
package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexuscrm/formbridge/pkg/constants"
)

//go:embed index.html
var indexHTML []byte

// Index handles GET /
func Index(c *gin.Context) {
	c.Data(http.StatusOK, constants.ContentTypeHTML, indexHTML)
}
