package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/server"
)

// Descriptor is the body of GET /api.
type Descriptor struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Modules     []string `json:"modules"`
}

func rootHandler(d Descriptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.RespondOK(c, d)
	}
}
