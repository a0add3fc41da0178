package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/version"
)

var processStart = time.Now()

// Info reports service identity, build and uptime.
func Info(serviceName, environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.Get()
		c.JSON(http.StatusOK, gin.H{
			"service":     serviceName,
			"environment": environment,
			"version":     v.Version,
			"git_commit":  v.GitCommit,
			"go_version":  v.GoVersion,
			"uptime":      time.Since(processStart).Round(time.Second).String(),
		})
	}
}

// Version reports the full build information.
func Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}
