package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the configured UI origins. allowedDomains is a
// comma-separated list; "*" allows everything (local development).
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(allowedDomains, ",")
	}

	conf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	conf.MaxAge = 12 * time.Hour

	return cors.New(conf)
}
