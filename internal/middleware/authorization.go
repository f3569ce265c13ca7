package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/api"
	config "github.com/thirdweb-dev/blobflow/configs"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization guards mutating routes with basic auth. It is a no-op when
// server.username is not configured.
func Authorization(c *gin.Context) {
	expectedUser := config.Cfg.Server.Username
	if expectedUser == "" {
		c.Next()
		return
	}

	username, password, ok := c.Request.BasicAuth()
	if !ok || !validateCredentials(username, password, expectedUser, config.Cfg.Server.Password) {
		log.Warn().Str("path", c.Request.URL.Path).Str("ip", c.ClientIP()).Msg(ErrUnauthorized.Error())
		api.UnauthorizedErrorHandler(c, ErrUnauthorized)
		return
	}
	c.Next()
}

func validateCredentials(username, password, expectedUser, expectedPassword string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(expectedUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(expectedPassword)) == 1
	return userOK && passOK
}
