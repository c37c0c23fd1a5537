package middleware

import (
	"fmt"

	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
)

// APIKeyAuth rejects requests whose X-API-Key header does not match the
// configured key. The expected key is passed in at router setup time; an
// empty expected key means the deployment forgot to configure one and every
// request is rejected rather than silently letting everything through.
func APIKeyAuth(expectedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if expectedKey == "" || apiKey != expectedKey {
			util.LogAuthFailure(c.ClientIP(), c.Request.UserAgent(), "invalid or missing API key")
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Unauthorized - Invalid or missing API key",
				Err: fmt.Errorf("api key mismatch"),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
