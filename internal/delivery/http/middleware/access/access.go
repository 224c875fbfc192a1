package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
)

const ReadOnlyMode = "RO"

// ReadOnly lets only safe methods through on read-only replicas.
func ReadOnly(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ReadOnlyMode {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		http_common.Fail(c, http.StatusServiceUnavailable, "write operations not allowed on read-only instance")
		c.Abort()
	}
}
