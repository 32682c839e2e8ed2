package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CustomerIDKey is the context key the identity middleware fills in.
const CustomerIDKey = "customerId"

// Identity extracts the caller's customer id from the X-Customer-ID header.
// Authentication itself is an external collaborator: by the time a request
// reaches this service, the gateway has already verified the session and
// stamped the header. Requests without the header proceed with no identity;
// handlers that need one reject them.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Customer-ID")
		if raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
				c.Set(CustomerIDKey, uint(id))
			}
		}
		c.Next()
	}
}
