package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware factory
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Role di-set oleh JWT middleware sebelumnya
		role, ok := c.Get("role")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing auth context",
			})
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role.(string), resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "forbidden",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthorizeAny lolos jika salah satu action diizinkan untuk role.
// Dipakai endpoint yang dibuka untuk "read" admin dan "read_own" karyawan.
func AuthorizeAny(service Service, resource string, actions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing auth context",
			})
			c.Abort()
			return
		}

		for _, action := range actions {
			allowed, err := service.Enforce(role.(string), resource, action)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": err.Error(),
				})
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "forbidden",
		})
		c.Abort()
	}
}
