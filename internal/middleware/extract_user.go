package middleware

import (
	"net/http"

	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func ExtractUsername() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, exists := ctx.Get("username")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User tidak terautentikasi", nil)
			ctx.Abort()
			return
		}

		usernameStr, ok := username.(string)
		if !ok || usernameStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USERNAME", "Format username tidak valid", nil)
			ctx.Abort()
			return
		}

		// Set ulang dengan tipe yang sudah pasti string
		ctx.Set("username_validated", usernameStr)
		ctx.Next()
	}
}
