package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/tienLD2005/hotel-booking-auth/domain"
	"github.com/tienLD2005/hotel-booking-auth/internal/http/handlers"
	"github.com/tienLD2005/hotel-booking-auth/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/otp/verify", ah.VerifyCode)
	auth.POST("/otp/resend", ah.ResendCode)
	auth.POST("/password", ah.SetPassword)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	v := r.Group("/auth").Use(middleware.AuthMiddleware(tokenSvc))
	v.GET("/me", ah.Me)
	v.POST("/logout", ah.Logout)

	return r
}
