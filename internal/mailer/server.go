package mailer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter mounts the relay's two endpoints: a static health check and
// the volunteer-application send. Failures come back as HTTP 500 with a
// success:false body; there is no retry or backoff.
func NewRouter(m *Mailer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/test", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API server is running"})
	})

	router.POST("/send-volunteer-application", func(ctx *gin.Context) {
		var mail ApplicationMail
		if err := ctx.ShouldBindJSON(&mail); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required form data",
			})
			return
		}

		if mail.Email == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required form data",
			})
			return
		}

		if err := m.Send(mail); err != nil {
			zap.L().Error("failed to send volunteer application mail", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to send email",
				"error":   err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router
}

// Run starts the relay on the configured port.
func Run(m *Mailer) error {
	port := m.conf.Port
	if port == "" {
		port = "3001"
	}

	router := NewRouter(m)

	zap.L().Info(fmt.Sprintf("starting mail relay at :%v", port))

	return router.Run(":" + port)
}
