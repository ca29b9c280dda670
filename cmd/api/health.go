package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse reports liveness and which pipelines can serve requests
type PingResponse struct {
	Message   string          `json:"message" example:"pong"`
	Pipelines PipelinesStatus `json:"pipelines"`
}

// PipelinesStatus is true for each pipeline that is configured
type PipelinesStatus struct {
	Posts   bool `json:"posts" example:"true"`
	Weather bool `json:"weather" example:"false"` // false until a weather API key is set
}

// handlePing godoc
// @Summary Ping health check
// @Description Liveness check that also reports which pipelines are configured
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Pipelines: PipelinesStatus{
			Posts:   app.postService != nil,
			Weather: app.weatherService != nil,
		},
	})
}
