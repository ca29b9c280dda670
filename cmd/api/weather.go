package main

import (
	"net/http"

	"api-consumer/internal/pipeline"
	"api-consumer/internal/weather"

	"github.com/gin-gonic/gin"
)

// WeatherQuery is the query string accepted by the weather endpoint
type WeatherQuery struct {
	City string `form:"city" binding:"required"`
}

// handleGetWeather godoc
// @Summary Current weather
// @Description Get current weather for a city from OpenWeatherMap
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(London)
// @Success 200 {object} weather.ReportJSON
// @Failure 400 {object} ErrorResponse "Missing city"
// @Failure 500 {object} ErrorResponse "Malformed upstream payload"
// @Failure 502 {object} ErrorResponse "Weather provider failed"
// @Failure 503 {object} ErrorResponse "Weather lookups not configured"
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	if app.weatherService == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "weather lookups are not configured",
		})
		return
	}

	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "city query parameter is required",
		})
		return
	}

	report, err := app.weatherService.Current(c.Request.Context(), query.City)
	if err != nil {
		msg := err.Error()
		if pipeline.IsUpstreamFailure(err) {
			msg = weather.FailureLine(query.City)
		}
		c.JSON(statusForError(err), ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, report)
}
