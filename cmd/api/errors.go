package main

import (
	"net/http"

	"api-consumer/internal/apiclient"
	"api-consumer/internal/pipeline"
)

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string `json:"error" example:"Could not retrieve weather data for London."`
}

// statusForError maps a pipeline failure to an HTTP status.
func statusForError(err error) int {
	switch {
	case apiclient.IsTransportError(err), pipeline.IsUpstreamFailure(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
