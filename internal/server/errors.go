package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/extraction"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var extractionErr *extraction.Error
	if errors.As(err, &extractionErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
