package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/threads-be/threads/shared/errors"
)

// parseID parses a positive integer and names the parameter in the 400 detail.
func parseID(value, name string) (int64, error) {
	if value == "" {
		return 0, errors.Validation(fmt.Sprintf("%q is required", name))
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Validation(fmt.Sprintf("%q must be a positive number", name))
	}
	return id, nil
}

func urlParamID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name), name)
}

func queryParamID(r *http.Request, name string) (int64, error) {
	return parseID(r.URL.Query().Get(name), name)
}
