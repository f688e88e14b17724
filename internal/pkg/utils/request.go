package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var ErrNegativeID = errors.New("id must be a non-negative integer")

// ParseIDParam reads a non-negative integer from the chi url param.
func ParseIDParam(r *http.Request, param string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, ErrNegativeID
	}
	return id, nil
}
