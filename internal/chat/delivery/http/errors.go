package http

import (
	"errors"
	"net/http"

	"edubot/internal/chat"
	pkgErrors "edubot/pkg/errors"
)

const MsgEmptyQuery = "Please type a question."

var errEmptyQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, MsgEmptyQuery)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, chat.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, chat.ErrNotReady):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
