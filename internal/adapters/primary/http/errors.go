package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/pkg/logger"
)

// appHTTPErrorHandler maps the domain error taxonomy onto status codes. The
// 500 branch logs the cause and never leaks it to the client.
func appHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message interface{}

	switch cause := err.(type) {
	case *echo.HTTPError:
		if cause.Internal != nil {
			if herr, ok := cause.Internal.(*echo.HTTPError); ok {
				cause = herr
			}
		}
		code = cause.Code
		message = cause.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string)
		for _, vErr := range cause {
			fldErrs[vErr.Field()] = vErr.Tag()
		}
		code = http.StatusBadRequest
		message = fldErrs
	default:
		code, message = mapDomainError(err)
	}

	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	if !c.Response().Committed {
		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, message)
		}
		if writeErr != nil {
			logger.Log.Errorf("write error response: %v", writeErr)
		}
	}
}

func mapDomainError(err error) (int, interface{}) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, errs.ErrAccountDisabled):
		return http.StatusForbidden, "account disabled"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, errs.ErrConflict):
		return http.StatusBadRequest, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		logger.Log.Errorf("internal error: %+v", err)
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
