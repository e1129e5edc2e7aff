package handlers

import (
	"errors"
	"net/http"

	fm "github.com/echenim/bookview/internal/formatter"
	md "github.com/echenim/bookview/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler writes every handler error as an APIError with a matching
// status code.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(status)
		}
	case errors.Is(err, md.ErrInvalidLevel):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, fm.ErrInvalidNumber):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	}

	entry := logrus.WithFields(logrus.Fields{
		"method": c.Request().Method,
		"path":   c.Path(),
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Info("request rejected")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, md.APIError{Error: msg})
}

func reason(err error) string {
	switch {
	case errors.Is(err, md.ErrInvalidLevel):
		return "invalid_level"
	case errors.Is(err, fm.ErrInvalidNumber):
		return "invalid_number"
	}
	return "other"
}
