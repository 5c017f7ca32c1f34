package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/sherdogapi/report"
)

type errorEnvelope struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// HTTPError is the echo error handler. Every error is answered with the same
// JSON envelope; server errors are also reported.
func (h *Handler) HTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		req := c.Request()
		h.reporter.Report(req.Context(), err, report.NewRequest(req))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorEnvelope{Status: code, Error: msg})
	}
	if err != nil {
		h.logger.Error("writing error response", zap.Error(err))
	}
}
