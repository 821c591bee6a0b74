package http

import (
	"errors"
	"net/http"

	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/shell"

	"github.com/labstack/echo/v4"
)

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errs.ErrInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, shell.ErrUnknownSection):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func toErrorResponse(err error) ErrorResponse {
	var ie *errs.InputError
	if errors.As(err, &ie) {
		resp := ErrorResponse{Error: ie.Msg}
		for _, f := range ie.Fields {
			resp.Details = append(resp.Details, FieldError{Field: f, Message: ie.Msg})
		}
		return resp
	}
	return ErrorResponse{Error: err.Error()}
}

func writeError(c echo.Context, err error) error {
	return c.JSON(statusFor(err), toErrorResponse(err))
}
