package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantTitle:   "Page Not Found",
			wantMessage: "The page you're looking for doesn't exist.",
		},
		{
			name:        "bad request with message",
			err:         echo.NewHTTPError(http.StatusBadRequest, "Invalid account"),
			wantCode:    http.StatusBadRequest,
			wantTitle:   "Bad Request",
			wantMessage: "Invalid account",
		},
		{
			name:        "method not allowed",
			err:         echo.ErrMethodNotAllowed,
			wantCode:    http.StatusMethodNotAllowed,
			wantTitle:   "Method Not Allowed",
			wantMessage: "This page can't handle that kind of request.",
		},
		{
			name:        "internal details are hidden",
			err:         echo.NewHTTPError(http.StatusInternalServerError, "pq: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantTitle:   "Internal Server Error",
			wantMessage: "Something went wrong. Please try again later.",
		},
		{
			name:        "plain error",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantTitle:   "Internal Server Error",
			wantMessage: "Something went wrong. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, title, message := describe(tt.err)
			if code != tt.wantCode || title != tt.wantTitle || message != tt.wantMessage {
				t.Errorf("describe() = (%d, %q, %q); want (%d, %q, %q)",
					code, title, message, tt.wantCode, tt.wantTitle, tt.wantMessage)
			}
		})
	}
}
