package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank_portal_echo/web/templates/pages"
)

// ShellBuilder provides the layout data error pages are rendered with
type ShellBuilder interface {
	Props(title, path string) pages.ShellProps
}

// CustomErrorHandler renders errors inside the portal shell, or as JSON for API paths
func CustomErrorHandler(shell ShellBuilder, log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			log.Warn("Error after response was committed", zap.Error(err))
			return
		}

		code, errorTitle, errorMessage := describe(err)
		path := c.Request().URL.Path

		if code >= http.StatusInternalServerError {
			log.Error("Request failed", zap.String("path", path), zap.Int("status", code), zap.Error(err))
		} else {
			log.Debug("Request rejected", zap.String("path", path), zap.Int("status", code), zap.Error(err))
		}

		if strings.HasPrefix(path, "/api/") {
			if jsonErr := c.JSON(code, map[string]string{"message": errorMessage}); jsonErr != nil {
				log.Error("Failed to write error response", zap.Error(jsonErr))
			}
			return
		}

		if c.Request().Method == http.MethodHead {
			if headErr := c.NoContent(code); headErr != nil {
				log.Error("Failed to write error response", zap.Error(headErr))
			}
			return
		}

		props := pages.ErrorPageProps{
			ShellProps:   shell.Props(errorTitle, path),
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			log.Error("Failed to render error page", zap.Error(renderErr))
		}
	}
}

// describe maps an error to a status code, a title and a user-facing message
func describe(err error) (int, string, string) {
	code := http.StatusInternalServerError
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" && msg != http.StatusText(code) {
			errorMessage = msg
		}
	}

	var errorTitle string
	switch code {
	case http.StatusNotFound:
		errorTitle = "Page Not Found"
		if errorMessage == "" {
			errorMessage = "The page you're looking for doesn't exist."
		}
	case http.StatusMethodNotAllowed:
		errorTitle = "Method Not Allowed"
		if errorMessage == "" {
			errorMessage = "This page can't handle that kind of request."
		}
	case http.StatusBadRequest:
		errorTitle = "Bad Request"
		if errorMessage == "" {
			errorMessage = "The request could not be processed."
		}
	default:
		errorTitle = "Internal Server Error"
		if code < http.StatusInternalServerError {
			errorTitle = http.StatusText(code)
		}
		if errorMessage == "" || code >= http.StatusInternalServerError {
			errorMessage = "Something went wrong. Please try again later."
		}
	}

	return code, errorTitle, errorMessage
}
