// Package server assembles the Echo application: shell pages, chat widget
// toggle and support case API.
package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"bank_portal_echo/internal/cases"
	"bank_portal_echo/internal/chat"
	"bank_portal_echo/internal/handlers"
	appMiddleware "bank_portal_echo/internal/middleware"
	"bank_portal_echo/internal/routes"
)

// Deps are the collaborators the application is built from
type Deps struct {
	Routes    *routes.Table
	Chat      *chat.Widget
	Cases     *cases.Service // nil disables case intake
	Log       *zap.Logger
	StaticDir string
}

// New builds the Echo instance with middleware and all routes registered
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	pageHandler := handlers.NewPageHandler(d.Routes, d.Chat)
	chatHandler := handlers.NewChatHandler(d.Chat)
	caseHandler := handlers.NewCaseHandler(d.Cases, d.Log)

	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler(pageHandler, d.Log)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))

	if d.StaticDir != "" {
		e.Static("/static", d.StaticDir)
	}

	pageHandler.Register(e)
	e.POST("/chat/toggle", chatHandler.Toggle)
	e.POST("/api/cases", caseHandler.CreateCase)

	return e
}
