package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bank_portal_echo/internal/chat"
	"bank_portal_echo/web/templates/pages"
)

// ChatHandler serves the chat widget toggle
type ChatHandler struct {
	widget *chat.Widget
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(widget *chat.Widget) *ChatHandler {
	return &ChatHandler{widget: widget}
}

// Toggle flips the visibility the client reports in the "visible" form field
// and returns the re-rendered widget for HTMX to swap in.
func (h *ChatHandler) Toggle(c echo.Context) error {
	w := h.widget.Restore(c.FormValue("visible") == "true")
	if w.Enabled() {
		w.Toggle()
	}
	return Render(c, http.StatusOK, pages.ChatWidget(w))
}
