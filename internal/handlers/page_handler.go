package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bank_portal_echo/internal/chat"
	"bank_portal_echo/internal/routes"
	"bank_portal_echo/web/templates/pages"
	"bank_portal_echo/web/templates/shared"
)

// PageHandler renders the routed pages inside the portal shell
type PageHandler struct {
	table  *routes.Table
	widget *chat.Widget
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(table *routes.Table, widget *chat.Widget) *PageHandler {
	return &PageHandler{table: table, widget: widget}
}

// Register mounts one GET route per table entry
func (h *PageHandler) Register(e *echo.Echo) {
	for _, entry := range h.table.Entries() {
		e.GET(entry.URL(), h.page(entry))
	}
}

func (h *PageHandler) page(entry routes.Entry) echo.HandlerFunc {
	return func(c echo.Context) error {
		props := h.Props(entry.Label, entry.URL())
		return Render(c, http.StatusOK, entry.View(props))
	}
}

// Props assembles the shell data for a page at path. The chat widget always
// starts hidden; only the trusted URL carries over from initialization.
func (h *PageHandler) Props(title, path string) pages.ShellProps {
	activeNav := ""
	breadcrumbs := []shared.Breadcrumb{{Title: "Home", URL: "/"}, {Title: title}}

	entry, ok := h.table.Resolve(path)
	if ok {
		activeNav = entry.Path
		if entry.Path == "" {
			breadcrumbs = []shared.Breadcrumb{{Title: "Home"}}
		}
	}

	return pages.ShellProps{
		Title:       title,
		ActiveNav:   activeNav,
		Breadcrumbs: breadcrumbs,
		Nav:         h.table.Nav(path),
		Chat:        h.widget.Fresh(),
		Year:        pages.Year(),
	}
}
