// Package chat holds the state of the embedded support chat widget.
//
// The chat service is an external page loaded into an iframe. html/template
// filters URLs it does not know to be safe, so the configured address is
// explicitly marked as trusted, once, when the widget is initialized.
package chat

import (
	"html/template"
	"net/url"
)

// Widget is the embedded chat panel: a trusted URL and a visibility flag
type Widget struct {
	trustedURL template.URL
	enabled    bool
	visible    bool
}

// Initialize derives the trusted embed URL from the configured chat address.
// raw must come from operator configuration, never from a request.
// An empty or non-absolute http(s) value yields a disabled widget.
func Initialize(raw string) *Widget {
	if !embeddable(raw) {
		return &Widget{}
	}
	return &Widget{trustedURL: trust(raw), enabled: true}
}

// trust is the single place a string is marked safe for use as an embed source
func trust(raw string) template.URL {
	return template.URL(raw)
}

func embeddable(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

// Toggle inverts visibility
func (w *Widget) Toggle() {
	w.visible = !w.visible
}

// Fresh returns a copy in the initial hidden state, sharing the trusted URL
func (w Widget) Fresh() Widget {
	w.visible = false
	return w
}

// Restore returns a copy carrying a visibility the client reported back
func (w Widget) Restore(visible bool) Widget {
	w.visible = visible
	return w
}

// URL returns the trusted embed URL, empty when the widget is disabled
func (w Widget) URL() template.URL {
	return w.trustedURL
}

// Visible reports whether the chat panel is open
func (w Widget) Visible() bool {
	return w.visible
}

// Enabled reports whether a usable chat URL was configured
func (w Widget) Enabled() bool {
	return w.enabled
}
