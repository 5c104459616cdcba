package shared

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// NavItem is one link in the header navigation
type NavItem struct {
	Label  string
	URL    string
	Active bool
}
