// Package pages renders the portal views. Each view is an html/template page
// cloned from the shared layout and exposed as a templ.Component so handlers
// render every page the same way.
package pages

import (
	"embed"
	"html/template"
	"io/fs"
	"path"
	"time"

	"github.com/a-h/templ"

	"bank_portal_echo/internal/chat"
	"bank_portal_echo/web/templates/shared"
)

//go:embed templates
var files embed.FS

// ShellProps is the data every page is rendered with
type ShellProps struct {
	Title       string
	ActiveNav   string
	Breadcrumbs []shared.Breadcrumb
	Nav         []shared.NavItem
	Chat        chat.Widget
	Year        int
}

// ErrorPageProps extends the shell with an error description
type ErrorPageProps struct {
	ShellProps
	ErrorTitle   string
	ErrorMessage string
}

// View builds the component for a routed page
type View func(props ShellProps) templ.Component

var (
	layout *template.Template
	views  map[string]*template.Template
)

func init() {
	layout = template.Must(template.ParseFS(files,
		"templates/layouts/*.html",
		"templates/partials/*.html",
	))

	names, err := fs.Glob(files, "templates/views/*.html")
	if err != nil {
		panic(err)
	}

	views = make(map[string]*template.Template, len(names))
	for _, name := range names {
		// Clone before layout is ever executed; html/template forbids it afterwards.
		page := template.Must(layout.Clone())
		template.Must(page.ParseFS(files, name))
		views[path.Base(name)] = page
	}
}

func render(name string, data any) templ.Component {
	return templ.FromGoHTML(views[name], data)
}

// Home renders the landing page
func Home(props ShellProps) templ.Component { return render("home.html", props) }

// Accounts renders the accounts overview
func Accounts(props ShellProps) templ.Component { return render("accounts.html", props) }

// Transactions renders the transaction history page
func Transactions(props ShellProps) templ.Component { return render("transactions.html", props) }

// Loans renders the loans page
func Loans(props ShellProps) templ.Component { return render("loans.html", props) }

// Investments renders the investments page
func Investments(props ShellProps) templ.Component { return render("investments.html", props) }

// ErrorPage renders an error (including "not found") inside the normal shell
func ErrorPage(props ErrorPageProps) templ.Component { return render("error.html", props) }

// ChatWidget renders only the chat widget, for in-place swaps after a toggle
func ChatWidget(w chat.Widget) templ.Component {
	return templ.FromGoHTML(layout.Lookup("chat_widget"), w)
}

// Year is the copyright year shown in the footer
func Year() int {
	return time.Now().Year()
}
