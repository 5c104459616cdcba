package routes

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank_portal_echo/web/templates/pages"
)

func stubView(pages.ShellProps) templ.Component { return templ.NopComponent }

func TestDefaultResolve(t *testing.T) {
	table := Default()

	tests := []struct {
		path      string
		wantLabel string
		wantOK    bool
	}{
		{"", "Home", true},
		{"/", "Home", true},
		{"/accounts", "Accounts", true},
		{"/accounts/", "Accounts", true},
		{"transactions", "Transactions", true},
		{"/loans", "Loans", true},
		{"/investments", "Investments", true},
		{"/settings", "", false},
		{"/accounts/42", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e, ok := table.Resolve(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, e.Label)
		})
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		Entry{Path: "accounts", Label: "Accounts", View: stubView},
		Entry{Path: "/accounts/", Label: "Again", View: stubView},
	)
	assert.EqualError(t, err, `duplicate route "/accounts"`)
}

func TestNewRejectsMissingView(t *testing.T) {
	_, err := New(Entry{Path: "loans", Label: "Loans"})
	assert.EqualError(t, err, `route "/loans" has no view`)
}

func TestOrderDoesNotAffectResolution(t *testing.T) {
	a, err := New(
		Entry{Path: "", Label: "Home", View: stubView},
		Entry{Path: "loans", Label: "Loans", View: stubView},
	)
	require.NoError(t, err)
	b, err := New(
		Entry{Path: "loans", Label: "Loans", View: stubView},
		Entry{Path: "", Label: "Home", View: stubView},
	)
	require.NoError(t, err)

	for _, p := range []string{"/", "/loans"} {
		ea, _ := a.Resolve(p)
		eb, _ := b.Resolve(p)
		assert.Equal(t, ea.Label, eb.Label, p)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].Label = "Changed"

	e, _ := table.Resolve("/")
	assert.Equal(t, "Home", e.Label)
	assert.Len(t, entries, 5)
}

func TestNav(t *testing.T) {
	nav := Default().Nav("/loans")

	require.Len(t, nav, 5)
	assert.Equal(t, "/", nav[0].URL)
	for _, item := range nav {
		assert.Equal(t, item.Label == "Loans", item.Active, item.Label)
	}
}
