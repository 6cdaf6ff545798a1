package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"SHAREMYTRIP_WEB/internal/profile"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// ProfileForm is the view model of the passenger profile page.
type ProfileForm struct {
	Greeting string
	Action   string
	Fields   profile.Fields
	Errors   profile.Errors
}

// ProfileFormFrom snapshots c for rendering.
func ProfileFormFrom(c *profile.Controller, action string) ProfileForm {
	return ProfileForm{
		Greeting: c.Greeting(),
		Action:   action,
		Fields:   c.Fields(),
		Errors:   c.Errors(),
	}
}

func ProfilePage(v ProfileForm) templ.Component {
	return execute("profile", v)
}

// Message is a plain notice page (sign-in required and the like).
type Message struct {
	Heading  string
	Text     string
	Link     string
	LinkText string
}

func MessagePage(m Message) templ.Component {
	return execute("message", m)
}

func execute(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}
