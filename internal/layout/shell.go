// Package layout renders the page chrome shared by every page: header,
// footer and the toast surface.
package layout

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"SHAREMYTRIP_WEB/internal/models"
	"SHAREMYTRIP_WEB/internal/toast"
)

// AppName is the brand shown in the header, footer and page titles.
const AppName = "ShareMyTrip"

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

//go:embed static
var staticFS embed.FS

// StaticPrefix is where Static is mounted; the shell links its stylesheet from here.
const StaticPrefix = "/static/"

// Static serves the embedded assets under StaticPrefix.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(StaticPrefix, http.FileServer(http.FS(sub)))
}

// Page is everything the shell needs around a page body.
type Page struct {
	Title   string
	User    models.CurrentUser
	Toasts  []toast.Toast
	Content templ.Component
}

type shellView struct {
	Page
	AppName string
	Year    int
}

// FullTitle appends the brand to the page title once.
func (v shellView) FullTitle() string {
	return ComposePageTitle(v.Title)
}

// ComposePageTitle returns "<title> | ShareMyTrip".
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	if strings.HasSuffix(title, " | "+AppName) {
		return title
	}
	return title + " | " + AppName
}

// Shell wraps p.Content between the header and the footer. The toast surface
// is mounted once, after the content.
func Shell(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := shellView{Page: p, AppName: AppName, Year: time.Now().Year()}

		if err := templates.ExecuteTemplate(w, "shell_open", v); err != nil {
			return err
		}
		if p.Content != nil {
			if err := p.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		return templates.ExecuteTemplate(w, "shell_close", v)
	})
}
