// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const dateLayout = "2006-01-02"

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"nullmoney": func(d decimal.NullDecimal) string {
			if !d.Valid {
				return "-"
			}
			return d.Decimal.StringFixed(2)
		},
		"date": func(t time.Time) string {
			return t.Format(dateLayout)
		},
		"dateptr": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return t.Format(dateLayout)
		},
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"num": func(n *int) string {
			if n == nil {
				return "-"
			}
			return fmt.Sprint(*n)
		},
		"today": func() string {
			return time.Now().Format(dateLayout)
		},
		"negative": func(d decimal.Decimal) bool {
			return d.IsNegative()
		},
	}
}

// Templates parses every page template together with the shared layout.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
}

// Static serves the embedded static directory verbatim.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
