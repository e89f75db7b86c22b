// Package templates maps URL paths to full documents.
package templates

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/Hashversion/koes/internal/site"
	"github.com/Hashversion/koes/internal/templates/layouts"
	"github.com/Hashversion/koes/internal/templates/pages"
)

// Route is a page served at Path.
type Route struct {
	Path  string
	Title string // empty uses the site's default title
	Page  func(s site.Site) templ.Component
}

// Routes returns the site's pages.
func Routes() []Route {
	return []Route{
		{
			Path: "/",
			Page: func(s site.Site) templ.Component {
				return pages.Home(strings.ToUpper(s.Name))
			},
		},
	}
}

// NotFound is rendered for unknown paths and exported as 404.html.
func NotFound() Route {
	return Route{
		Path:  "/404",
		Title: "404: This page could not be found",
		Page: func(site.Site) templ.Component {
			return pages.NotFound()
		},
	}
}

// Document renders r inside the root layout.
func Document(s site.Site, r Route) templ.Component {
	return layouts.Root(s, r.Title, r.Page(s))
}
