// Package site holds the document-level metadata shared by every page.
package site

import "strings"

// Title resolves a page title against a site-wide template.
type Title struct {
	Template string // "%s" is replaced with the page title
	Default  string // used when a page has no title
}

// Resolve returns the document title for a page titled page.
func (t Title) Resolve(page string) string {
	if page == "" {
		return t.Default
	}
	if !strings.Contains(t.Template, "%s") {
		return page
	}
	return strings.ReplaceAll(t.Template, "%s", page)
}

type Metadata struct {
	Title       Title
	Description string
}

// ThemeColor is a theme-color meta entry, optionally scoped by a media query.
type ThemeColor struct {
	Media string
	Color string
}

type Viewport struct {
	Width        string
	InitialScale string
	ThemeColors  []ThemeColor
}

// Content is the value of the viewport meta tag.
func (v Viewport) Content() string {
	var parts []string
	if v.Width != "" {
		parts = append(parts, "width="+v.Width)
	}
	if v.InitialScale != "" {
		parts = append(parts, "initial-scale="+v.InitialScale)
	}
	return strings.Join(parts, ", ")
}

// Site is everything a page needs besides its own content.
type Site struct {
	Name     string
	Metadata Metadata
	Viewport Viewport
}

// New returns the site named name with the default title template and
// light/dark theme colors.
func New(name string) Site {
	return Site{
		Name: name,
		Metadata: Metadata{
			Title: Title{
				Template: "%s :: " + name,
				Default:  name,
			},
		},
		Viewport: Viewport{
			Width:        "device-width",
			InitialScale: "1",
			ThemeColors: []ThemeColor{
				{Media: "(prefers-color-scheme: light)", Color: "white"},
				{Media: "(prefers-color-scheme: dark)", Color: "black"},
			},
		},
	}
}
