package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Hashversion/koes/internal/fonts"
	"github.com/Hashversion/koes/internal/site"
	"github.com/Hashversion/koes/internal/ui"
)

// Root wraps page content in the document shell: <html> carries the font
// variable classes, <head> the metadata and stylesheets.
func Root(s site.Site, title string, children ...templ.Component) templ.Component {
	html := ui.Element("html",
		templ.Attributes{
			"lang":  "en",
			"class": ui.CN(fonts.Variable(fonts.Default...)),
		},
		head(s, title),
		ui.Element("body", templ.Attributes{"class": "font-geist-sans antialiased"}, children...),
	)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return html.Render(ctx, w)
	})
}

func head(s site.Site, title string) templ.Component {
	nodes := []templ.Component{
		ui.Void("meta", templ.Attributes{"charset": "utf-8"}),
	}
	if content := s.Viewport.Content(); content != "" {
		nodes = append(nodes, ui.Void("meta", templ.Attributes{"name": "viewport", "content": content}))
	}
	for _, tc := range s.Viewport.ThemeColors {
		attrs := templ.Attributes{"name": "theme-color", "content": tc.Color}
		if tc.Media != "" {
			attrs["media"] = tc.Media
		}
		nodes = append(nodes, ui.Void("meta", attrs))
	}
	if s.Metadata.Description != "" {
		nodes = append(nodes, ui.Void("meta", templ.Attributes{"name": "description", "content": s.Metadata.Description}))
	}

	nodes = append(nodes, ui.Element("title", nil, ui.Text(s.Metadata.Title.Resolve(title))))

	for _, href := range site.Stylesheets {
		nodes = append(nodes, ui.Void("link", templ.Attributes{"rel": "stylesheet", "href": href}))
	}
	return ui.Element("head", nil, nodes...)
}
