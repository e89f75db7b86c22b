package pages

import (
	"github.com/a-h/templ"

	"github.com/Hashversion/koes/internal/ui"
)

// Home is the landing page: the logo and site heading above a button.
func Home(heading string) templ.Component {
	return ui.Element("header", templ.Attributes{"class": "py-8"},
		ui.Element("div", templ.Attributes{"class": "mx-auto max-w-300 px-3 lg:px-0"},
			ui.Element("div", templ.Attributes{"class": "flex items-center justify-center gap-4"},
				ui.Logo(ui.Class[*ui.IconConfig]("size-8")),
				ui.Element("h1", templ.Attributes{"class": "text-3xl font-semibold"}, ui.Text(heading)),
			),
			ui.Button(ui.Label[*ui.ButtonConfig]("it's nice")),
		),
	)
}
