package pages

import (
	"github.com/a-h/templ"

	"github.com/Hashversion/koes/internal/ui"
)

func NotFound() templ.Component {
	return ui.Element("main", templ.Attributes{"class": "flex min-h-screen flex-col items-center justify-center gap-4"},
		ui.Element("h1", templ.Attributes{"class": "text-3xl font-semibold"}, ui.Text("404")),
		ui.Element("p", templ.Attributes{"class": "text-neutral-600"}, ui.Text("This page could not be found.")),
		ui.Element("a", templ.Attributes{"href": "/", "class": ui.ButtonClass(ui.ButtonVariantLink, ui.ButtonSizeDefault)}, ui.Text("Back home")),
	)
}
