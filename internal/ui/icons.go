package ui

import "github.com/a-h/templ"

type IconConfig struct {
	BaseConfig
}

func (c *IconConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type IconOption = Option[*IconConfig]

const logoPaths = `<circle cx="16" cy="16" r="15" fill="none" stroke="currentColor" stroke-width="2"></circle>` +
	`<path d="M11 8v16M11 16l9-8M14 13.5 21 24" fill="none" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round"></path>`

// Logo renders the site mark as inline SVG sized by its classes.
func Logo(opts ...IconOption) templ.Component {
	c := &IconConfig{}
	for _, opt := range opts {
		opt(c)
	}

	attrs := merged(templ.Attributes{
		"class":       CN("size-6 shrink-0", c.Classes),
		"viewBox":     "0 0 32 32",
		"xmlns":       "http://www.w3.org/2000/svg",
		"aria-hidden": "true",
	}, c.Attrs)

	children := append([]templ.Component{templ.Raw(logoPaths)}, c.Children...)
	return Element("svg", attrs, children...)
}
