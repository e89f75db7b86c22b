package ui

import "github.com/a-h/templ"

// ButtonVariant selects the button's color scheme.
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

// ButtonSize selects the button's padding and type scale.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

type ButtonConfig struct {
	BaseConfig
	Variant  ButtonVariant
	Size     ButtonSize
	Type     string
	Disabled bool
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// ButtonType sets the type attribute ("button" by default).
func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func Disabled(d bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = d }
}

var buttonVariants = Variants{
	Base: "bg-neutral-300 text-neutral-950 rounded-full px-2.5 py-1 hover:bg-neutral-400 duration-300 " +
		"inline-flex items-center justify-center whitespace-nowrap transition-colors " +
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-neutral-950 " +
		"disabled:pointer-events-none disabled:opacity-50",
	Dimensions: []Dimension{
		{Name: "variant", Options: map[string]string{
			string(ButtonVariantDefault):     "",
			string(ButtonVariantPrimary):     "bg-neutral-950 text-neutral-50 hover:bg-neutral-800",
			string(ButtonVariantDestructive): "bg-red-600 text-neutral-50 hover:bg-red-700",
			string(ButtonVariantOutline):     "border border-neutral-300 bg-transparent hover:bg-neutral-100",
			string(ButtonVariantSecondary):   "bg-neutral-100 hover:bg-neutral-200",
			string(ButtonVariantGhost):       "bg-transparent hover:bg-neutral-100",
			string(ButtonVariantLink):        "bg-transparent underline-offset-4 hover:bg-transparent hover:underline",
		}},
		{Name: "size", Options: map[string]string{
			string(ButtonSizeDefault): "",
			string(ButtonSizeSm):      "px-2 py-0.5 text-sm",
			string(ButtonSizeLg):      "px-4 py-2 text-lg",
			string(ButtonSizeIcon):    "size-8 p-0",
		}},
	},
	Defaults: map[string]string{
		"variant": string(ButtonVariantDefault),
		"size":    string(ButtonSizeDefault),
	},
	Compounds: []Compound{
		{When: map[string]string{"variant": string(ButtonVariantLink), "size": string(ButtonSizeIcon)}, Class: "underline"},
	},
}

// ButtonClass resolves the class string Button renders for the given
// variant, size and caller classes.
func ButtonClass(v ButtonVariant, s ButtonSize, classes ...any) string {
	return buttonVariants.Class(map[string]string{
		"variant": string(v),
		"size":    string(s),
	}, classes...)
}

// Button renders a <button>. Caller classes are merged last, so they
// override the defaults.
func Button(opts ...ButtonOption) templ.Component {
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}
	for _, opt := range opts {
		opt(c)
	}

	attrs := merged(templ.Attributes{
		"class":    ButtonClass(c.Variant, c.Size, c.Classes...),
		"type":     c.Type,
		"disabled": c.Disabled,
	}, c.Attrs)

	return Element("button", attrs, c.Children...)
}
