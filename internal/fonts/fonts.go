// Package fonts describes the locally hosted font faces and the CSS custom
// properties that expose them to utility classes.
package fonts

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	ErrNoSource        = errors.New("font has no source file")
	ErrInvalidVariable = errors.New("font variable must start with --")
	ErrNoFamily        = errors.New("font has no family name")
)

// Font is a locally hosted font file exposed through a CSS variable.
type Font struct {
	Family   string
	Src      string // file name under the fonts URL prefix
	Variable string // e.g. --font-geist-sans
	Weight   string // single weight or variable range, e.g. "100 900"
	Style    string
	Display  string
	Fallback []string
}

var (
	GeistSans = Font{
		Family:   "Geist Sans",
		Src:      "GeistVF.woff",
		Variable: "--font-geist-sans",
		Weight:   "100 900",
		Fallback: []string{"ui-sans-serif", "system-ui", "sans-serif"},
	}
	GeistMono = Font{
		Family:   "Geist Mono",
		Src:      "GeistMonoVF.woff",
		Variable: "--font-geist-mono",
		Weight:   "100 900",
		Fallback: []string{"ui-monospace", "monospace"},
	}
)

// Default is the font set the root layout loads.
var Default = []Font{GeistSans, GeistMono}

// Validate reports whether f can be rendered into a stylesheet.
func (f Font) Validate() error {
	if strings.TrimSpace(f.Family) == "" {
		return ErrNoFamily
	}
	if strings.TrimSpace(f.Src) == "" {
		return fmt.Errorf("%s: %w", f.Family, ErrNoSource)
	}
	if !strings.HasPrefix(f.Variable, "--") || len(f.Variable) == 2 {
		return fmt.Errorf("%s: %w", f.Family, ErrInvalidVariable)
	}
	return nil
}

// ClassName is the class that defines the font's CSS variable.
func (f Font) ClassName() string {
	return "__variable_" + strings.TrimPrefix(f.Variable, "--")
}

// Variable joins the variable class names of fonts, the value the root
// layout puts on <html> so every font variable is in scope.
func Variable(fonts ...Font) string {
	names := make([]string, 0, len(fonts))
	for _, f := range fonts {
		if f.Variable == "" {
			continue
		}
		names = append(names, f.ClassName())
	}
	return strings.Join(names, " ")
}

// Stylesheet renders @font-face rules and variable classes for fonts.
// Source URLs are resolved against urlPrefix.
func Stylesheet(urlPrefix string, fonts ...Font) (string, error) {
	var b strings.Builder
	for _, f := range fonts {
		if err := f.Validate(); err != nil {
			return "", err
		}
		display := f.Display
		if display == "" {
			display = "swap"
		}
		style := f.Style
		if style == "" {
			style = "normal"
		}

		fmt.Fprintf(&b, "@font-face {\n")
		fmt.Fprintf(&b, "  font-family: %q;\n", f.Family)
		fmt.Fprintf(&b, "  src: url(%q) format(%q);\n", path.Join(urlPrefix, f.Src), format(f.Src))
		if f.Weight != "" {
			fmt.Fprintf(&b, "  font-weight: %s;\n", f.Weight)
		}
		fmt.Fprintf(&b, "  font-style: %s;\n", style)
		fmt.Fprintf(&b, "  font-display: %s;\n", display)
		fmt.Fprintf(&b, "}\n")
	}
	for _, f := range fonts {
		family := append([]string{fmt.Sprintf("%q", f.Family)}, f.Fallback...)
		fmt.Fprintf(&b, ".%s {\n  %s: %s;\n}\n", f.ClassName(), f.Variable, strings.Join(family, ", "))
	}
	return b.String(), nil
}

func format(src string) string {
	switch strings.ToLower(path.Ext(src)) {
	case ".woff2":
		return "woff2"
	case ".ttf":
		return "truetype"
	case ".otf":
		return "opentype"
	default:
		return "woff"
	}
}
