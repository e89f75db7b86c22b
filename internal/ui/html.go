package ui

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// Text renders s as escaped HTML text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Element renders <tag attrs>children</tag>. Attributes are written in
// sorted order so output is stable.
func Element(tag string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := WriteAttributes(w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// WriteAttributes writes attrs as ` name="value"` pairs. true booleans are
// written bare; false, nil and empty class values are omitted.
func WriteAttributes(w io.Writer, attrs templ.Attributes) error {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var s string
		switch v := attrs[name].(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			s = " " + templ.EscapeString(name)
		case string:
			if name == "class" && v == "" {
				continue
			}
			s = fmt.Sprintf(` %s="%s"`, templ.EscapeString(name), templ.EscapeString(v))
		default:
			s = fmt.Sprintf(` %s="%s"`, templ.EscapeString(name), templ.EscapeString(fmt.Sprint(v)))
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// merged returns own overlaid with user attributes. The class attribute
// always comes from own.
func merged(own, user templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(own)+len(user))
	for k, v := range own {
		out[k] = v
	}
	for k, v := range user {
		if k == "class" {
			continue
		}
		out[k] = v
	}
	return out
}

// Void renders an element that has no closing tag, such as <meta>.
func Void(tag string, attrs templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := WriteAttributes(w, attrs); err != nil {
			return err
		}
		_, err := io.WriteString(w, ">")
		return err
	})
}
