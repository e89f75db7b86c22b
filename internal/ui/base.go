package ui

import "github.com/a-h/templ"

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	Classes  []any
	Attrs    templ.Attributes
	Children []templ.Component
}

// ConfigProvider allows generic options to work on any config.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider.
type Option[T ConfigProvider] func(T)

// Class adds class tokens; they are merged via CN after the component's own
// classes, so conflicting utilities override the defaults.
func Class[T ConfigProvider](tokens ...any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, tokens...)
	}
}

// Attr sets a raw attribute (escape hatch). The class attribute is owned by
// the component; use Class instead.
func Attr[T ConfigProvider](name string, value any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Attrs == nil {
			base.Attrs = templ.Attributes{}
		}
		base.Attrs[name] = value
	}
}

// Child appends child components.
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, n := range nodes {
			if n != nil {
				base.Children = append(base.Children, n)
			}
		}
	}
}

// Label appends an escaped text child.
func Label[T ConfigProvider](text string) Option[T] {
	return Child[T](Text(text))
}
