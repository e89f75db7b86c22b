// Package classname composes class attribute values.
//
// Compose flattens a variadic, possibly nested and conditional set of class
// tokens, drops falsy ones, removes duplicates and resolves conflicting
// Tailwind utilities so the last one wins:
//
//	classname.Compose("px-2 py-1 bg-red-500", classname.If(isActive, "ring-2"), "bg-blue-500")
//	// "px-2 py-1 ring-2 bg-blue-500" when isActive
//
// The merge algorithm only depends on the Classifier interface; Tailwind is
// the default table. Composition is pure and safe for concurrent use.
package classname

// Default merges with the Tailwind table.
var Default = New(Tailwind{})

// Compose joins tokens and resolves conflicts with the Tailwind table.
func Compose(tokens ...any) string {
	return Default.Compose(tokens...)
}
