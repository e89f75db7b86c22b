package ui

// Dimension is one axis of a component's variants, e.g. "size".
type Dimension struct {
	Name    string
	Options map[string]string
}

// Compound adds Class when every selection in When matches.
type Compound struct {
	When  map[string]string
	Class string
}

// Variants resolves a component's classes from its base classes and the
// selected option of each dimension. Dimensions are applied in order, then
// compound variants, then caller classes, all merged with CN.
type Variants struct {
	Base       string
	Dimensions []Dimension
	Defaults   map[string]string
	Compounds  []Compound
}

// Class returns the merged class string for selected. Missing selections
// fall back to Defaults; unknown options contribute nothing.
func (v Variants) Class(selected map[string]string, extra ...any) string {
	tokens := make([]any, 0, 2+len(v.Dimensions)+len(v.Compounds))
	tokens = append(tokens, v.Base)

	for _, d := range v.Dimensions {
		tokens = append(tokens, d.Options[v.pick(selected, d.Name)])
	}

	for _, c := range v.Compounds {
		if v.matches(selected, c.When) {
			tokens = append(tokens, c.Class)
		}
	}

	tokens = append(tokens, extra)
	return CN(tokens...)
}

func (v Variants) pick(selected map[string]string, name string) string {
	if opt, ok := selected[name]; ok && opt != "" {
		return opt
	}
	return v.Defaults[name]
}

func (v Variants) matches(selected, when map[string]string) bool {
	for name, want := range when {
		if v.pick(selected, name) != want {
			return false
		}
	}
	return true
}
