package classname

import (
	"sort"
	"strings"
)

// Classifier maps a utility (a class stripped of variants, important marker
// and negative sign) to the style property group it sets.
type Classifier interface {
	// Classify reports the group of utility, or ok=false when the utility
	// is not part of the naming convention.
	Classify(utility string) (group string, ok bool)
	// Conflicts lists the groups a class of group overrides when it
	// appears later in the list.
	Conflicts(group string) []string
}

// Merger resolves conflicting classes using a Classifier.
type Merger struct {
	classifier Classifier
}

// New returns a Merger that groups classes with c.
func New(c Classifier) *Merger {
	return &Merger{classifier: c}
}

// Compose flattens tokens with Join and merges the result.
func (m *Merger) Compose(tokens ...any) string {
	return m.Merge(Join(tokens...))
}

// Merge removes exact duplicates and classes overridden by a later class of
// the same group. A surviving class keeps the position of its last
// occurrence; all other classes keep their relative order.
func (m *Merger) Merge(classList string) string {
	classes := strings.Fields(classList)
	if len(classes) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(classes))
	kept := make([]string, 0, len(classes))

	for i := len(classes) - 1; i >= 0; i-- {
		class := classes[i]
		p := parseClass(class)

		group, ok := m.classify(p)
		if !ok {
			key := "\x00" + class
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, class)
			continue
		}

		prefix := p.variantKey()
		key := prefix + group
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if m.classifier != nil {
			for _, g := range m.classifier.Conflicts(group) {
				seen[prefix+g] = struct{}{}
			}
		}
		kept = append(kept, class)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

func (m *Merger) classify(p parsedClass) (string, bool) {
	if m.classifier == nil || p.utility == "" {
		return "", false
	}
	if p.postfix >= 0 {
		if group, ok := m.classifier.Classify(p.utility[:p.postfix]); ok {
			return group, true
		}
	}
	return m.classifier.Classify(p.utility)
}

type parsedClass struct {
	variants  []string
	important bool
	utility   string
	// postfix is the index of a trailing "/modifier" in utility, or -1.
	postfix int
}

// variantKey is the conflict-key prefix shared by classes that apply under
// the same variants and importance.
func (p parsedClass) variantKey() string {
	var b strings.Builder
	for _, v := range sortVariants(p.variants) {
		b.WriteString(v)
		b.WriteByte(':')
	}
	if p.important {
		b.WriteByte('!')
	}
	return b.String()
}

// parseClass splits "md:hover:!-mt-2/50" into its variants, important
// marker, utility and postfix modifier. Separators inside brackets or
// parentheses belong to arbitrary values and are ignored.
func parseClass(class string) parsedClass {
	p := parsedClass{postfix: -1}

	depth := 0
	start := 0
	lastSlash := -1
	for i := 0; i < len(class); i++ {
		switch c := class[i]; c {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				p.variants = append(p.variants, class[start:i])
				start = i + 1
				lastSlash = -1
			}
		case '/':
			if depth == 0 {
				lastSlash = i
			}
		}
	}

	utility := class[start:]
	offset := start
	if strings.HasPrefix(utility, "!") {
		p.important = true
		utility = utility[1:]
		offset++
	} else if strings.HasSuffix(utility, "!") {
		p.important = true
		utility = utility[:len(utility)-1]
	}
	if strings.HasPrefix(utility, "-") {
		utility = utility[1:]
		offset++
	}
	if lastSlash >= offset && lastSlash-offset < len(utility) {
		p.postfix = lastSlash - offset
	}
	p.utility = utility
	return p
}

// orderSensitive lists variants whose position changes the selector they
// produce: pseudo-elements and child selectors.
var orderSensitive = map[string]struct{}{
	"*":               {},
	"**":              {},
	"after":           {},
	"backdrop":        {},
	"before":          {},
	"details-content": {},
	"file":            {},
	"first-letter":    {},
	"first-line":      {},
	"marker":          {},
	"placeholder":     {},
	"selection":       {},
}

func isOrderSensitive(variant string) bool {
	if strings.HasPrefix(variant, "[") {
		return true
	}
	_, ok := orderSensitive[variant]
	return ok
}

// sortVariants orders variants alphabetically so "hover:focus:" and
// "focus:hover:" share a key. Arbitrary and order-sensitive variants stay
// in place; only the runs between them are sorted.
func sortVariants(variants []string) []string {
	if len(variants) < 2 {
		return variants
	}
	out := make([]string, 0, len(variants))
	run := make([]string, 0, len(variants))
	for _, v := range variants {
		if isOrderSensitive(v) {
			sort.Strings(run)
			out = append(out, run...)
			out = append(out, v)
			run = run[:0]
			continue
		}
		run = append(run, v)
	}
	sort.Strings(run)
	return append(out, run...)
}
