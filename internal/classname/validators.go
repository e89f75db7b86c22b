package classname

import (
	"regexp"
	"strconv"
	"strings"
)

type matcher func(value string) bool

var (
	tshirtRegex  = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthRegex  = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)(%|px|r?em|[sdl]?v[hwib]|vmin|vmax|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq[whib]|cqmin|cqmax)$`)
	percentRegex = regexp.MustCompile(`^\d+(\.\d+)?%$`)
	imageRegex   = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
	shadowRegex  = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
)

func anyValue(string) bool { return true }

func oneOf(values ...string) matcher {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(value string) bool {
		_, ok := set[value]
		return ok
	}
}

func or(ms ...matcher) matcher {
	return func(value string) bool {
		for _, m := range ms {
			if m(value) {
				return true
			}
		}
		return false
	}
}

func isNumber(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

func isTshirtSize(value string) bool { return tshirtRegex.MatchString(value) }

func isPercent(value string) bool { return percentRegex.MatchString(value) }

// isArbitrary reports whether value is a bracketed arbitrary value or a
// parenthesized CSS variable shorthand.
func isArbitrary(value string) bool {
	return len(value) >= 2 &&
		(value[0] == '[' && value[len(value)-1] == ']' ||
			value[0] == '(' && value[len(value)-1] == ')')
}

// arbitrary splits "[length:var(--x)]" into the "length" label and the
// "var(--x)" content.
func arbitrary(value string) (label, content string, ok bool) {
	if !isArbitrary(value) {
		return "", "", false
	}
	content = value[1 : len(value)-1]
	if i := strings.IndexByte(content, ':'); i > 0 && isLabel(content[:i]) {
		return content[:i], content[i+1:], true
	}
	return "", content, true
}

func isLabel(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c == '-') {
			return false
		}
	}
	return true
}

func arbitraryOf(labels []string, test func(content string) bool) matcher {
	return func(value string) bool {
		label, content, ok := arbitrary(value)
		if !ok {
			return false
		}
		if label != "" {
			for _, l := range labels {
				if l == label {
					return true
				}
			}
			return false
		}
		return test != nil && test(content)
	}
}

var (
	isArbitraryValue = func(value string) bool {
		label, _, ok := arbitrary(value)
		return ok && label == ""
	}
	isArbitraryLength = arbitraryOf([]string{"length"}, func(c string) bool {
		return c == "0" || lengthRegex.MatchString(c) ||
			strings.HasPrefix(c, "calc(") || strings.HasPrefix(c, "min(") ||
			strings.HasPrefix(c, "max(") || strings.HasPrefix(c, "clamp(")
	})
	isArbitraryNumber   = arbitraryOf([]string{"number"}, isNumber)
	isArbitraryImage    = arbitraryOf([]string{"image", "url"}, imageRegex.MatchString)
	isArbitraryPosition = arbitraryOf([]string{"position", "percentage"}, nil)
	isArbitrarySize     = arbitraryOf([]string{"size", "length", "percentage"}, nil)
	isArbitraryShadow   = arbitraryOf([]string{"shadow"}, shadowRegex.MatchString)
	isArbitraryFamily   = arbitraryOf([]string{"family-name"}, nil)
	isArbitraryWeight   = arbitraryOf([]string{"number", "weight"}, isNumber)
)

// isWidth is the value set of border, outline, ring and divide widths.
var isWidth = or(isNumber, isArbitraryLength)
