package classname

import "strings"

// Tailwind classifies Tailwind CSS utilities. The zero value is ready to
// use; the tables it reads are never modified.
type Tailwind struct{}

var _ Classifier = Tailwind{}

// Classify implements Classifier.
func (Tailwind) Classify(utility string) (string, bool) {
	if utility == "" {
		return "", false
	}

	// Arbitrary property: [mask-type:luminance]
	if utility[0] == '[' && utility[len(utility)-1] == ']' {
		inner := utility[1 : len(utility)-1]
		if i := strings.IndexByte(inner, ':'); i > 0 {
			return "arbitrary.." + inner[:i], true
		}
		return "", false
	}

	if group, ok := twExact[utility]; ok {
		return group, true
	}

	// Arbitrary values may contain dashes: bg-[url(a-b.png)], w-(--size)
	for _, open := range []string{"-[", "-("} {
		if i := strings.Index(utility, open); i > 0 {
			return matchRules(utility[:i], utility[i+1:])
		}
	}

	parts := strings.Split(utility, "-")
	for i := len(parts) - 1; i >= 1; i-- {
		prefix := strings.Join(parts[:i], "-")
		if _, ok := twRules[prefix]; !ok {
			continue
		}
		if group, ok := matchRules(prefix, strings.Join(parts[i:], "-")); ok {
			return group, true
		}
	}
	return "", false
}

// Conflicts implements Classifier.
func (Tailwind) Conflicts(group string) []string {
	return twConflicts[group]
}

func matchRules(prefix, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for _, r := range twRules[prefix] {
		if r.match(value) {
			return r.group, true
		}
	}
	return "", false
}

type rule struct {
	match matcher
	group string
}

func all(group string) []rule { return []rule{{anyValue, group}} }

var (
	colorNames   = anyValue
	positions    = oneOf("bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top")
	alignments   = oneOf("start", "end", "center", "between", "around", "evenly", "stretch", "baseline", "normal")
	lineStyles   = oneOf("solid", "dashed", "dotted", "double", "none")
	blendModes   = oneOf("normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity", "plus-lighter")
	overflows    = oneOf("auto", "hidden", "clip", "visible", "scroll")
	fontWeights  = oneOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	breakValues  = oneOf("auto", "avoid", "all", "avoid-page", "page", "left", "right", "column")
	shadowSizes  = or(isTshirtSize, oneOf("none", "inner"), isArbitraryShadow)
	filterAmount = or(isNumber, isArbitraryValue, oneOf("none"))
)

// twExact holds utilities that carry no value segment.
var twExact = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display", "flex": "display",
	"inline-flex": "display", "table": "display", "inline-table": "display",
	"table-caption": "display", "table-cell": "display", "table-column": "display",
	"table-column-group": "display", "table-footer-group": "display",
	"table-header-group": "display", "table-row-group": "display", "table-row": "display",
	"flow-root": "display", "grid": "display", "inline-grid": "display",
	"contents": "display", "list-item": "display", "hidden": "display",

	"static": "position", "fixed": "position", "absolute": "position",
	"relative": "position", "sticky": "position",

	"visible": "visibility", "invisible": "visibility", "collapse": "visibility",
	"isolate": "isolation", "isolation-auto": "isolation",
	"container": "container",
	"sr-only": "sr", "not-sr-only": "sr",
	"box-border": "box", "box-content": "box",
	"box-decoration-slice": "box-decoration", "box-decoration-clone": "box-decoration",

	"italic": "font-style", "not-italic": "font-style",
	"antialiased": "font-smoothing", "subpixel-antialiased": "font-smoothing",
	"uppercase": "text-transform", "lowercase": "text-transform",
	"capitalize": "text-transform", "normal-case": "text-transform",
	"underline": "text-decoration", "overline": "text-decoration",
	"line-through": "text-decoration", "no-underline": "text-decoration",
	"truncate": "text-overflow", "text-ellipsis": "text-overflow", "text-clip": "text-overflow",
	"normal-nums": "fvn-normal", "ordinal": "fvn-ordinal", "slashed-zero": "fvn-slashed-zero",
	"lining-nums": "fvn-figure", "oldstyle-nums": "fvn-figure",
	"proportional-nums": "fvn-spacing", "tabular-nums": "fvn-spacing",
	"diagonal-fractions": "fvn-fraction", "stacked-fractions": "fvn-fraction",

	"border": "border-w", "border-x": "border-w-x", "border-y": "border-w-y",
	"border-s": "border-w-s", "border-e": "border-w-e", "border-t": "border-w-t",
	"border-r": "border-w-r", "border-b": "border-w-b", "border-l": "border-w-l",
	"divide-x": "divide-x", "divide-y": "divide-y",
	"divide-x-reverse": "divide-x-reverse", "divide-y-reverse": "divide-y-reverse",
	"space-x-reverse": "space-x-reverse", "space-y-reverse": "space-y-reverse",
	"rounded": "rounded", "rounded-s": "rounded-s", "rounded-e": "rounded-e",
	"rounded-t": "rounded-t", "rounded-r": "rounded-r", "rounded-b": "rounded-b",
	"rounded-l": "rounded-l", "rounded-ss": "rounded-ss", "rounded-se": "rounded-se",
	"rounded-ee": "rounded-ee", "rounded-es": "rounded-es", "rounded-tl": "rounded-tl",
	"rounded-tr": "rounded-tr", "rounded-br": "rounded-br", "rounded-bl": "rounded-bl",
	"outline": "outline-style", "ring": "ring-w", "ring-inset": "ring-w-inset",
	"shadow": "shadow", "blur": "blur", "drop-shadow": "drop-shadow",
	"grayscale": "grayscale", "invert": "invert", "sepia": "sepia",
	"backdrop-blur": "backdrop-blur", "backdrop-grayscale": "backdrop-grayscale",
	"backdrop-invert": "backdrop-invert", "backdrop-sepia": "backdrop-sepia",
	"filter": "filter", "backdrop-filter": "backdrop-filter",
	"grow": "grow", "shrink": "shrink",
	"transition": "transition", "transform": "transform",
	"transform-gpu": "transform", "transform-cpu": "transform", "transform-none": "transform",
	"bg-none": "bg-image",
	"resize": "resize",
	"columns": "columns",
}

// twRules maps a utility prefix to the value patterns it accepts. Rules are
// tried in order; a catch-all comes last.
var twRules = map[string][]rule{
	// Layout
	"aspect":       all("aspect"),
	"columns":      all("columns"),
	"break-after":  {{breakValues, "break-after"}},
	"break-before": {{breakValues, "break-before"}},
	"break-inside": {{oneOf("auto", "avoid", "avoid-page", "avoid-column"), "break-inside"}},
	"float":        {{oneOf("right", "left", "none", "start", "end"), "float"}},
	"clear":        {{oneOf("left", "right", "both", "none", "start", "end"), "clear"}},
	"object":       {{oneOf("contain", "cover", "fill", "none", "scale-down"), "object-fit"}, {anyValue, "object-position"}},
	"overflow":     {{overflows, "overflow"}},
	"overflow-x":   {{overflows, "overflow-x"}},
	"overflow-y":   {{overflows, "overflow-y"}},
	"overscroll":   {{oneOf("auto", "contain", "none"), "overscroll"}},
	"overscroll-x": {{oneOf("auto", "contain", "none"), "overscroll-x"}},
	"overscroll-y": {{oneOf("auto", "contain", "none"), "overscroll-y"}},
	"inset":        all("inset"),
	"inset-x":      all("inset-x"),
	"inset-y":      all("inset-y"),
	"start":        all("start"),
	"end":          all("end"),
	"top":          all("top"),
	"right":        all("right"),
	"bottom":       all("bottom"),
	"left":         all("left"),
	"z":            all("z"),

	// Flexbox and grid
	"basis":         all("basis"),
	"flex":          {{oneOf("row", "row-reverse", "col", "col-reverse"), "flex-direction"}, {oneOf("wrap", "wrap-reverse", "nowrap"), "flex-wrap"}, {anyValue, "flex"}},
	"grow":          all("grow"),
	"shrink":        all("shrink"),
	"order":         all("order"),
	"grid-cols":     all("grid-cols"),
	"col":           {{oneOf("auto"), "col-start-end"}},
	"col-span":      all("col-start-end"),
	"col-start":     all("col-start"),
	"col-end":       all("col-end"),
	"grid-rows":     all("grid-rows"),
	"row":           {{oneOf("auto"), "row-start-end"}},
	"row-span":      all("row-start-end"),
	"row-start":     all("row-start"),
	"row-end":       all("row-end"),
	"grid-flow":     all("grid-flow"),
	"auto-cols":     all("auto-cols"),
	"auto-rows":     all("auto-rows"),
	"gap":           all("gap"),
	"gap-x":         all("gap-x"),
	"gap-y":         all("gap-y"),
	"justify":       {{alignments, "justify-content"}},
	"justify-items": {{oneOf("start", "end", "center", "stretch", "normal"), "justify-items"}},
	"justify-self":  {{oneOf("auto", "start", "end", "center", "stretch"), "justify-self"}},
	"content":       {{or(alignments, oneOf("none")), "align-content"}, {isArbitrary, "content"}},
	"items":         {{oneOf("start", "end", "center", "baseline", "stretch"), "align-items"}},
	"self":          {{oneOf("auto", "start", "end", "center", "stretch", "baseline"), "align-self"}},
	"place-content": {{alignments, "place-content"}},
	"place-items":   {{oneOf("start", "end", "center", "baseline", "stretch"), "place-items"}},
	"place-self":    {{oneOf("auto", "start", "end", "center", "stretch"), "place-self"}},

	// Spacing
	"p":       all("p"),
	"px":      all("px"),
	"py":      all("py"),
	"ps":      all("ps"),
	"pe":      all("pe"),
	"pt":      all("pt"),
	"pr":      all("pr"),
	"pb":      all("pb"),
	"pl":      all("pl"),
	"m":       all("m"),
	"mx":      all("mx"),
	"my":      all("my"),
	"ms":      all("ms"),
	"me":      all("me"),
	"mt":      all("mt"),
	"mr":      all("mr"),
	"mb":      all("mb"),
	"ml":      all("ml"),
	"space-x": all("space-x"),
	"space-y": all("space-y"),

	// Sizing
	"size":  all("size"),
	"w":     all("w"),
	"min-w": all("min-w"),
	"max-w": all("max-w"),
	"h":     all("h"),
	"min-h": all("min-h"),
	"max-h": all("max-h"),

	// Typography
	"font": {{or(fontWeights, isArbitraryWeight), "font-weight"}, {isArbitraryFamily, "font-family"}, {anyValue, "font-family"}},
	"text": {
		{or(isTshirtSize, oneOf("base"), isArbitraryLength), "font-size"},
		{oneOf("left", "center", "right", "justify", "start", "end"), "text-alignment"},
		{oneOf("wrap", "nowrap", "balance", "pretty"), "text-wrap"},
		{colorNames, "text-color"},
	},
	"tracking":           all("tracking"),
	"line-clamp":         all("line-clamp"),
	"leading":            all("leading"),
	"list-image":         all("list-image"),
	"list":               {{oneOf("inside", "outside"), "list-style-position"}, {anyValue, "list-style-type"}},
	"placeholder":        all("placeholder-color"),
	"decoration":         {{oneOf("solid", "double", "dotted", "dashed", "wavy"), "text-decoration-style"}, {or(isNumber, oneOf("auto", "from-font"), isArbitraryLength), "text-decoration-thickness"}, {colorNames, "text-decoration-color"}},
	"underline-offset":   all("underline-offset"),
	"indent":             all("indent"),
	"align":              all("vertical-align"),
	"whitespace":         all("whitespace"),
	"break":              {{oneOf("normal", "words", "all", "keep"), "break"}},
	"hyphens":            {{oneOf("none", "manual", "auto"), "hyphens"}},
	"font-stretch":       all("font-stretch"),
	"text-shadow":        all("text-shadow"),
	"font-features":      all("font-features"),
	"wrap":               {{oneOf("break-word", "anywhere", "normal"), "wrap"}},
	"content-visibility": all("content-visibility"),

	// Backgrounds
	"bg": {
		{oneOf("fixed", "local", "scroll"), "bg-attachment"},
		{or(positions, isArbitraryPosition), "bg-position"},
		{oneOf("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space"), "bg-repeat"},
		{or(oneOf("auto", "cover", "contain"), isArbitrarySize), "bg-size"},
		{func(v string) bool {
			return strings.HasPrefix(v, "gradient-to-") || strings.HasPrefix(v, "linear-") ||
				strings.HasPrefix(v, "radial") || strings.HasPrefix(v, "conic") || isArbitraryImage(v)
		}, "bg-image"},
		{colorNames, "bg-color"},
	},
	"bg-clip":   {{oneOf("border", "padding", "content", "text"), "bg-clip"}},
	"bg-origin": {{oneOf("border", "padding", "content"), "bg-origin"}},
	"bg-blend":  {{blendModes, "bg-blend"}},
	"from":      {{or(isPercent, isArbitraryLength), "gradient-from-pos"}, {colorNames, "gradient-from"}},
	"via":       {{or(isPercent, isArbitraryLength), "gradient-via-pos"}, {colorNames, "gradient-via"}},
	"to":        {{or(isPercent, isArbitraryLength), "gradient-to-pos"}, {colorNames, "gradient-to"}},

	// Borders
	"rounded":    all("rounded"),
	"rounded-s":  all("rounded-s"),
	"rounded-e":  all("rounded-e"),
	"rounded-t":  all("rounded-t"),
	"rounded-r":  all("rounded-r"),
	"rounded-b":  all("rounded-b"),
	"rounded-l":  all("rounded-l"),
	"rounded-ss": all("rounded-ss"),
	"rounded-se": all("rounded-se"),
	"rounded-ee": all("rounded-ee"),
	"rounded-es": all("rounded-es"),
	"rounded-tl": all("rounded-tl"),
	"rounded-tr": all("rounded-tr"),
	"rounded-br": all("rounded-br"),
	"rounded-bl": all("rounded-bl"),
	"border": {
		{isWidth, "border-w"},
		{oneOf("solid", "dashed", "dotted", "double", "hidden", "none"), "border-style"},
		{oneOf("collapse", "separate"), "border-collapse"},
		{colorNames, "border-color"},
	},
	"border-x":         {{isWidth, "border-w-x"}, {colorNames, "border-color-x"}},
	"border-y":         {{isWidth, "border-w-y"}, {colorNames, "border-color-y"}},
	"border-s":         {{isWidth, "border-w-s"}, {colorNames, "border-color-s"}},
	"border-e":         {{isWidth, "border-w-e"}, {colorNames, "border-color-e"}},
	"border-t":         {{isWidth, "border-w-t"}, {colorNames, "border-color-t"}},
	"border-r":         {{isWidth, "border-w-r"}, {colorNames, "border-color-r"}},
	"border-b":         {{isWidth, "border-w-b"}, {colorNames, "border-color-b"}},
	"border-l":         {{isWidth, "border-w-l"}, {colorNames, "border-color-l"}},
	"border-spacing":   all("border-spacing"),
	"border-spacing-x": all("border-spacing-x"),
	"border-spacing-y": all("border-spacing-y"),
	"divide-x":         {{isWidth, "divide-x"}},
	"divide-y":         {{isWidth, "divide-y"}},
	"divide":           {{lineStyles, "divide-style"}, {colorNames, "divide-color"}},
	"outline":          {{oneOf("none", "dashed", "dotted", "double", "solid", "hidden"), "outline-style"}, {isWidth, "outline-w"}, {colorNames, "outline-color"}},
	"outline-offset":   all("outline-offset"),
	"ring":             {{isWidth, "ring-w"}, {colorNames, "ring-color"}},
	"ring-offset":      {{isWidth, "ring-offset-w"}, {colorNames, "ring-offset-color"}},
	"inset-ring":       {{isWidth, "inset-ring-w"}, {colorNames, "inset-ring-color"}},

	// Effects
	"shadow":              {{shadowSizes, "shadow"}, {colorNames, "shadow-color"}},
	"inset-shadow":        {{shadowSizes, "inset-shadow"}, {colorNames, "inset-shadow-color"}},
	"opacity":             all("opacity"),
	"mix-blend":           {{blendModes, "mix-blend"}},
	"blur":                all("blur"),
	"brightness":          {{filterAmount, "brightness"}},
	"contrast":            {{filterAmount, "contrast"}},
	"drop-shadow":         {{shadowSizes, "drop-shadow"}, {colorNames, "drop-shadow-color"}},
	"grayscale":           {{filterAmount, "grayscale"}},
	"hue-rotate":          {{filterAmount, "hue-rotate"}},
	"invert":              {{filterAmount, "invert"}},
	"saturate":            {{filterAmount, "saturate"}},
	"sepia":               {{filterAmount, "sepia"}},
	"backdrop-blur":       all("backdrop-blur"),
	"backdrop-brightness": {{filterAmount, "backdrop-brightness"}},
	"backdrop-contrast":   {{filterAmount, "backdrop-contrast"}},
	"backdrop-grayscale":  {{filterAmount, "backdrop-grayscale"}},
	"backdrop-invert":     {{filterAmount, "backdrop-invert"}},
	"backdrop-opacity":    {{filterAmount, "backdrop-opacity"}},
	"backdrop-saturate":   {{filterAmount, "backdrop-saturate"}},
	"backdrop-sepia":      {{filterAmount, "backdrop-sepia"}},
	"filter":              {{oneOf("none"), "filter"}},
	"backdrop-filter":     {{oneOf("none"), "backdrop-filter"}},

	// Tables
	"table":   {{oneOf("auto", "fixed"), "table-layout"}},
	"caption": {{oneOf("top", "bottom"), "caption"}},

	// Transitions and animation
	"transition": all("transition"),
	"duration":   all("duration"),
	"ease":       all("ease"),
	"delay":      all("delay"),
	"animate":    all("animate"),

	// Transforms
	"scale":       all("scale"),
	"scale-x":     all("scale-x"),
	"scale-y":     all("scale-y"),
	"rotate":      all("rotate"),
	"translate-x": all("translate-x"),
	"translate-y": all("translate-y"),
	"skew-x":      all("skew-x"),
	"skew-y":      all("skew-y"),
	"origin":      all("transform-origin"),

	// Interactivity
	"accent":         all("accent"),
	"appearance":     {{oneOf("none", "auto"), "appearance"}},
	"cursor":         all("cursor"),
	"caret":          all("caret-color"),
	"pointer-events": {{oneOf("none", "auto"), "pointer-events"}},
	"resize":         {{oneOf("none", "x", "y"), "resize"}},
	"scroll":         {{oneOf("auto", "smooth"), "scroll-behavior"}},
	"scroll-m":       all("scroll-m"),
	"scroll-mx":      all("scroll-mx"),
	"scroll-my":      all("scroll-my"),
	"scroll-mt":      all("scroll-mt"),
	"scroll-mr":      all("scroll-mr"),
	"scroll-mb":      all("scroll-mb"),
	"scroll-ml":      all("scroll-ml"),
	"scroll-p":       all("scroll-p"),
	"scroll-px":      all("scroll-px"),
	"scroll-py":      all("scroll-py"),
	"scroll-pt":      all("scroll-pt"),
	"scroll-pr":      all("scroll-pr"),
	"scroll-pb":      all("scroll-pb"),
	"scroll-pl":      all("scroll-pl"),
	"snap":           {{oneOf("start", "end", "center", "align-none"), "snap-align"}, {oneOf("normal", "always"), "snap-stop"}, {oneOf("none", "x", "y", "both"), "snap-type"}, {oneOf("mandatory", "proximity"), "snap-strictness"}},
	"touch":          {{oneOf("auto", "none", "manipulation"), "touch"}, {oneOf("pan-x", "pan-left", "pan-right"), "touch-x"}, {oneOf("pan-y", "pan-up", "pan-down"), "touch-y"}, {oneOf("pinch-zoom"), "touch-pz"}},
	"select":         {{oneOf("none", "text", "all", "auto"), "select"}},
	"will-change":    all("will-change"),
	"color-scheme":   all("color-scheme"),
	"scheme":         all("color-scheme"),
	"field-sizing":   {{oneOf("fixed", "content"), "field-sizing"}},

	// SVG
	"fill":   all("fill"),
	"stroke": {{or(isNumber, isArbitraryLength, isArbitraryNumber), "stroke-w"}, {colorNames, "stroke"}},

	// Accessibility
	"forced-color-adjust": {{oneOf("auto", "none"), "forced-color-adjust"}},
}

// twConflicts lists, for a group, the groups a later class of it removes.
var twConflicts = map[string][]string{
	"overflow":         {"overflow-x", "overflow-y"},
	"overscroll":       {"overscroll-x", "overscroll-y"},
	"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
	"inset-x":          {"right", "left"},
	"inset-y":          {"top", "bottom"},
	"flex":             {"basis", "grow", "shrink"},
	"gap":              {"gap-x", "gap-y"},
	"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
	"px":               {"pr", "pl"},
	"py":               {"pt", "pb"},
	"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
	"mx":               {"mr", "ml"},
	"my":               {"mt", "mb"},
	"size":             {"w", "h"},
	"font-size":        {"leading"},
	"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
	"fvn-ordinal":      {"fvn-normal"},
	"fvn-slashed-zero": {"fvn-normal"},
	"fvn-figure":       {"fvn-normal"},
	"fvn-spacing":      {"fvn-normal"},
	"fvn-fraction":     {"fvn-normal"},
	"line-clamp":       {"display", "overflow"},
	"rounded":          {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-s":        {"rounded-ss", "rounded-es"},
	"rounded-e":        {"rounded-se", "rounded-ee"},
	"rounded-t":        {"rounded-tl", "rounded-tr"},
	"rounded-r":        {"rounded-tr", "rounded-br"},
	"rounded-b":        {"rounded-br", "rounded-bl"},
	"rounded-l":        {"rounded-tl", "rounded-bl"},
	"border-spacing":   {"border-spacing-x", "border-spacing-y"},
	"border-w":         {"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
	"border-w-x":       {"border-w-r", "border-w-l"},
	"border-w-y":       {"border-w-t", "border-w-b"},
	"border-color":     {"border-color-s", "border-color-e", "border-color-t", "border-color-r", "border-color-b", "border-color-l"},
	"border-color-x":   {"border-color-r", "border-color-l"},
	"border-color-y":   {"border-color-t", "border-color-b"},
	"scroll-m":         {"scroll-mx", "scroll-my", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
	"scroll-mx":        {"scroll-mr", "scroll-ml"},
	"scroll-my":        {"scroll-mt", "scroll-mb"},
	"scroll-p":         {"scroll-px", "scroll-py", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
	"scroll-px":        {"scroll-pr", "scroll-pl"},
	"scroll-py":        {"scroll-pt", "scroll-pb"},
	"touch":            {"touch-x", "touch-y", "touch-pz"},
	"touch-x":          {"touch"},
	"touch-y":          {"touch"},
	"touch-pz":         {"touch"},
}
