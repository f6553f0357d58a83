package uikit

import "strings"

// stemGroups maps utility stems to conflict groups. A stem is the token with
// its value suffix stripped ("bg-red-500" -> "bg"). Two tokens whose stems
// resolve to the same group, under the same variant prefix, style the same
// visual property and conflict.
var stemGroups = map[string]string{
	// Spacing
	"p":       "p",
	"px":      "px",
	"py":      "py",
	"pt":      "pt",
	"pr":      "pr",
	"pb":      "pb",
	"pl":      "pl",
	"m":       "m",
	"mx":      "mx",
	"my":      "my",
	"mt":      "mt",
	"mr":      "mr",
	"mb":      "mb",
	"ml":      "ml",
	"space-x": "space-x",
	"space-y": "space-y",
	"gap":     "gap",
	"gap-x":   "gap-x",
	"gap-y":   "gap-y",

	// Sizing
	"w":     "w",
	"h":     "h",
	"size":  "size",
	"min-w": "min-w",
	"min-h": "min-h",
	"max-w": "max-w",
	"max-h": "max-h",

	// Color
	"bg":          "bg",
	"text":        "text", // color vs size vs align, resolved by value
	"fill":        "fill",
	"stroke":      "stroke",
	"accent":      "accent",
	"caret":       "caret",
	"ring":        "ring", // width vs color, resolved by value
	"ring-offset": "ring-offset",
	"outline":     "outline",
	"decoration":  "decoration",
	"placeholder": "placeholder",
	"divide":      "divide",

	// Border
	"border":   "border", // width vs color, resolved by value
	"border-x": "border-x",
	"border-y": "border-y",
	"border-t": "border-t",
	"border-r": "border-r",
	"border-b": "border-b",
	"border-l": "border-l",
	"divide-x": "divide-x",
	"divide-y": "divide-y",

	// Border radius
	"rounded":    "rounded",
	"rounded-t":  "rounded-t",
	"rounded-r":  "rounded-r",
	"rounded-b":  "rounded-b",
	"rounded-l":  "rounded-l",
	"rounded-tl": "rounded-tl",
	"rounded-tr": "rounded-tr",
	"rounded-bl": "rounded-bl",
	"rounded-br": "rounded-br",

	// Typography
	"font":             "font", // weight vs family, resolved by value
	"leading":          "leading",
	"tracking":         "tracking",
	"underline-offset": "underline-offset",
	"list":             "list",
	"indent":           "indent",
	"align":            "align",

	// Effects
	"shadow":      "shadow",
	"opacity":     "opacity",
	"blur":        "blur",
	"brightness":  "brightness",
	"contrast":    "contrast",
	"saturate":    "saturate",
	"grayscale":   "grayscale",
	"transition":  "transition",
	"duration":    "duration",
	"ease":        "ease",
	"delay":       "delay",
	"animate":     "animate",
	"scale":       "scale",
	"scale-x":     "scale-x",
	"scale-y":     "scale-y",
	"rotate":      "rotate",
	"translate-x": "translate-x",
	"translate-y": "translate-y",
	"skew-x":      "skew-x",
	"skew-y":      "skew-y",
	"origin":      "origin",

	// Layout
	"basis":          "basis",
	"grow":           "grow",
	"shrink":         "shrink",
	"order":          "order",
	"items":          "items",
	"justify":        "justify",
	"justify-items":  "justify-items",
	"justify-self":   "justify-self",
	"content":        "content",
	"self":           "self",
	"place-items":    "place-items",
	"place-content":  "place-content",
	"place-self":     "place-self",
	"grid-cols":      "grid-cols",
	"grid-rows":      "grid-rows",
	"grid-flow":      "grid-flow",
	"col-span":       "col-span",
	"col-start":      "col-start",
	"col-end":        "col-end",
	"row-span":       "row-span",
	"row-start":      "row-start",
	"row-end":        "row-end",
	"inset":          "inset",
	"inset-x":        "inset-x",
	"inset-y":        "inset-y",
	"top":            "top",
	"right":          "right",
	"bottom":         "bottom",
	"left":           "left",
	"z":              "z",
	"overflow":       "overflow",
	"overflow-x":     "overflow-x",
	"overflow-y":     "overflow-y",
	"object":         "object",
	"aspect":         "aspect",
	"columns":        "columns",
	"cursor":         "cursor",
	"select":         "select",
	"pointer-events": "pointer-events",
	"whitespace":     "whitespace",
	"break":          "break",
	"line-clamp":     "line-clamp",
	"scroll":         "scroll",
	"touch":          "touch",
	"will-change":    "will-change",
}

// keywordGroups maps complete value-less tokens to conflict groups. These
// tokens carry their property in the keyword itself (display: flex, position:
// absolute), so stem stripping never applies.
var keywordGroups = map[string]string{
	// Display
	"block":        "display",
	"inline-block": "display",
	"inline":       "display",
	"flex":         "display",
	"inline-flex":  "display",
	"grid":         "display",
	"inline-grid":  "display",
	"table":        "display",
	"contents":     "display",
	"flow-root":    "display",
	"hidden":       "display",

	// Position
	"static":   "position",
	"fixed":    "position",
	"absolute": "position",
	"relative": "position",
	"sticky":   "position",

	// Flex direction and wrapping
	"flex-row":         "flex-direction",
	"flex-row-reverse": "flex-direction",
	"flex-col":         "flex-direction",
	"flex-col-reverse": "flex-direction",
	"flex-wrap":        "flex-wrap",
	"flex-wrap-reverse": "flex-wrap",
	"flex-nowrap":      "flex-wrap",
	"flex-1":           "flex",
	"flex-auto":        "flex",
	"flex-initial":     "flex",
	"flex-none":        "flex",

	// Text decoration and transform
	"underline":    "text-decoration",
	"overline":     "text-decoration",
	"line-through": "text-decoration",
	"no-underline": "text-decoration",
	"uppercase":    "text-transform",
	"lowercase":    "text-transform",
	"capitalize":   "text-transform",
	"normal-case":  "text-transform",
	"italic":       "font-style",
	"not-italic":   "font-style",
	"antialiased":  "font-smoothing",
	"subpixel-antialiased": "font-smoothing",
	"truncate":     "text-overflow",

	// Bare stems with an implicit default value
	"border":     "border-w",
	"rounded":    "rounded",
	"shadow":     "shadow",
	"ring":       "ring-w",
	"outline":    "outline",
	"transition": "transition",
	"grow":       "grow",
	"shrink":     "shrink",

	// Visibility
	"visible":   "visibility",
	"invisible": "visibility",
	"collapse":  "visibility",
}

// fontSizes distinguishes text-{size} (font-size) from text-{color}.
var fontSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

// textAligns distinguishes text-{align} from text-{color}.
var textAligns = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true,
	"start": true, "end": true,
}

// fontWeights distinguishes font-{weight} from font-{family}.
var fontWeights = map[string]bool{
	"thin": true, "extralight": true, "light": true, "normal": true,
	"medium": true, "semibold": true, "bold": true, "extrabold": true,
	"black": true,
}

// CategoryKey derives the conflict key for a utility token: the variant
// prefix chain plus the token's conflict group. The second return is false
// for tokens that belong to no known group; those never conflict.
func CategoryKey(token string) (string, bool) {
	prefix := ""
	base := token
	if i := strings.LastIndexByte(token, ':'); i >= 0 {
		prefix = token[:i+1]
		base = token[i+1:]
	}
	base = strings.TrimPrefix(base, "-") // negative values group with positive
	if base == "" {
		return "", false
	}

	if group, ok := keywordGroups[base]; ok {
		return prefix + group, true
	}

	// Strip value segments from the right; the first hit is the longest stem.
	rest := base
	for {
		i := strings.LastIndexByte(rest, '-')
		if i < 0 {
			return "", false
		}
		rest = rest[:i]
		if group, ok := stemGroups[rest]; ok {
			return prefix + resolveGroup(rest, base[len(rest)+1:], group), true
		}
	}
}

// resolveGroup disambiguates stems whose group depends on the value suffix.
func resolveGroup(stem, value, group string) string {
	switch stem {
	case "text":
		if fontSizes[value] {
			return "text-size"
		}
		if textAligns[value] {
			return "text-align"
		}
		return "text-color"
	case "font":
		if fontWeights[value] {
			return "font-weight"
		}
		return "font-family"
	case "border", "border-x", "border-y", "border-t", "border-r", "border-b", "border-l":
		if isWidthValue(value) {
			return stem + "-w"
		}
		return stem + "-color"
	case "ring":
		if isWidthValue(value) {
			return "ring-w"
		}
		return "ring-color"
	}
	return group
}

// isWidthValue reports whether a value suffix is numeric, including
// arbitrary values like [3px].
func isWidthValue(v string) bool {
	v = strings.TrimPrefix(v, "[")
	if v == "" {
		return false
	}
	return v[0] >= '0' && v[0] <= '9'
}
