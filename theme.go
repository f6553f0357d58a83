package uikit

import "context"

// Theme selects the light or dark rendering of a component tree. It is an
// explicit value carried through the render context rather than a global
// flag; renderers read it with ThemeFromContext.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type themeContextKey struct{}

// WithTheme returns a context carrying the given theme. templ passes the
// context through Render, so setting it once at the root is enough.
func WithTheme(ctx context.Context, theme Theme) context.Context {
	return context.WithValue(ctx, themeContextKey{}, theme)
}

// ThemeFromContext returns the theme carried by ctx, defaulting to light.
func ThemeFromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(themeContextKey{}).(Theme); ok {
		return t
	}
	return ThemeLight
}

// Color is the palette entry shared by all components. Unrecognized values
// fall back to ColorDefault.
type Color string

const (
	ColorDefault   Color = "default"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorDanger    Color = "danger"
	ColorInfo      Color = "info"
)

// Size is the shared sizing scale. Unrecognized values fall back to SizeMD.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)
