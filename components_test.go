package uikit

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(ctx, &sb))
	return sb.String()
}

func TestButtonClasses(t *testing.T) {
	tests := []struct {
		name     string
		props    ButtonProps
		contains []string
		excludes []string
	}{
		{
			name:     "zero value renders solid default medium",
			props:    ButtonProps{},
			contains: []string{"bg-gray-900", "h-10", "inline-flex"},
		},
		{
			name:     "primary solid",
			props:    ButtonProps{Color: ColorPrimary},
			contains: []string{"bg-blue-600", "hover:bg-blue-700"},
		},
		{
			name:     "unrecognized color falls back to default",
			props:    ButtonProps{Color: Color("chartreuse")},
			contains: []string{"bg-gray-900"},
		},
		{
			name:     "unrecognized size falls back to md",
			props:    ButtonProps{Size: Size("xxl")},
			contains: []string{"h-10"},
		},
		{
			name:     "outline danger",
			props:    ButtonProps{Variant: ButtonOutline, Color: ColorDanger},
			contains: []string{"border-red-600", "text-red-600"},
			excludes: []string{"bg-red-600"},
		},
		{
			name:     "loading suppresses interaction",
			props:    ButtonProps{Loading: true},
			contains: []string{"pointer-events-none", "opacity-75"},
		},
		{
			name:     "full width",
			props:    ButtonProps{FullWidth: true},
			contains: []string{"w-full"},
		},
		{
			name:     "caller class wins conflicts",
			props:    ButtonProps{Color: ColorPrimary, Class: "bg-purple-600"},
			contains: []string{"bg-purple-600"},
			excludes: []string{"bg-blue-600"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := ButtonClasses(tt.props)
			for _, c := range tt.contains {
				assert.Contains(t, classes, c)
			}
			for _, c := range tt.excludes {
				assert.NotContains(t, classes, c)
			}
		})
	}
}

func TestButtonRender(t *testing.T) {
	ctx := context.Background()

	t.Run("button element", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{Type: "submit"}, Text("Save")))
		assert.True(t, strings.HasPrefix(html, "<button"))
		assert.Contains(t, html, `type="submit"`)
		assert.Contains(t, html, ">Save</button>")
	})

	// The base class string carries disabled: variants, so these subtests
	// match the bare attribute (" disabled>"), not the substring.
	t.Run("disabled attribute", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{Disabled: true}))
		assert.Contains(t, html, " disabled>")
	})

	t.Run("loading disables and marks busy", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{Loading: true}))
		assert.Contains(t, html, `aria-busy="true"`)
		assert.Contains(t, html, " disabled>")
	})

	t.Run("anchor kind", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{As: ElementAnchor, Href: "/docs", Disabled: true}, Text("Docs")))
		assert.True(t, strings.HasPrefix(html, "<a"))
		assert.Contains(t, html, `href="/docs"`)
		assert.NotContains(t, html, " disabled>")
		assert.True(t, strings.HasSuffix(html, "</a>"))
	})

	t.Run("active state", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{Active: true}))
		assert.Contains(t, html, `aria-pressed="true"`)
	})

	t.Run("text children are escaped", func(t *testing.T) {
		html := render(t, ctx, Button(ButtonProps{}, Text("<b>bold</b>")))
		assert.Contains(t, html, "&lt;b&gt;")
	})
}

func TestGroupPositions(t *testing.T) {
	tests := []struct {
		n        int
		expected []GroupPosition
	}{
		{0, nil},
		{-1, nil},
		{1, []GroupPosition{GroupSingle}},
		{2, []GroupPosition{GroupFirst, GroupLast}},
		{3, []GroupPosition{GroupFirst, GroupMiddle, GroupLast}},
		{5, []GroupPosition{GroupFirst, GroupMiddle, GroupMiddle, GroupMiddle, GroupLast}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, GroupPositions(tt.n), "n=%d", tt.n)
	}
}

func TestGroupItemClasses(t *testing.T) {
	assert.Equal(t, "", GroupItemClasses(GroupSingle))
	assert.Equal(t, "rounded-r-none", GroupItemClasses(GroupFirst))
	assert.Equal(t, "rounded-none -ml-px", GroupItemClasses(GroupMiddle))
	assert.Equal(t, "rounded-l-none -ml-px", GroupItemClasses(GroupLast))
}

func TestButtonGroupRender(t *testing.T) {
	ctx := context.Background()
	html := render(t, ctx, ButtonGroup(ButtonGroupProps{},
		GroupedButton{Props: ButtonProps{Variant: ButtonOutline}, Child: Text("One")},
		GroupedButton{Props: ButtonProps{Variant: ButtonOutline}, Child: Text("Two")},
		GroupedButton{Props: ButtonProps{Variant: ButtonOutline}, Child: Text("Three")},
	))

	assert.Contains(t, html, `role="group"`)
	// First keeps its left corners, loses the right ones.
	assert.Contains(t, html, "rounded-r-none")
	// Middle loses all rounding and pulls left over the shared border.
	assert.Contains(t, html, "rounded-none -ml-px")
	assert.Contains(t, html, "rounded-l-none")
	assert.Contains(t, html, ">One<")
	assert.Contains(t, html, ">Three<")
}

func TestCardRender(t *testing.T) {
	ctx := context.Background()
	html := render(t, ctx, Card(CardProps{Class: "w-96"},
		CardHeader(CardProps{},
			CardTitle(CardProps{}, Text("Title")),
			CardDescription(CardProps{}, Text("Sub")),
		),
		CardContent(CardProps{}, Text("Body")),
		CardFooter(CardProps{}, Text("Footer")),
	))

	assert.Contains(t, html, "rounded-lg")
	assert.Contains(t, html, "w-96")
	assert.Contains(t, html, "<h3")
	assert.Contains(t, html, ">Title</h3>")
	assert.Contains(t, html, ">Body</div>")
}

func TestCardTheme(t *testing.T) {
	light := render(t, context.Background(), Card(CardProps{}))
	assert.Contains(t, light, "bg-white")

	dark := render(t, WithTheme(context.Background(), ThemeDark), Card(CardProps{}))
	assert.Contains(t, dark, "bg-gray-900")
	assert.NotContains(t, dark, "bg-white")
}

func TestAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("variant classes", func(t *testing.T) {
		assert.Contains(t, AlertClasses(AlertProps{Variant: AlertSuccess}), "bg-green-50")
		assert.Contains(t, AlertClasses(AlertProps{Variant: AlertDanger}), "bg-red-50")
		// Unrecognized variant falls back to info.
		assert.Contains(t, AlertClasses(AlertProps{Variant: AlertVariant("loud")}), "bg-sky-50")
	})

	t.Run("render", func(t *testing.T) {
		html := render(t, ctx, Alert(AlertProps{Variant: AlertWarning, Title: "Heads up"}, Text("Check this.")))
		assert.Contains(t, html, `role="alert"`)
		assert.Contains(t, html, ">Heads up</h5>")
		assert.Contains(t, html, "Check this.")
		assert.NotContains(t, html, "data-dismiss")
	})

	t.Run("dismissible", func(t *testing.T) {
		html := render(t, ctx, Alert(AlertProps{Dismissible: true}))
		assert.Contains(t, html, `data-dismiss="alert"`)
		assert.Contains(t, html, `aria-label="Dismiss"`)
	})
}

func TestAlertDialog(t *testing.T) {
	ctx := context.Background()

	t.Run("closed renders nothing", func(t *testing.T) {
		html := render(t, ctx, AlertDialog(AlertDialogProps{Open: false, Title: "Sure?"}))
		assert.Empty(t, html)
	})

	t.Run("open renders overlay and panel", func(t *testing.T) {
		html := render(t, ctx, AlertDialog(AlertDialogProps{
			Open:          true,
			ID:            "confirm",
			Title:         "Delete item",
			Description:   "This cannot be undone.",
			CloseOnEscape: true,
		}, Button(ButtonProps{Color: ColorDanger}, Text("Delete"))))

		assert.Contains(t, html, `role="alertdialog"`)
		assert.Contains(t, html, `aria-modal="true"`)
		assert.Contains(t, html, `data-state="open"`)
		assert.Contains(t, html, `data-close-on-escape="true"`)
		assert.Contains(t, html, `id="confirm"`)
		assert.Contains(t, html, ">Delete item</h2>")
		assert.Contains(t, html, "This cannot be undone.")
		assert.Contains(t, html, "bg-black/80")
	})
}
