package uikit

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonVariant is the visual treatment of a button.
type ButtonVariant string

const (
	ButtonSolid   ButtonVariant = "solid"
	ButtonSoft    ButtonVariant = "soft"
	ButtonOutline ButtonVariant = "outline"
	ButtonGhost   ButtonVariant = "ghost"
	ButtonLink    ButtonVariant = "link"
)

// ButtonProps configures a Button. The zero value renders a solid,
// default-colored, medium button.
type ButtonProps struct {
	Variant   ButtonVariant
	Color     Color
	Size      Size
	Loading   bool
	Disabled  bool
	Active    bool
	FullWidth bool

	// As selects the rendered element. ElementAnchor requires Href.
	As   ElementKind
	Href string

	Type       string // button | submit | reset; empty renders no type attribute
	Class      string // merged last, wins conflicts against defaults
	Attributes templ.Attributes
}

// ButtonClasses computes the class string for the given props. Callers that
// render their own markup can use this directly; Button uses it internally.
func ButtonClasses(props ButtonProps) string {
	return Resolve(
		"inline-flex items-center justify-center font-medium whitespace-nowrap transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		buttonSizeClasses(props.Size),
		buttonVariantClasses(props.Variant, props.Color),
		KV("w-full", props.FullWidth),
		KV("pointer-events-none opacity-75", props.Loading),
		props.Class,
	)
}

func buttonSizeClasses(size Size) string {
	switch size {
	case SizeXS:
		return "h-7 rounded px-2 text-xs gap-1"
	case SizeSM:
		return "h-8 rounded-md px-3 text-sm gap-1.5"
	case SizeLG:
		return "h-11 rounded-md px-6 text-base gap-2"
	case SizeXL:
		return "h-12 rounded-lg px-8 text-base gap-2"
	default: // SizeMD and anything unrecognized
		return "h-10 rounded-md px-4 text-sm gap-2"
	}
}

func buttonVariantClasses(variant ButtonVariant, color Color) string {
	switch variant {
	case ButtonSoft:
		switch color {
		case ColorPrimary:
			return "bg-blue-100 text-blue-700 hover:bg-blue-200 active:bg-blue-300 focus-visible:ring-blue-500"
		case ColorSecondary:
			return "bg-slate-100 text-slate-700 hover:bg-slate-200 active:bg-slate-300 focus-visible:ring-slate-500"
		case ColorSuccess:
			return "bg-green-100 text-green-700 hover:bg-green-200 active:bg-green-300 focus-visible:ring-green-500"
		case ColorWarning:
			return "bg-amber-100 text-amber-700 hover:bg-amber-200 active:bg-amber-300 focus-visible:ring-amber-500"
		case ColorDanger:
			return "bg-red-100 text-red-700 hover:bg-red-200 active:bg-red-300 focus-visible:ring-red-500"
		case ColorInfo:
			return "bg-sky-100 text-sky-700 hover:bg-sky-200 active:bg-sky-300 focus-visible:ring-sky-500"
		default:
			return "bg-gray-100 text-gray-700 hover:bg-gray-200 active:bg-gray-300 focus-visible:ring-gray-500"
		}
	case ButtonOutline:
		switch color {
		case ColorPrimary:
			return "border border-blue-600 text-blue-600 hover:bg-blue-50 active:bg-blue-100 focus-visible:ring-blue-500"
		case ColorSecondary:
			return "border border-slate-400 text-slate-700 hover:bg-slate-50 active:bg-slate-100 focus-visible:ring-slate-500"
		case ColorSuccess:
			return "border border-green-600 text-green-700 hover:bg-green-50 active:bg-green-100 focus-visible:ring-green-500"
		case ColorWarning:
			return "border border-amber-500 text-amber-700 hover:bg-amber-50 active:bg-amber-100 focus-visible:ring-amber-500"
		case ColorDanger:
			return "border border-red-600 text-red-600 hover:bg-red-50 active:bg-red-100 focus-visible:ring-red-500"
		case ColorInfo:
			return "border border-sky-500 text-sky-600 hover:bg-sky-50 active:bg-sky-100 focus-visible:ring-sky-500"
		default:
			return "border border-gray-300 text-gray-700 hover:bg-gray-50 active:bg-gray-100 focus-visible:ring-gray-500"
		}
	case ButtonGhost:
		switch color {
		case ColorPrimary:
			return "text-blue-600 hover:bg-blue-50 active:bg-blue-100 focus-visible:ring-blue-500"
		case ColorSecondary:
			return "text-slate-600 hover:bg-slate-100 active:bg-slate-200 focus-visible:ring-slate-500"
		case ColorSuccess:
			return "text-green-700 hover:bg-green-50 active:bg-green-100 focus-visible:ring-green-500"
		case ColorWarning:
			return "text-amber-700 hover:bg-amber-50 active:bg-amber-100 focus-visible:ring-amber-500"
		case ColorDanger:
			return "text-red-600 hover:bg-red-50 active:bg-red-100 focus-visible:ring-red-500"
		case ColorInfo:
			return "text-sky-600 hover:bg-sky-50 active:bg-sky-100 focus-visible:ring-sky-500"
		default:
			return "text-gray-700 hover:bg-gray-100 active:bg-gray-200 focus-visible:ring-gray-500"
		}
	case ButtonLink:
		switch color {
		case ColorDanger:
			return "text-red-600 underline-offset-4 hover:underline focus-visible:ring-red-500"
		default:
			return "text-blue-600 underline-offset-4 hover:underline focus-visible:ring-blue-500"
		}
	default: // ButtonSolid and anything unrecognized
		switch color {
		case ColorPrimary:
			return "bg-blue-600 text-white hover:bg-blue-700 active:bg-blue-800 focus-visible:ring-blue-500"
		case ColorSecondary:
			return "bg-slate-600 text-white hover:bg-slate-700 active:bg-slate-800 focus-visible:ring-slate-500"
		case ColorSuccess:
			return "bg-green-600 text-white hover:bg-green-700 active:bg-green-800 focus-visible:ring-green-500"
		case ColorWarning:
			return "bg-amber-500 text-white hover:bg-amber-600 active:bg-amber-700 focus-visible:ring-amber-500"
		case ColorDanger:
			return "bg-red-600 text-white hover:bg-red-700 active:bg-red-800 focus-visible:ring-red-500"
		case ColorInfo:
			return "bg-sky-500 text-white hover:bg-sky-600 active:bg-sky-700 focus-visible:ring-sky-500"
		default:
			return "bg-gray-900 text-white hover:bg-gray-800 active:bg-gray-700 focus-visible:ring-gray-500"
		}
	}
}

// Button renders a button, anchor or span per props.As. Active adds
// aria-pressed, Loading adds aria-busy and disables interaction.
func Button(props ButtonProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tag := props.As.tag()
		class := ButtonClasses(props)

		var pairs []string
		if props.As == ElementAnchor {
			pairs = append(pairs, "href", props.Href)
		}
		if props.As == ElementButton && props.Type != "" {
			pairs = append(pairs, "type", props.Type)
		}
		if props.Active {
			pairs = append(pairs, "aria-pressed", "true")
		}
		if props.Loading {
			pairs = append(pairs, "aria-busy", "true")
		}

		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := writeAttr(w, "class", class); err != nil {
			return err
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			if pairs[i+1] == "" {
				continue
			}
			if err := writeAttr(w, pairs[i], pairs[i+1]); err != nil {
				return err
			}
		}
		if props.As == ElementButton {
			if err := writeBoolAttr(w, "disabled", props.Disabled || props.Loading); err != nil {
				return err
			}
		}
		if len(props.Attributes) > 0 {
			if err := templ.RenderAttributes(ctx, w, props.Attributes); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}

		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		return closeTag(w, tag)
	})
}
