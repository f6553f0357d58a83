package uikit

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AlertVariant is the severity styling of an inline alert.
type AlertVariant string

const (
	AlertInfo    AlertVariant = "info"
	AlertSuccess AlertVariant = "success"
	AlertWarning AlertVariant = "warning"
	AlertDanger  AlertVariant = "danger"
)

// AlertProps configures an inline Alert.
type AlertProps struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	Class       string
	Attributes  templ.Attributes
}

// AlertClasses returns the container classes for an alert variant.
// Unrecognized variants fall back to info.
func AlertClasses(props AlertProps) string {
	return Resolve(
		"relative w-full rounded-lg border p-4 text-sm",
		alertVariantClasses(props.Variant),
		KV("pr-10", props.Dismissible),
		props.Class,
	)
}

func alertVariantClasses(variant AlertVariant) string {
	switch variant {
	case AlertSuccess:
		return "bg-green-50 border-green-200 text-green-800"
	case AlertWarning:
		return "bg-amber-50 border-amber-200 text-amber-800"
	case AlertDanger:
		return "bg-red-50 border-red-200 text-red-800"
	default: // AlertInfo and anything unrecognized
		return "bg-sky-50 border-sky-200 text-sky-800"
	}
}

// AlertIconClasses returns the icon color classes for an alert variant.
func AlertIconClasses(variant AlertVariant) string {
	switch variant {
	case AlertSuccess:
		return "text-green-400"
	case AlertWarning:
		return "text-amber-400"
	case AlertDanger:
		return "text-red-400"
	default:
		return "text-sky-400"
	}
}

// Alert renders an inline alert with role="alert". Dismissible adds a close
// button carrying data-dismiss so the host page can wire removal.
func Alert(props AlertProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, "div", AlertClasses(props), props.Attributes, "role", "alert"); err != nil {
			return err
		}
		if props.Title != "" {
			if err := openTag(ctx, w, "h5", "mb-1 font-medium leading-none tracking-tight", nil); err != nil {
				return err
			}
			if _, err := io.WriteString(w, templ.EscapeString(props.Title)); err != nil {
				return err
			}
			if err := closeTag(w, "h5"); err != nil {
				return err
			}
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		if props.Dismissible {
			closeClass := Resolve("absolute right-2 top-2 rounded-md p-1 hover:bg-black/5", AlertIconClasses(props.Variant))
			if err := openTag(ctx, w, "button", closeClass, nil,
				"type", "button", "aria-label", "Dismiss", "data-dismiss", "alert"); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "&times;"); err != nil {
				return err
			}
			if err := closeTag(w, "button"); err != nil {
				return err
			}
		}
		return closeTag(w, "div")
	})
}
