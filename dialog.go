package uikit

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AlertDialogProps configures a modal alert dialog. The dialog has no state
// machine beyond Open; focus management is the FocusTrap's job on the host
// side.
type AlertDialogProps struct {
	Open          bool
	ID            string
	Title         string
	Description   string
	CloseOnEscape bool
	Class         string
	Attributes    templ.Attributes
}

// DialogPanelClasses returns the classes for the dialog panel.
func DialogPanelClasses(props AlertDialogProps) string {
	return Resolve(
		"fixed left-1/2 top-1/2 z-50 grid w-full max-w-lg -translate-x-1/2 -translate-y-1/2 gap-4 border bg-white p-6 shadow-lg sm:rounded-lg",
		props.Class,
	)
}

// DialogOverlayClasses returns the classes for the backdrop.
func DialogOverlayClasses() string {
	return "fixed inset-0 z-50 bg-black/80"
}

// AlertDialog renders the overlay and panel when Open, nothing otherwise.
// data-state and data-close-on-escape let the host's focus trap and key
// wiring find the dialog without extra plumbing.
func AlertDialog(props AlertDialogProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !props.Open {
			return nil
		}

		if err := openTag(ctx, w, "div", DialogOverlayClasses(), nil,
			"data-state", "open", "aria-hidden", "true"); err != nil {
			return err
		}
		if err := closeTag(w, "div"); err != nil {
			return err
		}

		panelClass := DialogPanelClasses(props)
		if ThemeFromContext(ctx) == ThemeDark {
			panelClass = Resolve(panelClass, "border-gray-800 bg-gray-900 text-gray-100")
		}

		pairs := []string{
			"id", props.ID,
			"role", "alertdialog",
			"aria-modal", "true",
			"data-state", "open",
			"tabindex", "-1",
		}
		if props.CloseOnEscape {
			pairs = append(pairs, "data-close-on-escape", "true")
		}
		if props.Title != "" {
			pairs = append(pairs, "aria-label", props.Title)
		}
		if err := openTag(ctx, w, "div", panelClass, props.Attributes, pairs...); err != nil {
			return err
		}

		if props.Title != "" {
			if err := openTag(ctx, w, "h2", "text-lg font-semibold", nil); err != nil {
				return err
			}
			if _, err := io.WriteString(w, templ.EscapeString(props.Title)); err != nil {
				return err
			}
			if err := closeTag(w, "h2"); err != nil {
				return err
			}
		}
		if props.Description != "" {
			if err := openTag(ctx, w, "p", "text-sm text-gray-500", nil); err != nil {
				return err
			}
			if _, err := io.WriteString(w, templ.EscapeString(props.Description)); err != nil {
				return err
			}
			if err := closeTag(w, "p"); err != nil {
				return err
			}
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		return closeTag(w, "div")
	})
}
