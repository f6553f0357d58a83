package uikit

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ElementKind is the tag a polymorphic component renders as. The kind is a
// closed set rather than a free-form tag name so each component can state
// which kinds it supports.
type ElementKind int

const (
	ElementButton ElementKind = iota
	ElementAnchor
	ElementSpan
)

func (k ElementKind) tag() string {
	switch k {
	case ElementAnchor:
		return "a"
	case ElementSpan:
		return "span"
	default:
		return "button"
	}
}

// Text returns a component that renders s, HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func writeAttr(w io.Writer, name, value string) error {
	_, err := fmt.Fprintf(w, ` %s="%s"`, name, templ.EscapeString(value))
	return err
}

func writeBoolAttr(w io.Writer, name string, on bool) error {
	if !on {
		return nil
	}
	_, err := fmt.Fprintf(w, " %s", name)
	return err
}

// openTag writes <tag class="..." attrs...>. Extra attributes come last so
// templ.Attributes remains the escape hatch the caller controls.
func openTag(ctx context.Context, w io.Writer, tag, class string, attrs templ.Attributes, pairs ...string) error {
	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if class != "" {
		if err := writeAttr(w, "class", class); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if err := writeAttr(w, pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	if len(attrs) > 0 {
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}

func closeTag(w io.Writer, tag string) error {
	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

func renderChildren(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
