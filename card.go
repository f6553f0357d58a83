package uikit

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CardProps configures a Card and its sections. Every section shares the
// same shape: a Class override merged last plus an Attributes escape hatch.
type CardProps struct {
	Class      string
	Attributes templ.Attributes
}

func cardSection(tag, base string, props CardProps, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := Resolve(base, props.Class)
		if err := openTag(ctx, w, tag, class, props.Attributes); err != nil {
			return err
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		return closeTag(w, tag)
	})
}

// Card renders the container. The dark theme is taken from the render
// context, not from ambient state.
func Card(props CardProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := "rounded-lg border border-gray-200 bg-white text-gray-900 shadow-sm"
		if ThemeFromContext(ctx) == ThemeDark {
			base = "rounded-lg border border-gray-800 bg-gray-900 text-gray-100 shadow-sm"
		}
		class := Resolve(base, props.Class)
		if err := openTag(ctx, w, "div", class, props.Attributes); err != nil {
			return err
		}
		if err := renderChildren(ctx, w, children); err != nil {
			return err
		}
		return closeTag(w, "div")
	})
}

func CardHeader(props CardProps, children ...templ.Component) templ.Component {
	return cardSection("div", "flex flex-col space-y-1.5 p-6", props, children)
}

func CardTitle(props CardProps, children ...templ.Component) templ.Component {
	return cardSection("h3", "text-2xl font-semibold leading-none tracking-tight", props, children)
}

func CardDescription(props CardProps, children ...templ.Component) templ.Component {
	return cardSection("p", "text-sm text-gray-500", props, children)
}

func CardContent(props CardProps, children ...templ.Component) templ.Component {
	return cardSection("div", "p-6 pt-0", props, children)
}

func CardFooter(props CardProps, children ...templ.Component) templ.Component {
	return cardSection("div", "flex items-center p-6 pt-0", props, children)
}
