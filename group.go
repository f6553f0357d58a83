package uikit

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// GroupPosition classifies an element within a row of visually grouped
// siblings.
type GroupPosition int

const (
	GroupSingle GroupPosition = iota
	GroupFirst
	GroupMiddle
	GroupLast
)

func (p GroupPosition) String() string {
	switch p {
	case GroupFirst:
		return "first"
	case GroupMiddle:
		return "middle"
	case GroupLast:
		return "last"
	default:
		return "single"
	}
}

// GroupPositions returns the position of each of n grouped siblings:
// [single] for one element, [first, middle..., last] otherwise. n <= 0
// yields nil. Derived state only; recompute whenever the child list changes.
func GroupPositions(n int) []GroupPosition {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []GroupPosition{GroupSingle}
	}
	positions := make([]GroupPosition, n)
	positions[0] = GroupFirst
	for i := 1; i < n-1; i++ {
		positions[i] = GroupMiddle
	}
	positions[n-1] = GroupLast
	return positions
}

// GroupItemClasses returns the adjacency classes for one grouped element:
// inner corners lose their rounding and interior elements pull left by one
// pixel so shared borders do not double up.
func GroupItemClasses(pos GroupPosition) string {
	switch pos {
	case GroupFirst:
		return "rounded-r-none"
	case GroupMiddle:
		return "rounded-none -ml-px"
	case GroupLast:
		return "rounded-l-none -ml-px"
	default: // GroupSingle keeps its full rounding
		return ""
	}
}

// ButtonGroupProps configures a ButtonGroup container.
type ButtonGroupProps struct {
	Class      string
	Attributes templ.Attributes
}

// GroupedButton pairs ButtonProps with its rendered label.
type GroupedButton struct {
	Props ButtonProps
	Child templ.Component
}

// ButtonGroup renders its items as one visually joined row. Each item keeps
// its own props; the group only appends position classes, so the item's
// Class still wins any other conflict.
func ButtonGroup(props ButtonGroupProps, items ...GroupedButton) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := Resolve("inline-flex items-center", props.Class)
		if err := openTag(ctx, w, "div", class, props.Attributes, "role", "group"); err != nil {
			return err
		}
		positions := GroupPositions(len(items))
		for i, item := range items {
			item.Props.Class = Classes(item.Props.Class, GroupItemClasses(positions[i]))
			if err := Button(item.Props, item.Child).Render(ctx, w); err != nil {
				return err
			}
		}
		return closeTag(w, "div")
	})
}
