// Package uikit provides utility-class composition and a small set of
// presentational components for Go/templ projects.
//
// # Class composition
//
// Classes flattens heterogeneous inputs into a class string, and Merge
// resolves conflicts between utility classes that style the same property:
//
//	uikit.Classes("p-2", []any{"bg-white", nil}, map[string]bool{"shadow": true})
//	// "p-2 bg-white shadow"
//
//	uikit.Merge("p-2 p-4 text-left")
//	// "p-4 text-left"
//
// Resolve combines both steps and is what every component uses internally:
//
//	uikit.Resolve("rounded-md p-2", props.Class)
//
// # Components
//
// Button, ButtonGroup, Card, Alert and AlertDialog are class builders plus
// templ.Component renderers. Each takes a props struct whose Class field is
// merged last, so caller classes win conflicts against component defaults:
//
//	uikit.Button(uikit.ButtonProps{Variant: uikit.ButtonSolid, Color: uikit.ColorPrimary},
//		uikit.Text("Save"))
//
// # Linting
//
// The lint subpackage scans templ/Go/HTML sources for class lists whose
// utility tokens conflict. See the uikit CLI under cmd/uikit.
package uikit
