// Package analyze provides package loading, directive discovery and type
// expression resolution.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find every
// type declaration carrying a result directive, and to turn the type
// expressions written inside directives into go/types types.
//
// Key types:
//   - Program: loaded packages plus a name/path index of the whole import graph
//   - Declaration: one annotated type with its file scope
//   - TypeResolver: evaluates directive type expressions
package analyze
