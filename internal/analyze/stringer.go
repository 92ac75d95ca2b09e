package analyze

import (
	"go/types"
)

// TypeString returns a readable representation of t, qualifying types from
// packages other than from with their package name.
// Examples:
//   - "int"
//   - "[]string"
//   - "*geo.Point" (from a package other than geo)
//   - "Point" (from geo itself)
func TypeString(t types.Type, from *types.Package) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, func(p *types.Package) string {
		if from != nil && p.Path() == from.Path() {
			return ""
		}

		return p.Name()
	})
}

// QualifiedTypeString returns t with every package qualified by its full
// import path, e.g. "*example.com/app/geo.Point".
func QualifiedTypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, nil)
}
