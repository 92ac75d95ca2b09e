package plan

import (
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/model"
	"github.com/rsinukov/activityresult/internal/resolve"
)

// Strategy describes how a field is stored in and read from the container.
type Strategy int

const (
	// StrategyAccessor uses the container's Put<Op>/Get<Op> methods.
	StrategyAccessor Strategy = iota
	// StrategyGeneric uses a generic package function, bundle.Get<Op>[T].
	StrategyGeneric
	// StrategyCast reads through an interface accessor and type-asserts.
	StrategyCast
	// StrategyMarshaler delegates to a custom marshaler.
	StrategyMarshaler
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAccessor:
		return "accessor"
	case StrategyGeneric:
		return "generic"
	case StrategyCast:
		return "cast"
	case StrategyMarshaler:
		return "marshaler"
	default:
		return "unknown"
	}
}

// ResolvedField is one field with its storage strategy.
type ResolvedField struct {
	*model.FieldDescriptor
	// Resolution is zero for marshaled fields.
	Resolution resolve.Resolution
	Strategy   Strategy
}

// Op returns the container operation suffix, empty for marshaled fields.
func (f ResolvedField) Op() string {
	return f.Resolution.Op
}

// ResolvedClass is a declaring class whose fields all resolved.
type ResolvedClass struct {
	Class *model.DeclaringClass
	// Fields follows Class.Fields(): optional fields first, then required.
	Fields []ResolvedField
	// Diagnostics holds warnings raised while resolving.
	Diagnostics diagnostic.Diagnostics
}

// Required returns the resolved required fields ordered by name.
func (c *ResolvedClass) Required() []ResolvedField {
	return c.filter(true)
}

// Optional returns the resolved optional fields ordered by name.
func (c *ResolvedClass) Optional() []ResolvedField {
	return c.filter(false)
}

func (c *ResolvedClass) filter(required bool) []ResolvedField {
	var out []ResolvedField

	for _, f := range c.Fields {
		if f.Required == required {
			out = append(out, f)
		}
	}

	return out
}

// genericOps are read through generic functions rather than methods, since a
// method cannot carry the element type parameter.
var genericOps = map[resolve.Rule]bool{
	resolve.RuleParcelable:            true,
	resolve.RuleParcelableArrayList:   true,
	resolve.RuleSparseParcelableArray: true,
}

func strategyOf(res resolve.Resolution) Strategy {
	switch {
	case res.NeedsCast:
		return StrategyCast
	case genericOps[res.Rule]:
		return StrategyGeneric
	default:
		return StrategyAccessor
	}
}
