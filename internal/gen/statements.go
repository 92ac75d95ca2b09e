package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/rsinukov/activityresult/bundle"
	"github.com/rsinukov/activityresult/internal/plan"
	"github.com/rsinukov/activityresult/internal/resolve"
)

// Local identifiers used inside generated function bodies. Field values are
// always reached through the receiver, so they cannot collide with field names.
const (
	idExtras  = "extras"
	idIntent  = "intent"
	idResult  = "r"
	idValue   = "v"
	idOK      = "ok"
	idMarshal = "m"
	idBuilder = "b"
	idErr     = "err"
)

// member returns r.<backing field>.
func member(f plan.ResolvedField) *jen.Statement {
	return jen.Id(idResult).Dot(f.Member())
}

// writeStmt stores the field into extras.
func writeStmt(f plan.ResolvedField) jen.Code {
	key := jen.Lit(f.Name)

	switch f.Strategy {
	case plan.StrategyMarshaler:
		return jen.Block(
			marshalerInit(f),
			jen.Id(idMarshal).Dot("Put").Call(key, member(f), jen.Id(idExtras)),
		)

	case plan.StrategyGeneric:
		switch f.Resolution.Rule {
		case resolve.RuleParcelable:
			return jen.Id(idExtras).Dot("PutParcelable").Call(key, member(f))
		default:
			return jen.Qual(bundle.ImportPath, "Put"+f.Op()).Call(jen.Id(idExtras), key, member(f))
		}

	default:
		return jen.Id(idExtras).Dot("Put"+f.Op()).Call(key, member(f))
	}
}

// readStmt loads the field from extras into r.
func readStmt(f plan.ResolvedField) jen.Code {
	key := jen.Lit(f.Name)

	switch f.Strategy {
	case plan.StrategyMarshaler:
		return jen.Block(
			marshalerInit(f),
			member(f).Op("=").Id(idMarshal).Dot("Get").Call(key, jen.Id(idExtras)),
		)

	case plan.StrategyCast:
		return jen.If(
			jen.List(jen.Id(idValue), jen.Id(idOK)).Op(":=").
				Id(idExtras).Dot("Get"+f.Op()).Call(key).Assert(typeCode(f.Type)),
			jen.Id(idOK),
		).Block(
			member(f).Op("=").Id(idValue),
		)

	case plan.StrategyGeneric:
		typeArg := f.Type
		if f.Resolution.Rule != resolve.RuleParcelable {
			typeArg = elemType(f.Type)
		}

		return member(f).Op("=").Qual(bundle.ImportPath, "Get"+f.Op()).
			Types(typeCode(typeArg)).Call(jen.Id(idExtras), key)

	default:
		return member(f).Op("=").Id(idExtras).Dot("Get" + f.Op()).Call(key)
	}
}

// marshalerInit declares m, built by the marshaler's constructor or as a
// zero composite literal.
func marshalerInit(f plan.ResolvedField) jen.Code {
	m := f.Marshaler
	if m == nil {
		panic(fmt.Sprintf("gen: field %s has no marshaler", f.Name))
	}

	obj := m.Type.Obj()

	if m.Constructor != nil {
		return jen.Id(idMarshal).Op(":=").Qual(obj.Pkg().Path(), m.Constructor.Name()).Call()
	}

	return jen.Id(idMarshal).Op(":=").Add(objectCode(obj)).Values()
}
