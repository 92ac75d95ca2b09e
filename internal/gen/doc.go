// Package gen emits the <Name>Result companion file of each resolved class.
//
// Generation uses github.com/dave/jennifer/jen; output is deterministic for
// a given ResolvedClass. Every generated file contains:
//   - the result type with one unexported backing field per declared field
//   - one getter per field, named after the capitalized field name
//   - an unexported no-argument constructor
//   - <Name>ResultFromIntent, reading every field from the intent extras
//   - (*<Name>Result).Intent, writing every field into a new intent
//   - <Name>ResultBuilder, taking required fields positionally with one
//     fluent setter per optional field
//
// Statements follow the field order of the class: optional fields first,
// then required fields, each set sorted by name.
package gen
