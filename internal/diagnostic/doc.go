// Package diagnostic provides structured errors and warnings for the result
// generator.
//
// Every problem is attributed to a declaring type and, where relevant, to a
// single declared field. Problems are recoverable per declaring type: the
// processor reports them and moves on to the next type.
//
// Codes:
//   - InvalidAnnotation: conflicting or malformed directives
//   - DuplicateFieldName: two fields share a name
//   - InvalidMarshaler: marshaler type is not usable
//   - UnresolvableType: no bundle operation matches a field type
//   - InternalError: unexpected fault, reported with a stack trace
package diagnostic
