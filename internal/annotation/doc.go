// Package annotation parses result directives attached to Go type
// declarations.
//
// Two forms exist, and a type may carry only one of them, once:
//
//	//activityresult:result {name: userId, type: int}
//	//activityresult:results [{name: userId, type: int}, {name: tags, type: "[]string", required: false}]
//
// The payload is YAML. Entry keys are name, type, required (default true)
// and marshaler. Type expressions containing YAML indicators such as
// brackets, commas or a leading '*' must be quoted.
package annotation
