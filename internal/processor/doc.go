// Package processor runs the whole pipeline over a set of package patterns:
// load, scan for directives, build each class model, resolve its fields and
// render its companion file.
//
// A failure in one declaring class never stops the others. Every failure,
// including a recovered panic, becomes an error Diagnostic attributed to the
// class.
package processor
