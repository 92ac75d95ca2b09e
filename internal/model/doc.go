// Package model holds the validated declaration model of one annotated type:
// its required and optional result fields.
package model
