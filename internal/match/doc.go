// Package match provides name normalization and Levenshtein similarity used
// to suggest close spellings when a directive names something that does not
// exist.
//
// Key functions:
//   - NormalizeIdent: reduces a type or package reference to a comparable name
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate above a similarity threshold
package match
