// Package plan resolves every field of a declaring class to the code that
// stores and reads it, producing the ResolvedClass consumed by generation.
//
// Resolution pipeline per class:
//  1. Fields with a custom marshaler bypass the container table
//  2. Every other field goes through resolve.Resolve
//  3. Discouraged resolutions (Serializable) become warnings
//  4. The first unresolvable field aborts the class
package plan
