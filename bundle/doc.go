// Package bundle is the runtime container used by generated result types.
//
// A Bundle is a typed key/value store. An Intent carries a Bundle of extras
// across a component boundary. Generated code marshals each declared result
// field into the Bundle with the typed Put/Get pair chosen at generation time.
//
// Capabilities:
//   - Parcelable: values that flatten themselves for transport
//   - Serializable: opaque fallback, read back through a type assertion
//   - CharSequence: anything with a String method
//   - Marshaler: user supplied put/get logic for a single field type
package bundle
