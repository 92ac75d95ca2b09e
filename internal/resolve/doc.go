// Package resolve maps a field type to the container operation that stores
// and reads it.
//
// Resolution is independent of go/types: the engine sees a field through the
// Type interface and asks a Checker whether it can be stored as one of the
// capability shapes. GoChecker and GoType adapt go/types values.
//
// Rules are tried in a fixed order and the first match wins:
//
//  1. exact raw type name from the scalar table, with the "Array" suffix for
//     unnamed slices
//  2. typed lists: StringArrayList, IntegerArrayList, CharSequenceArrayList
//  3. Parcelable
//  4. ParcelableArrayList
//  5. SparseParcelableArray
//  6. Serializable, which requires a cast on read and emits a warning
//
// Anything else is an UnresolvableType error.
package resolve
