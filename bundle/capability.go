package bundle

import "encoding"

// Parcelable is implemented by values that can flatten themselves for
// transport. Prefer it over Serializable: reads need no type assertion.
type Parcelable interface {
	MarshalParcel() ([]byte, error)
}

// Serializable is the opaque fallback capability.
type Serializable interface {
	encoding.BinaryMarshaler
}

// CharSequence is any readable sequence of characters.
type CharSequence interface {
	String() string
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// PutParcelable stores a Parcelable under key.
func (b *Bundle) PutParcelable(key string, value Parcelable) { b.put(key, value) }

// GetParcelable returns the Parcelable of type T stored under key.
func GetParcelable[T Parcelable](b *Bundle, key string) T {
	return get[T](b, key)
}

// PutSerializable stores a Serializable under key.
func (b *Bundle) PutSerializable(key string, value Serializable) { b.put(key, value) }

// GetSerializable returns the value stored under key. Callers assert the
// concrete type they wrote.
func (b *Bundle) GetSerializable(key string) Serializable {
	return get[Serializable](b, key)
}

// PutParcelableArrayList stores a list of Parcelable values under key.
func PutParcelableArrayList[S ~[]E, E Parcelable](b *Bundle, key string, list S) {
	putSlice(b, key, list)
}

// GetParcelableArrayList returns the list stored under key.
func GetParcelableArrayList[E Parcelable](b *Bundle, key string) []E {
	return get[[]E](b, key)
}

// PutSparseParcelableArray stores an int-keyed collection of Parcelable values.
func PutSparseParcelableArray[M ~map[int]E, E Parcelable](b *Bundle, key string, sparse M) {
	if sparse == nil {
		b.put(key, map[int]E(nil))
		return
	}

	cp := make(map[int]E, len(sparse))
	for k, v := range sparse {
		cp[k] = v
	}

	b.put(key, cp)
}

// GetSparseParcelableArray returns the int-keyed collection stored under key.
func GetSparseParcelableArray[E Parcelable](b *Bundle, key string) map[int]E {
	return get[map[int]E](b, key)
}
