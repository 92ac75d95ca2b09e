package bundle

// Marshaler supplies custom put/get logic for one field type. Implementations
// must be exported and constructible without arguments, either through a
// New<Type>() function or as a struct literal.
type Marshaler[T any] interface {
	Put(key string, value T, b *Bundle)
	Get(key string, b *Bundle) T
}

// EmptyMarshaler is the sentinel meaning "no custom marshaling".
type EmptyMarshaler struct{}

func (EmptyMarshaler) Put(string, any, *Bundle) {}

func (EmptyMarshaler) Get(string, *Bundle) any { return nil }
