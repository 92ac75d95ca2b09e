package bundle

// PutString stores a string value under key.
func (b *Bundle) PutString(key string, value string) { b.put(key, value) }

// GetString returns the string stored under key, or the zero value.
func (b *Bundle) GetString(key string) string { return get[string](b, key) }

// PutInt stores an int value under key.
func (b *Bundle) PutInt(key string, value int) { b.put(key, value) }

// GetInt returns the int stored under key, or the zero value.
func (b *Bundle) GetInt(key string) int { return get[int](b, key) }

// PutLong stores an int64 value under key.
func (b *Bundle) PutLong(key string, value int64) { b.put(key, value) }

// GetLong returns the int64 stored under key, or the zero value.
func (b *Bundle) GetLong(key string) int64 { return get[int64](b, key) }

// PutDouble stores a float64 value under key.
func (b *Bundle) PutDouble(key string, value float64) { b.put(key, value) }

// GetDouble returns the float64 stored under key, or the zero value.
func (b *Bundle) GetDouble(key string) float64 { return get[float64](b, key) }

// PutShort stores an int16 value under key.
func (b *Bundle) PutShort(key string, value int16) { b.put(key, value) }

// GetShort returns the int16 stored under key, or the zero value.
func (b *Bundle) GetShort(key string) int16 { return get[int16](b, key) }

// PutFloat stores a float32 value under key.
func (b *Bundle) PutFloat(key string, value float32) { b.put(key, value) }

// GetFloat returns the float32 stored under key, or the zero value.
func (b *Bundle) GetFloat(key string) float32 { return get[float32](b, key) }

// PutByte stores a byte value under key.
func (b *Bundle) PutByte(key string, value byte) { b.put(key, value) }

// GetByte returns the byte stored under key, or the zero value.
func (b *Bundle) GetByte(key string) byte { return get[byte](b, key) }

// PutBoolean stores a bool value under key.
func (b *Bundle) PutBoolean(key string, value bool) { b.put(key, value) }

// GetBoolean returns the bool stored under key, or the zero value.
func (b *Bundle) GetBoolean(key string) bool { return get[bool](b, key) }

// PutChar stores a rune value under key.
func (b *Bundle) PutChar(key string, value rune) { b.put(key, value) }

// GetChar returns the rune stored under key, or the zero value.
func (b *Bundle) GetChar(key string) rune { return get[rune](b, key) }

// PutCharSequence stores a CharSequence value under key.
func (b *Bundle) PutCharSequence(key string, value CharSequence) { b.put(key, value) }

// GetCharSequence returns the CharSequence stored under key, or the zero value.
func (b *Bundle) GetCharSequence(key string) CharSequence { return get[CharSequence](b, key) }

// PutBundle stores a *Bundle value under key.
func (b *Bundle) PutBundle(key string, value *Bundle) { b.put(key, value) }

// GetBundle returns the *Bundle stored under key, or the zero value.
func (b *Bundle) GetBundle(key string) *Bundle { return get[*Bundle](b, key) }

// PutSize stores a Size value under key.
func (b *Bundle) PutSize(key string, value Size) { b.put(key, value) }

// GetSize returns the Size stored under key, or the zero value.
func (b *Bundle) GetSize(key string) Size { return get[Size](b, key) }

func (b *Bundle) PutStringArray(key string, value []string) { putSlice(b, key, value) }

func (b *Bundle) GetStringArray(key string) []string { return get[[]string](b, key) }

func (b *Bundle) PutIntArray(key string, value []int) { putSlice(b, key, value) }

func (b *Bundle) GetIntArray(key string) []int { return get[[]int](b, key) }

func (b *Bundle) PutLongArray(key string, value []int64) { putSlice(b, key, value) }

func (b *Bundle) GetLongArray(key string) []int64 { return get[[]int64](b, key) }

func (b *Bundle) PutDoubleArray(key string, value []float64) { putSlice(b, key, value) }

func (b *Bundle) GetDoubleArray(key string) []float64 { return get[[]float64](b, key) }

func (b *Bundle) PutShortArray(key string, value []int16) { putSlice(b, key, value) }

func (b *Bundle) GetShortArray(key string) []int16 { return get[[]int16](b, key) }

func (b *Bundle) PutFloatArray(key string, value []float32) { putSlice(b, key, value) }

func (b *Bundle) GetFloatArray(key string) []float32 { return get[[]float32](b, key) }

func (b *Bundle) PutByteArray(key string, value []byte) { putSlice(b, key, value) }

func (b *Bundle) GetByteArray(key string) []byte { return get[[]byte](b, key) }

func (b *Bundle) PutBooleanArray(key string, value []bool) { putSlice(b, key, value) }

func (b *Bundle) GetBooleanArray(key string) []bool { return get[[]bool](b, key) }

func (b *Bundle) PutCharArray(key string, value []rune) { putSlice(b, key, value) }

func (b *Bundle) GetCharArray(key string) []rune { return get[[]rune](b, key) }

func (b *Bundle) PutCharSequenceArray(key string, value []CharSequence) { putSlice(b, key, value) }

func (b *Bundle) GetCharSequenceArray(key string) []CharSequence { return get[[]CharSequence](b, key) }

func (b *Bundle) PutBundleArray(key string, value []*Bundle) { putSlice(b, key, value) }

func (b *Bundle) GetBundleArray(key string) []*Bundle { return get[[]*Bundle](b, key) }

func (b *Bundle) PutSizeArray(key string, value []Size) { putSlice(b, key, value) }

func (b *Bundle) GetSizeArray(key string) []Size { return get[[]Size](b, key) }

// PutStringArrayList stores a list of string under key.
func (b *Bundle) PutStringArrayList(key string, value []string) { putSlice(b, key, value) }

// GetStringArrayList returns the list of string stored under key.
func (b *Bundle) GetStringArrayList(key string) []string { return get[[]string](b, key) }

// PutIntegerArrayList stores a list of int under key.
func (b *Bundle) PutIntegerArrayList(key string, value []int) { putSlice(b, key, value) }

// GetIntegerArrayList returns the list of int stored under key.
func (b *Bundle) GetIntegerArrayList(key string) []int { return get[[]int](b, key) }

// PutCharSequenceArrayList stores a list of CharSequence under key.
func (b *Bundle) PutCharSequenceArrayList(key string, value []CharSequence) { putSlice(b, key, value) }

// GetCharSequenceArrayList returns the list of CharSequence stored under key.
func (b *Bundle) GetCharSequenceArrayList(key string) []CharSequence {
	return get[[]CharSequence](b, key)
}
