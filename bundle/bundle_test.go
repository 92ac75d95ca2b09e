package bundle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

type point struct {
	X, Y int
}

func (p *point) MarshalParcel() ([]byte, error) { return []byte{byte(p.X), byte(p.Y)}, nil }

func TestBundle_ScalarRoundTrip(t *testing.T) {
	b := New()
	nested := New()
	nested.PutString("inner", "x")

	b.PutString("s", "hello")
	b.PutInt("i", 42)
	b.PutLong("l", int64(1)<<40)
	b.PutDouble("d", 3.25)
	b.PutShort("sh", -7)
	b.PutFloat("f", 1.5)
	b.PutByte("by", 0xfe)
	b.PutBoolean("bo", true)
	b.PutChar("c", 'ж')
	b.PutCharSequence("cs", label("seq"))
	b.PutBundle("b", nested)
	b.PutSize("sz", Size{Width: 3, Height: 4})

	assert.Equal(t, "hello", b.GetString("s"))
	assert.Equal(t, 42, b.GetInt("i"))
	assert.Equal(t, int64(1)<<40, b.GetLong("l"))
	assert.InDelta(t, 3.25, b.GetDouble("d"), 0)
	assert.Equal(t, int16(-7), b.GetShort("sh"))
	assert.InDelta(t, float32(1.5), b.GetFloat("f"), 0)
	assert.Equal(t, byte(0xfe), b.GetByte("by"))
	assert.True(t, b.GetBoolean("bo"))
	assert.Equal(t, 'ж', b.GetChar("c"))
	assert.Equal(t, label("seq"), b.GetCharSequence("cs"))
	assert.Same(t, nested, b.GetBundle("b"))
	assert.Equal(t, Size{Width: 3, Height: 4}, b.GetSize("sz"))
	assert.Equal(t, 12, b.Len())
}

func TestBundle_ArrayRoundTrip(t *testing.T) {
	b := New()

	ids := []int{1, 2, 3}
	b.PutIntArray("ids", ids)
	b.PutStringArray("names", []string{"a", "b"})
	b.PutByteArray("raw", []byte("xyz"))
	b.PutCharSequenceArray("labels", []CharSequence{label("a")})

	assert.Equal(t, []int{1, 2, 3}, b.GetIntArray("ids"))
	assert.Equal(t, []string{"a", "b"}, b.GetStringArray("names"))
	assert.Equal(t, []byte("xyz"), b.GetByteArray("raw"))
	assert.Equal(t, []CharSequence{label("a")}, b.GetCharSequenceArray("labels"))

	// the stored slice is a copy
	ids[0] = 100
	assert.Equal(t, 1, b.GetIntArray("ids")[0])
}

func TestBundle_ListRoundTrip(t *testing.T) {
	type tags []string

	b := New()
	b.PutStringArrayList("tags", tags{"x", "y"})
	b.PutIntegerArrayList("nums", []int{4, 5})
	b.PutCharSequenceArrayList("seqs", []CharSequence{label("q")})

	var got tags = b.GetStringArrayList("tags")
	assert.Equal(t, tags{"x", "y"}, got)
	assert.Equal(t, []int{4, 5}, b.GetIntegerArrayList("nums"))
	assert.Equal(t, []CharSequence{label("q")}, b.GetCharSequenceArrayList("seqs"))
}

func TestBundle_Capabilities(t *testing.T) {
	b := New()
	p := &point{X: 1, Y: 2}
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	b.PutParcelable("p", p)
	b.PutSerializable("when", when)
	PutParcelableArrayList(b, "ps", []*point{p})
	PutSparseParcelableArray(b, "sparse", map[int]*point{7: p})

	assert.Same(t, p, GetParcelable[*point](b, "p"))

	got, ok := b.GetSerializable("when").(time.Time)
	require.True(t, ok)
	assert.True(t, when.Equal(got))

	assert.Equal(t, []*point{p}, GetParcelableArrayList[*point](b, "ps"))
	assert.Equal(t, map[int]*point{7: p}, GetSparseParcelableArray[*point](b, "sparse"))
}

func TestBundle_WrongTypeReturnsZero(t *testing.T) {
	b := New()
	b.PutString("k", "v")

	assert.Equal(t, 0, b.GetInt("k"))
	assert.Nil(t, b.GetIntArray("k"))
	assert.Nil(t, b.GetSerializable("k"))
	assert.Nil(t, GetParcelable[*point](b, "missing"))
}

func TestBundle_NilReceiver(t *testing.T) {
	var b *Bundle

	assert.Equal(t, 0, b.Len())
	assert.False(t, b.ContainsKey("x"))
	assert.Equal(t, "", b.GetString("x"))
	assert.Empty(t, b.Keys())
}

func TestBundle_Require(t *testing.T) {
	b := New()
	b.PutInt("a", 1)

	require.NoError(t, b.Require("a"))

	err := b.Require("a", "b", "c")
	require.Error(t, err)

	var missing *MissingKeysError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"b", "c"}, missing.Keys)
	assert.Contains(t, err.Error(), "b, c")
}

func TestBundle_KeysAndRemove(t *testing.T) {
	b := New()
	b.PutInt("z", 1)
	b.PutInt("a", 2)

	assert.Equal(t, []string{"a", "z"}, b.Keys())
	assert.Equal(t, "Bundle[a=int, z=int]", b.String())

	b.Remove("z")
	assert.Equal(t, []string{"a"}, b.Keys())
}

func TestIntent_Extras(t *testing.T) {
	first := New()
	first.PutInt("a", 1)

	second := New()
	second.PutInt("a", 2)
	second.PutString("b", "x")

	intent := NewIntent().SetAction("done")
	assert.Nil(t, intent.Extras())

	intent.PutExtras(first).PutExtras(second)

	assert.Equal(t, "done", intent.Action())
	assert.Equal(t, 2, intent.Extras().GetInt("a"))
	assert.True(t, intent.HasExtra("b"))
	assert.NotSame(t, second, intent.Extras())

	var nilIntent *Intent
	assert.Nil(t, nilIntent.Extras())
	assert.False(t, nilIntent.HasExtra("a"))
}

type pointMarshaler struct{}

func (pointMarshaler) Put(key string, value point, b *Bundle) {
	b.PutIntArray(key, []int{value.X, value.Y})
}

func (pointMarshaler) Get(key string, b *Bundle) point {
	xy := b.GetIntArray(key)
	if len(xy) != 2 {
		return point{}
	}

	return point{X: xy[0], Y: xy[1]}
}

func TestMarshaler_Contract(t *testing.T) {
	var m Marshaler[point] = pointMarshaler{}

	b := New()
	m.Put("p", point{X: 3, Y: 9}, b)

	assert.Equal(t, point{X: 3, Y: 9}, m.Get("p", b))
}
