package resolve

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule identifies which resolution step produced an operation.
type Rule int

const (
	_ Rule = iota // zero value is "no rule"

	RuleTable
	RuleStringArrayList
	RuleIntegerArrayList
	RuleCharSequenceArrayList
	RuleParcelable
	RuleParcelableArrayList
	RuleSparseParcelableArray
	RuleSerializable
)

// Shape is a capability the Checker tests a type against.
type Shape int

const (
	// StringList is an ordered list of strings.
	StringList Shape = iota
	// IntegerList is an ordered list of ints.
	IntegerList
	// CharSequenceList is an ordered list of bundle.CharSequence.
	CharSequenceList
	// Parcelable implements bundle.Parcelable.
	Parcelable
	// ParcelableList is a slice whose element implements bundle.Parcelable.
	ParcelableList
	// SparseParcelableArray is a map[int]E whose E implements bundle.Parcelable.
	SparseParcelableArray
	// Serializable implements bundle.Serializable.
	Serializable
)

var shapeNames = [...]string{
	StringList:            "StringList",
	IntegerList:           "IntegerList",
	CharSequenceList:      "CharSequenceList",
	Parcelable:            "Parcelable",
	ParcelableList:        "ParcelableList",
	SparseParcelableArray: "SparseParcelableArray",
	Serializable:          "Serializable",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "Shape(?)"
	}

	return shapeNames[s]
}

// capability is one shape-driven step of the precedence order.
type capability struct {
	shape Shape
	rule  Rule
	op    string
}

// capabilities run after the table lookup, in this order.
var capabilities = [...]capability{
	{StringList, RuleStringArrayList, "StringArrayList"},
	{IntegerList, RuleIntegerArrayList, "IntegerArrayList"},
	{CharSequenceList, RuleCharSequenceArrayList, "CharSequenceArrayList"},
	{Parcelable, RuleParcelable, "Parcelable"},
	{ParcelableList, RuleParcelableArrayList, "ParcelableArrayList"},
	{SparseParcelableArray, RuleSparseParcelableArray, "SparseParcelableArray"},
	{Serializable, RuleSerializable, "Serializable"},
}
