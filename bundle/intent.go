package bundle

// Intent carries a Bundle of extras across a component boundary.
type Intent struct {
	action string
	extras *Bundle
}

// NewIntent returns an Intent with no extras.
func NewIntent() *Intent {
	return &Intent{}
}

// SetAction sets the intent action and returns the intent.
func (i *Intent) SetAction(action string) *Intent {
	i.action = action
	return i
}

// Action returns the intent action.
func (i *Intent) Action() string {
	if i == nil {
		return ""
	}

	return i.action
}

// Extras returns the attached Bundle, or nil when there is none.
func (i *Intent) Extras() *Bundle {
	if i == nil {
		return nil
	}

	return i.extras
}

// PutExtras merges extras into the intent's Bundle.
func (i *Intent) PutExtras(extras *Bundle) *Intent {
	if i.extras == nil {
		i.extras = New()
	}

	i.extras.PutAll(extras)

	return i
}

// HasExtra reports whether key is present in the extras.
func (i *Intent) HasExtra(key string) bool {
	return i.Extras().ContainsKey(key)
}
