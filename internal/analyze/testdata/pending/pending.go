package pending

//activityresult:result {name: id, type: int}
type Screen struct{}

// Open uses the companion before it has been generated.
func Open() *ScreenResult {
	return NewScreenResultBuilder(1).Build()
}
