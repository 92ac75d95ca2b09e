package broken

//activityresult:result {name: id, type: int}
type Screen struct {
