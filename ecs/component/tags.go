package component

// SceneTag marks the singleton entity holding pointer, surface, spine, clock
// and look state.
type SceneTag struct{}

var SceneTagComponent = NewComponent[SceneTag]()
