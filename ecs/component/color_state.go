package component

import "image/color"

// ColorState is the glow color shared by every halo. Current is replaced
// with a random Palette entry while the spine head is near the pointer.
type ColorState struct {
	Current color.NRGBA
	Palette []color.NRGBA
}

var ColorStateComponent = NewComponent[ColorState]()
