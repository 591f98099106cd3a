package component

// TTL is a frame-based time-to-live. The TTL system subtracts one per update
// and destroys the entity once Frames is no longer positive. Frames may be
// fractional; particles are spawned with a random life in [min, max).
type TTL struct {
	Frames float64
}

var TTLComponent = NewComponent[TTL]()
