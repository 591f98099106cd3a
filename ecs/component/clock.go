package component

// Clock is the animation phase. Time advances by Step each update and is
// only used for pulsing, never compared with wall time.
type Clock struct {
	Time  float64
	Step  float64
	Frame uint64
}

var ClockComponent = NewComponent[Clock]()
