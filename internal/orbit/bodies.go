package orbit

// BodyID indexes the ten bodies of the system. The index doubles as the orbit
// radius for Mercury through Neptune.
type BodyID int

const (
	Sun BodyID = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	BodyCount
)

var bodyNames = [BodyCount]string{
	"Sun", "Mercury", "Venus", "Earth", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

func (b BodyID) String() string {
	if !b.Valid() {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b names one of the ten bodies.
func (b BodyID) Valid() bool {
	return b >= 0 && b < BodyCount
}

// Body is one celestial body. Speed and Radius never change after construction.
type Body struct {
	ID     BodyID
	Angle  float64 // degrees, [0, 360)
	Speed  float64 // degrees per tick
	Radius float64
}

// Distance returns the orbit radius around the Sun.
func (b Body) Distance() float64 {
	switch b.ID {
	case Sun:
		return 0
	case Pluto:
		return plutoDistance
	default:
		return float64(b.ID)
	}
}

const (
	plutoDistance = 9.5
	plutoTilt     = 10.0 // degrees about (1,1,1)

	moonDistance = 0.55
	MoonRadius   = 0.1
)

var defaultBodies = [BodyCount]Body{
	{ID: Sun, Speed: 1, Radius: 0.7},
	{ID: Mercury, Speed: 1.2, Radius: 0.18},
	{ID: Venus, Speed: 1.1, Radius: 0.25},
	{ID: Earth, Speed: 1, Radius: 0.25},
	{ID: Mars, Speed: 1.7, Radius: 0.22},
	{ID: Jupiter, Speed: 1.3, Radius: 0.45},
	{ID: Saturn, Speed: 1.4, Radius: 0.23},
	{ID: Uranus, Speed: 1.3, Radius: 0.24},
	{ID: Neptune, Speed: 1.0, Radius: 0.22},
	{ID: Pluto, Speed: 0.78, Radius: 0.13},
}
