package kernel

// Envelope is the bounding box of a realised catalog entry.
type Envelope struct {
	Name string     `json:"name"`
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
}

// NewEnvelope builds an envelope from a solid's bounding box.
func NewEnvelope(name string, s Solid) Envelope {
	min, max := s.BoundingBox()
	return Envelope{Name: name, Min: min, Max: max}
}

// Size returns the extent along each axis.
func (e Envelope) Size() [3]float64 {
	return [3]float64{
		e.Max[0] - e.Min[0],
		e.Max[1] - e.Min[1],
		e.Max[2] - e.Min[2],
	}
}

// IsPlanar reports whether the envelope has no extent along Z.
func (e Envelope) IsPlanar() bool {
	return e.Max[2] == e.Min[2]
}
