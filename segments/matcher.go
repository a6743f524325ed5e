package segments

// Totals is distance and elevation accumulated while riding.
type Totals struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Ascent   float64 `json:"ascent" yaml:"ascent"`
	Descent  float64 `json:"descent" yaml:"descent"`
}

// Add returns the sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Distance: t.Distance + o.Distance,
		Ascent:   t.Ascent + o.Ascent,
		Descent:  t.Descent + o.Descent,
	}
}

// DetermineDirection compares the indexes of two located points on the
// same segment. A previous point that is not located, or located on a
// different segment, gives DirectionUnknown, as does an unchanged index.
func DetermineDirection(previous, next TrackPoint) SegmentDirection {
	if !previous.OnSegment() || !next.OnSegment() || previous.SegmentID != next.SegmentID {
		return DirectionUnknown
	}
	switch {
	case next.Index > previous.Index:
		return DirectionAtoB
	case next.Index < previous.Index:
		return DirectionBtoA
	default:
		return DirectionUnknown
	}
}

// Accumulate returns the distance between two samples and the positive
// (ascent) and negative (descent) parts of their altitude difference.
func Accumulate(previous, next TrackPoint) Totals {
	delta := next.Altitude - previous.Altitude
	t := Totals{Distance: previous.DistanceTo(next)}
	if delta > 0 {
		t.Ascent = delta
	} else {
		t.Descent = -delta
	}
	return t
}
