package route

import (
	"slices"

	"github.com/theoremus-urban-solutions/ridenav/segments"
)

// ResolveTurnCommand decides which single command to send to the game given
// the directions it currently offers and the turn the route expects.
//
// The game does not always offer the expected direction as its own command.
// Left is only sent when Left and at least one other direction are on offer,
// Right likewise; in every other case GoStraight keeps the rider on the
// continuing road. With no expected turn nothing is sent.
func ResolveTurnCommand(available []segments.TurnDirection, expected segments.TurnDirection) segments.TurnDirection {
	has := func(d segments.TurnDirection) bool { return slices.Contains(available, d) }

	switch expected {
	case segments.TurnLeft:
		if has(segments.TurnLeft) && (has(segments.TurnGoStraight) || has(segments.TurnRight)) {
			return segments.TurnLeft
		}
		return segments.TurnGoStraight
	case segments.TurnGoStraight, segments.TurnRight:
		if has(segments.TurnRight) && (has(segments.TurnGoStraight) || has(segments.TurnLeft)) {
			return segments.TurnRight
		}
		return segments.TurnGoStraight
	default:
		return segments.TurnNone
	}
}

// TurnCommand resolves the command for the route's current step.
func (r PlannedRoute) TurnCommand(available []segments.TurnDirection) segments.TurnDirection {
	return ResolveTurnCommand(available, r.TurnToNextSegment())
}
