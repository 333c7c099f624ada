package timetable

import "math"

// ClassroomAddress is a (building, room) pair. Two sentinels carry special
// meaning: AnyClassroom is a wildcard ("no specific classroom required")
// and NoClassroomAssigned marks an absent assignment.
type ClassroomAddress struct {
	Building uint32
	Room     uint32
}

// AnyClassroom is the wildcard address: "no specific classroom required".
var AnyClassroom = ClassroomAddress{Building: 0, Room: 0}

// NoClassroomAssigned marks an unassigned classroom slot.
var NoClassroomAssigned = ClassroomAddress{Building: math.MaxUint32, Room: math.MaxUint32}

// Less implements the lexicographic total order on (building, room).
func (c ClassroomAddress) Less(other ClassroomAddress) bool {
	if c.Building != other.Building {
		return c.Building < other.Building
	}
	return c.Room < other.Room
}

// IsAny reports whether c is the wildcard address.
func (c ClassroomAddress) IsAny() bool { return c == AnyClassroom }

// IsUnassigned reports whether c is the "no classroom" sentinel.
func (c ClassroomAddress) IsUnassigned() bool { return c == NoClassroomAssigned }
