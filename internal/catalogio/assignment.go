package catalogio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/campusforge/scheduga/chromosome"
	"github.com/campusforge/scheduga/timetable"
)

type jsonAssignment struct {
	RequestID uint64 `json:"request_id"`
	Lesson    uint32 `json:"lesson"`
	Building  uint32 `json:"building"`
	Room      uint32 `json:"room"`
}

type jsonAssignmentDoc struct {
	Assignments []jsonAssignment `json:"assignments"`
}

// LoadAssignment decodes a fixed per-request (lesson, classroom) listing
// against data and builds the corresponding Chromosomes, for
// cmd/scheduga's "score" subcommand (grounded on the teacher's own
// CommandScore, which reads a separate placements file against its
// already-parsed catalog). Requests absent from the assignment are left
// unassigned (timetable.NoLesson / timetable.NoClassroomAssigned).
func LoadAssignment(r io.Reader, data *timetable.ScheduleData) (*chromosome.Chromosomes, error) {
	var doc jsonAssignmentDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalogio: decoding assignment: %w", err)
	}

	c := chromosome.New(len(data.Requests()))
	for _, a := range doc.Assignments {
		idx, err := data.IndexOf(a.RequestID)
		if err != nil {
			return nil, err
		}
		c.Lessons[idx] = timetable.Slot(a.Lesson)
		c.Classrooms[idx] = timetable.ClassroomAddress{Building: a.Building, Room: a.Room}
	}

	return c, nil
}
