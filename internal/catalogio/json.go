package catalogio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/campusforge/scheduga/timetable"
)

// jsonClassroom mirrors timetable.ClassroomAddress for the wire format.
type jsonClassroom struct {
	Building uint32 `json:"building"`
	Room     uint32 `json:"room"`
}

type jsonRequest struct {
	ID         uint64          `json:"id"`
	Professor  uint64          `json:"professor"`
	Complexity int             `json:"complexity"`
	WeekDays   []bool          `json:"week_days,omitempty"`
	Groups     []uint64        `json:"groups"`
	Classrooms []jsonClassroom `json:"classrooms"`
}

type jsonLock struct {
	SubjectRequestID uint64 `json:"subject_request_id"`
	Slot             uint32 `json:"slot"`
}

type jsonCatalog struct {
	Requests []jsonRequest `json:"requests"`
	Locks    []jsonLock    `json:"locks"`
}

// ParseJSON decodes the object-of-arrays schema used by the "gen"
// subcommand's output: {"requests": [...], "locks": [...]}, the JSON
// analogue of json.go's map-of-instructors schema for this domain.
func ParseJSON(r io.Reader) ([]timetable.SubjectRequest, []timetable.Lock, error) {
	var doc jsonCatalog
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("catalogio: decoding JSON catalog: %w", err)
	}

	requests := make([]timetable.SubjectRequest, 0, len(doc.Requests))
	for _, jr := range doc.Requests {
		classrooms := make([]timetable.ClassroomAddress, len(jr.Classrooms))
		for i, c := range jr.Classrooms {
			classrooms[i] = timetable.ClassroomAddress{Building: c.Building, Room: c.Room}
		}
		req, err := timetable.NewSubjectRequest(jr.ID, jr.Professor, jr.Complexity, jr.WeekDays, jr.Groups, classrooms)
		if err != nil {
			return nil, nil, fmt.Errorf("catalogio: request %d: %w", jr.ID, err)
		}
		requests = append(requests, req)
	}

	locks := make([]timetable.Lock, len(doc.Locks))
	for i, jl := range doc.Locks {
		locks[i] = timetable.Lock{SubjectRequestID: jl.SubjectRequestID, Slot: timetable.Slot(jl.Slot)}
	}

	return requests, locks, nil
}

// WriteJSON encodes requests and locks in the same schema ParseJSON
// reads, used by "gen" to emit a synthetic catalog.
func WriteJSON(w io.Writer, requests []timetable.SubjectRequest, locks []timetable.Lock) error {
	doc := jsonCatalog{
		Requests: make([]jsonRequest, len(requests)),
		Locks:    make([]jsonLock, len(locks)),
	}

	for i, r := range requests {
		var weekDays []bool
		for d := 0; d < timetable.DaysInWeek; d++ {
			weekDays = append(weekDays, r.AdmitsWeekDay(d))
		}
		classrooms := make([]jsonClassroom, len(r.Classrooms()))
		for j, c := range r.Classrooms() {
			classrooms[j] = jsonClassroom{Building: c.Building, Room: c.Room}
		}
		doc.Requests[i] = jsonRequest{
			ID:         r.ID(),
			Professor:  r.Professor(),
			Complexity: r.Complexity(),
			WeekDays:   weekDays,
			Groups:     r.Groups(),
			Classrooms: classrooms,
		}
	}

	for i, l := range locks {
		doc.Locks[i] = jsonLock{SubjectRequestID: l.SubjectRequestID, Slot: uint32(l.Slot)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalogio: encoding JSON catalog: %w", err)
	}
	return nil
}
