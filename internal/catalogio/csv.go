package catalogio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/campusforge/scheduga/timetable"
)

// ParseCSV reads the line-oriented catalog format, one directive per
// line, comments starting with "//" and blank lines ignored — the same
// discipline parse.go's Parse applies to the teacher's own input format,
// adapted to this domain's two directives:
//
//	request: id professor complexity weekdays groups classrooms
//	lock:    requestID slot
//
// weekdays is either "*" (every day admissible) or a comma-separated
// list of 0/1 flags, one per DaysInWeek weekday. groups and classrooms
// are comma-separated; classrooms entries are "building:room" pairs.
func ParseCSV(r io.Reader) ([]timetable.SubjectRequest, []timetable.Lock, error) {
	var requests []timetable.SubjectRequest
	var locks []timetable.Lock

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "request:":
			req, err := parseRequestLine(fields[1:])
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			requests = append(requests, req)

		case "lock:":
			lock, err := parseLockLine(fields[1:])
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			locks = append(locks, lock)

		default:
			return nil, nil, fmt.Errorf("line %d: unknown directive %q", lineNumber, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("catalogio: reading input: %w", err)
	}

	return requests, locks, nil
}

func parseRequestLine(fields []string) (timetable.SubjectRequest, error) {
	if len(fields) != 6 {
		return timetable.SubjectRequest{}, fmt.Errorf("request: expected 6 fields, found %d", len(fields))
	}

	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request: bad id %q: %w", fields[0], err)
	}
	professor, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request: bad professor %q: %w", fields[1], err)
	}
	complexity, err := strconv.Atoi(fields[2])
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request: bad complexity %q: %w", fields[2], err)
	}

	weekDays, err := parseWeekDays(fields[3])
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request %d: %w", id, err)
	}
	groups, err := parseUintList(fields[4])
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request %d: bad groups: %w", id, err)
	}
	classrooms, err := parseClassroomList(fields[5])
	if err != nil {
		return timetable.SubjectRequest{}, fmt.Errorf("request %d: bad classrooms: %w", id, err)
	}

	req, err := timetable.NewSubjectRequest(id, professor, complexity, weekDays, groups, classrooms)
	if err != nil {
		return timetable.SubjectRequest{}, err
	}
	return req, nil
}

func parseLockLine(fields []string) (timetable.Lock, error) {
	if len(fields) != 2 {
		return timetable.Lock{}, fmt.Errorf("lock: expected 2 fields, found %d", len(fields))
	}
	requestID, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return timetable.Lock{}, fmt.Errorf("lock: bad request id %q: %w", fields[0], err)
	}
	slot, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return timetable.Lock{}, fmt.Errorf("lock: bad slot %q: %w", fields[1], err)
	}
	return timetable.Lock{SubjectRequestID: requestID, Slot: timetable.Slot(slot)}, nil
}

func parseWeekDays(raw string) ([]bool, error) {
	if raw == "*" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	days := make([]bool, len(parts))
	for i, p := range parts {
		switch p {
		case "1":
			days[i] = true
		case "0":
			days[i] = false
		default:
			return nil, fmt.Errorf("weekdays: expected 0 or 1, found %q", p)
		}
	}
	return days, nil
}

func parseUintList(raw string) ([]uint64, error) {
	if raw == "" || raw == "-" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseClassroomList(raw string) ([]timetable.ClassroomAddress, error) {
	if raw == "" || raw == "-" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]timetable.ClassroomAddress, len(parts))
	for i, p := range parts {
		bldg, room, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("%q: expected building:room", p)
		}
		b, err := strconv.ParseUint(bldg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: bad building: %w", p, err)
		}
		r, err := strconv.ParseUint(room, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: bad room: %w", p, err)
		}
		out[i] = timetable.ClassroomAddress{Building: uint32(b), Room: uint32(r)}
	}
	return out, nil
}
