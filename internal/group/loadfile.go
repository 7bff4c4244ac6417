package group

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goblt/internal/statics"
)

// LoadFromFile loads a group definition from a JSON file
func LoadFromFile(filepath string) (*Group, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var group Group
	if err := json.Unmarshal(data, &group); err != nil {
		return nil, err
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return &group, nil
}

// ParseRecord parses a single load record of the form
//
//	x,y,z,Fx,Fy,Fz[,Mx,My,Mz]
//
// into a statics load. The moment fields are optional and default to
// the zero vector.
func ParseRecord(record string) (statics.Load, error) {
	fields := strings.Split(record, ",")
	if len(fields) != 6 && len(fields) != 9 {
		return statics.Load{}, fmt.Errorf("record %q: expected 6 or 9 comma-separated values, got %d", record, len(fields))
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return statics.Load{}, fmt.Errorf("record %q: field %d is not a number", record, i+1)
		}
		vals[i] = v
	}

	ld := statics.Load{
		Point: vec3(vals[0], vals[1], vals[2]),
		Force: vec3(vals[3], vals[4], vals[5]),
	}
	if len(vals) == 9 {
		ld.Moment = vec3(vals[6], vals[7], vals[8])
	}
	return ld, nil
}

// ParseRecords parses a sequence of load records, reporting the first
// failure with its position.
func ParseRecords(records []string) ([]statics.Load, error) {
	loads := make([]statics.Load, 0, len(records))
	for i, rec := range records {
		ld, err := ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", i+1, err)
		}
		loads = append(loads, ld)
	}
	return loads, nil
}

// ParsePoint parses a coordinate triple of the form "x,y,z".
func ParsePoint(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("point %q: expected 3 comma-separated values, got %d", s, len(fields))
	}
	vals := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Point{}, fmt.Errorf("point %q: field %d is not a number", s, i+1)
		}
		vals[i] = v
	}
	return Point{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
