package track

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	m "waypointd/math"
)

// LoadCSV reads a route from a CSV file with one waypoint per row:
// x,y,z,speed (planar meters, speed in m/s). A header row is skipped when
// the first field does not parse as a number.
func LoadCSV(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open route file")
	}
	defer f.Close()

	waypoints, err := ParseCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse route file %s", path)
	}
	return New(waypoints)
}

func ParseCSV(r io.Reader) ([]Waypoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	waypoints := []Waypoint{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read route record")
		}
		line++

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			if line == 1 {
				// header row
				continue
			}
			return nil, errors.Wrapf(err, "bad x value on line %d", line)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad y value on line %d", line)
		}
		z, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad z value on line %d", line)
		}
		speed, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad speed value on line %d", line)
		}

		waypoints = append(waypoints, Waypoint{Pos: m.NewPoint(x, y, z), Speed: speed})
	}
	return waypoints, nil
}

// WriteCSV writes waypoints in the format LoadCSV reads.
func WriteCSV(w io.Writer, waypoints []Waypoint) error {
	writer := csv.NewWriter(w)
	for _, wp := range waypoints {
		record := []string{
			strconv.FormatFloat(wp.Pos.X, 'f', -1, 64),
			strconv.FormatFloat(wp.Pos.Y, 'f', -1, 64),
			strconv.FormatFloat(wp.Pos.Z, 'f', -1, 64),
			strconv.FormatFloat(wp.Speed, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "could not write route record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "could not flush route records")
}
