package track

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	m "waypointd/math"
)

// Store is a sqlite-backed route library so imported routes survive
// restarts and can be selected by name.
type Store struct {
	*sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open route store")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS routes (
			route_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS waypoints (
			route_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			x DOUBLE NOT NULL,
			y DOUBLE NOT NULL,
			z DOUBLE NOT NULL,
			speed DOUBLE NOT NULL,
			PRIMARY KEY (route_id, seq),
			FOREIGN KEY (route_id) REFERENCES routes(route_id)
		);
	`)
	if err != nil {
		return nil, errors.Wrap(err, "could not create route store schema")
	}

	return &Store{db}, nil
}

// Save stores a named route, replacing any previous route with the same
// name.
func (s *Store) Save(name string, waypoints []Waypoint) error {
	tx, err := s.Begin()
	if err != nil {
		return errors.Wrap(err, "could not begin route import")
	}
	defer tx.Rollback()

	var routeID int64
	err = tx.QueryRow("SELECT route_id FROM routes WHERE name = ?", name).Scan(&routeID)
	if err == sql.ErrNoRows {
		res, err := tx.Exec("INSERT INTO routes (name) VALUES (?)", name)
		if err != nil {
			return errors.Wrap(err, "could not insert route")
		}
		routeID, err = res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "could not read route id")
		}
	} else if err != nil {
		return errors.Wrap(err, "could not look up route")
	} else {
		if _, err := tx.Exec("DELETE FROM waypoints WHERE route_id = ?", routeID); err != nil {
			return errors.Wrap(err, "could not clear previous waypoints")
		}
	}

	stmt, err := tx.Prepare("INSERT INTO waypoints (route_id, seq, x, y, z, speed) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "could not prepare waypoint insert")
	}
	defer stmt.Close()

	for i, wp := range waypoints {
		if _, err := stmt.Exec(routeID, i, wp.Pos.X, wp.Pos.Y, wp.Pos.Z, wp.Speed); err != nil {
			return errors.Wrapf(err, "could not insert waypoint %d", i)
		}
	}

	return errors.Wrap(tx.Commit(), "could not commit route import")
}

// Load returns the named route as a validated Track.
func (s *Store) Load(name string) (*Track, error) {
	var routeID int64
	err := s.QueryRow("SELECT route_id FROM routes WHERE name = ?", name).Scan(&routeID)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("no route named %q", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not look up route")
	}

	rows, err := s.Query("SELECT x, y, z, speed FROM waypoints WHERE route_id = ? ORDER BY seq", routeID)
	if err != nil {
		return nil, errors.Wrap(err, "could not read waypoints")
	}
	defer rows.Close()

	waypoints := []Waypoint{}
	for rows.Next() {
		var x, y, z, speed float64
		if err := rows.Scan(&x, &y, &z, &speed); err != nil {
			return nil, errors.Wrap(err, "could not scan waypoint")
		}
		waypoints = append(waypoints, Waypoint{Pos: m.NewPoint(x, y, z), Speed: speed})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "could not iterate waypoints")
	}

	return New(waypoints)
}

// Names lists the stored routes in import order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.Query("SELECT name FROM routes ORDER BY route_id")
	if err != nil {
		return nil, errors.Wrap(err, "could not list routes")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "could not scan route name")
		}
		names = append(names, name)
	}
	return names, errors.Wrap(rows.Err(), "could not iterate routes")
}
