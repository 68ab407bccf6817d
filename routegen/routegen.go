// Package routegen turns OpenStreetMap extracts into drivable routes: it
// pulls the ways matching a name or ref out of a pbf file, projects their
// nodes into a local planar frame and tags each waypoint with a base speed
// from the way's maxspeed.
package routegen

import (
	"context"
	"math"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"

	m "waypointd/math"
	"waypointd/track"
)

const (
	R          = 6373000.0 // approximate radius of earth in meters
	TO_RADIANS = math.Pi / 180
)

type Options struct {
	InputFile string
	// Ways whose name or ref tag equals WayName are stitched into the route,
	// in file order.
	WayName string
	// Base speed in m/s for ways without a usable maxspeed tag.
	DefaultSpeed float64
}

type scannedWay struct {
	speed float64
	nodes []osm.WayNode
}

// Generate scans the pbf extract and returns the projected route.
func Generate(ctx context.Context, opts Options) ([]track.Waypoint, error) {
	if opts.WayName == "" {
		return nil, errors.New("no way name given")
	}

	file, err := os.Open(opts.InputFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not open map pbf file")
	}
	defer file.Close()

	scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	defer scanner.Close()

	nodes := map[osm.NodeID]m.Point{}
	ways := []scannedWay{}
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = m.NewPoint(o.Lon, o.Lat, 0)
		case *osm.Way:
			if len(o.Nodes) < 2 {
				continue
			}
			tags := o.TagMap()
			if tags["name"] != opts.WayName && tags["ref"] != opts.WayName {
				continue
			}
			speed := ParseMaxSpeed(tags["maxspeed"])
			if speed == 0 {
				speed = opts.DefaultSpeed
			}
			ways = append(ways, scannedWay{speed: speed, nodes: o.Nodes})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not scan map pbf file")
	}
	if len(ways) == 0 {
		return nil, errors.Errorf("no way named %q in %s", opts.WayName, opts.InputFile)
	}

	return project(ways, nodes)
}

// project flattens the matched ways into planar waypoints anchored at the
// first node, using an equirectangular approximation. Good enough at route
// scale, and it keeps the runtime math linear.
func project(ways []scannedWay, nodes map[osm.NodeID]m.Point) ([]track.Waypoint, error) {
	origin, ok := lookupNode(ways[0].nodes[0], nodes)
	if !ok {
		return nil, errors.New("pbf extract is missing node locations")
	}
	cosLat := math.Cos(origin.Y * TO_RADIANS)

	waypoints := []track.Waypoint{}
	for _, way := range ways {
		for _, wn := range way.nodes {
			ll, ok := lookupNode(wn, nodes)
			if !ok {
				return nil, errors.Errorf("way references unknown node %d", wn.ID)
			}
			pos := m.NewPoint(
				R*(ll.X-origin.X)*TO_RADIANS*cosLat,
				R*(ll.Y-origin.Y)*TO_RADIANS,
				0,
			)
			if len(waypoints) > 0 && pos == waypoints[len(waypoints)-1].Pos {
				// shared node at a way boundary
				continue
			}
			waypoints = append(waypoints, track.Waypoint{Pos: pos, Speed: way.speed})
		}
	}
	return waypoints, nil
}

// Some extracts carry locations on the way nodes themselves, others only on
// the node objects.
func lookupNode(wn osm.WayNode, nodes map[osm.NodeID]m.Point) (m.Point, bool) {
	if wn.Lat != 0 || wn.Lon != 0 {
		return m.NewPoint(wn.Lon, wn.Lat, 0), true
	}
	ll, ok := nodes[wn.ID]
	return ll, ok
}

// WriteRoute writes the generated route as a waypoint CSV.
func WriteRoute(path string, waypoints []track.Waypoint) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create route file")
	}
	if err := track.WriteCSV(f, waypoints); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "could not close route file")
}
