package usecase

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/qwikker/business-import/internal/domain"
)

// latticeOffset is a grid position in lattice steps east (x) and north (y) of the center.
type latticeOffset struct {
	x, y int
}

func (o latticeOffset) ring() int {
	return max(abs(o.x), abs(o.y))
}

func (o latticeOffset) squaredLen() int {
	return o.x*o.x + o.y*o.y
}

// angle is the clockwise angle from north, in [0, 2π).
func (o latticeOffset) angle() float64 {
	a := math.Atan2(float64(o.x), float64(o.y))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// PlanGrid lays out the search points an estimate pays for around center.
// Points come center first, then ring by ring outwards, so truncating the
// lattice to the estimated point count keeps coverage closest to the center.
func PlanGrid(center domain.LatLng, radiusMeters int, est domain.Estimate, limits domain.Limits) []domain.GridPoint {
	n := max(est.GridPointCount, 1)
	steps := 0
	if est.TypeCount > 0 && n > 1 {
		// Rings beyond the first n points are never returned.
		steps = min(gridSteps(radiusMeters, est.TypeCount, limits), ringsFor(n))
	}

	offsets := make([]latticeOffset, 0, (2*steps+1)*(2*steps+1))
	for y := -steps; y <= steps; y++ {
		for x := -steps; x <= steps; x++ {
			offsets = append(offsets, latticeOffset{x: x, y: y})
		}
	}

	sort.Slice(offsets, func(i, j int) bool {
		a, b := offsets[i], offsets[j]
		if a.ring() != b.ring() {
			return a.ring() < b.ring()
		}
		if a.squaredLen() != b.squaredLen() {
			return a.squaredLen() < b.squaredLen()
		}
		return a.angle() < b.angle()
	})

	n = min(n, len(offsets))
	origin := orb.Point{center.Lng, center.Lat}
	spacing := float64(limits.GridCellSpacingMeters)

	points := make([]domain.GridPoint, 0, n)
	for _, off := range offsets[:n] {
		p := offsetPoint(origin, float64(off.x)*spacing, float64(off.y)*spacing)
		points = append(points, domain.GridPoint{
			LatLng:         domain.LatLng{Lat: p.Lat(), Lng: p.Lon()},
			Ring:           off.ring(),
			DistanceMeters: geo.DistanceHaversine(origin, p),
		})
	}

	return points
}

// offsetPoint moves p northMeters north (negative = south) and then
// eastMeters east (negative = west) along great circles.
func offsetPoint(p orb.Point, eastMeters, northMeters float64) orb.Point {
	if northMeters != 0 {
		bearing := 0.0
		if northMeters < 0 {
			bearing = 180
		}
		p = geo.PointAtBearingAndDistance(p, bearing, math.Abs(northMeters))
	}
	if eastMeters != 0 {
		bearing := 90.0
		if eastMeters < 0 {
			bearing = 270
		}
		p = geo.PointAtBearingAndDistance(p, bearing, math.Abs(eastMeters))
	}
	return p
}

// ringsFor returns the fewest rings around the center that hold n points,
// the smallest s with (2s+1)² ≥ n.
func ringsFor(n int) int {
	s := 0
	for (2*s+1)*(2*s+1) < n {
		s++
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
