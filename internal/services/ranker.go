package services

import (
	"cmp"
	"math"
	"slices"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"

	"resource-directory/internal/config"
	"resource-directory/internal/models"
)

// DistanceFunc measures how far b is from a. Only the ordering it induces is
// observable to callers.
type DistanceFunc func(a, b models.Point) float64

// PlanarDistance treats (lat, long) as plane coordinates. Adequate for the
// short distances the directory serves; not a great-circle distance.
func PlanarDistance(a, b models.Point) float64 {
	return xy.Distance(geom.Coord{a.Lat, a.Long}, geom.Coord{b.Lat, b.Long})
}

const earthRadiusKM = 6371.0088

// HaversineDistance is the great-circle distance in kilometres.
func HaversineDistance(a, b models.Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLong := (b.Long - a.Long) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DistanceFuncFor maps a configured metric name to its function.
func DistanceFuncFor(metric string) DistanceFunc {
	if metric == config.MetricHaversine {
		return HaversineDistance
	}
	return PlanarDistance
}

// RankedResource pairs a resource with its distance from the query point.
type RankedResource struct {
	Resource *models.Resource
	Distance float64
}

// Ranking is the output of DistanceRanker.Rank.
type Ranking struct {
	Ranked []RankedResource
	// Unplaced counts candidates dropped because they have no coordinates.
	Unplaced int
}

// Resources returns the ranked resources in order.
func (r Ranking) Resources() []*models.Resource {
	out := make([]*models.Resource, 0, len(r.Ranked))
	for _, rr := range r.Ranked {
		out = append(out, rr.Resource)
	}
	return out
}

// DistanceRanker orders resources by proximity to a point.
type DistanceRanker struct {
	distance DistanceFunc
}

func NewDistanceRanker(distance DistanceFunc) *DistanceRanker {
	if distance == nil {
		distance = PlanarDistance
	}
	return &DistanceRanker{distance: distance}
}

// Rank returns the candidates with an address in strictly ascending distance
// from origin. Equal distances are broken by resource id ascending so the
// output never depends on input order. Candidates without an address (or
// with an address lacking coordinates) are excluded, never placed at a
// default distance.
func (d *DistanceRanker) Rank(origin models.Point, resources []*models.Resource) Ranking {
	ranking := Ranking{Ranked: make([]RankedResource, 0, len(resources))}

	for _, r := range resources {
		p, ok := r.Point()
		if !ok {
			ranking.Unplaced++
			continue
		}
		ranking.Ranked = append(ranking.Ranked, RankedResource{
			Resource: r,
			Distance: d.distance(origin, p),
		})
	}

	slices.SortFunc(ranking.Ranked, func(a, b RankedResource) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Resource.ID, b.Resource.ID)
	})

	return ranking
}
