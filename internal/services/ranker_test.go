package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-directory/internal/models"
)

func permutations(in []*models.Resource) [][]*models.Resource {
	if len(in) <= 1 {
		return [][]*models.Resource{append([]*models.Resource(nil), in...)}
	}
	var out [][]*models.Resource
	for i := range in {
		rest := make([]*models.Resource, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]*models.Resource{in[i]}, p...))
		}
	}
	return out
}

func TestRankOrdersByDistanceForEveryInputOrder(t *testing.T) {
	further := located(1, 100, 0)
	near := located(2, 10, 0)
	far := located(3, 50, 0)

	ranker := NewDistanceRanker(PlanarDistance)
	origin := models.Point{Lat: 10, Long: 10}

	perms := permutations([]*models.Resource{further, near, far})
	require.Len(t, perms, 6)

	for _, input := range perms {
		ranking := ranker.Rank(origin, input)
		assert.Equal(t, []int64{2, 3, 1}, ids(ranking.Resources()))
		assert.Zero(t, ranking.Unplaced)

		for i := 1; i < len(ranking.Ranked); i++ {
			assert.Less(t, ranking.Ranked[i-1].Distance, ranking.Ranked[i].Distance)
		}
	}
}

func TestRankPlanarDistanceValues(t *testing.T) {
	ranking := NewDistanceRanker(nil).Rank(models.Point{}, []*models.Resource{located(1, 3, 4)})
	require.Len(t, ranking.Ranked, 1)
	assert.InDelta(t, 5.0, ranking.Ranked[0].Distance, 1e-9)
}

func TestRankExcludesResourcesWithoutCoordinates(t *testing.T) {
	noAddress := &models.Resource{ID: 1}
	noLatitude := &models.Resource{ID: 2, Address: &models.Address{Longitude: ptr(1.0)}}
	placed := located(3, 0, 0)

	ranking := NewDistanceRanker(PlanarDistance).Rank(models.Point{Lat: 1, Long: 1}, []*models.Resource{noAddress, placed, noLatitude})

	assert.Equal(t, []int64{3}, ids(ranking.Resources()))
	assert.Equal(t, 2, ranking.Unplaced)
}

func TestRankBreaksTiesByID(t *testing.T) {
	a := located(9, 1, 0)
	b := located(4, -1, 0)
	c := located(6, 0, 1)

	for _, input := range permutations([]*models.Resource{a, b, c}) {
		ranking := NewDistanceRanker(PlanarDistance).Rank(models.Point{}, input)
		assert.Equal(t, []int64{4, 6, 9}, ids(ranking.Resources()))
	}
}

func TestRankEdgeCases(t *testing.T) {
	ranker := NewDistanceRanker(PlanarDistance)

	empty := ranker.Rank(models.Point{}, nil)
	assert.NotNil(t, empty.Ranked)
	assert.Empty(t, empty.Resources())

	single := ranker.Rank(models.Point{}, []*models.Resource{located(5, 2, 2)})
	assert.Equal(t, []int64{5}, ids(single.Resources()))
}

func TestHaversinePreservesOrdering(t *testing.T) {
	origin := models.Point{Lat: 37.7749, Long: -122.4194} // San Francisco
	oakland := located(1, 37.8044, -122.2712)
	sanJose := located(2, 37.3382, -121.8863)
	sacramento := located(3, 38.5816, -121.4944)

	ranking := NewDistanceRanker(HaversineDistance).Rank(origin, []*models.Resource{sacramento, sanJose, oakland})
	assert.Equal(t, []int64{1, 2, 3}, ids(ranking.Resources()))
	assert.InDelta(t, 13.4, ranking.Ranked[0].Distance, 1.0)
}

func TestDistanceFuncFor(t *testing.T) {
	a, b := models.Point{Lat: 0, Long: 0}, models.Point{Lat: 0, Long: 1}
	assert.InDelta(t, 1.0, DistanceFuncFor("planar")(a, b), 1e-9)
	assert.InDelta(t, 111.2, DistanceFuncFor("haversine")(a, b), 0.5)
	assert.InDelta(t, 1.0, DistanceFuncFor("unknown")(a, b), 1e-9)
}
