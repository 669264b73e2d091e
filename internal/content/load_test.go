package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	c := Load()

	require.False(t, c.Empty(), "embedded catalog must not be empty")

	countries := c.Countries()
	require.NotEmpty(t, countries)

	// Visit order starts at 1 and is strictly increasing.
	prev := 0
	for _, co := range countries {
		assert.Greater(t, co.VisitOrder, prev, "country %s out of order", co.ID)
		prev = co.VisitOrder
	}

	// Every listed landmark resolves and belongs to its country.
	for _, co := range countries {
		landmarks := c.LandmarksOf(co.ID)
		assert.Len(t, landmarks, len(co.Landmarks), "country %s has unresolvable landmarks", co.ID)
		for _, l := range landmarks {
			assert.Equal(t, co.ID, l.CountryID)
			assert.NotEmpty(t, l.DisplayName)
			assert.NotEmpty(t, l.FunFact)
		}
	}
}

func TestLoad_FullTraversal(t *testing.T) {
	c := Load()

	co, l, ok := c.FirstLandmark()
	require.True(t, ok)

	visited := map[string]bool{l.ID: true}
	steps := 1
	for {
		nextCo, nextL, ok := c.NextLandmark(co.ID, l.ID)
		if !ok {
			break
		}
		require.False(t, visited[nextL.ID], "landmark %s visited twice", nextL.ID)
		visited[nextL.ID] = true
		co, l = nextCo, nextL
		steps++
	}

	assert.Equal(t, c.TotalLandmarks(), steps, "traversal must reach every landmark exactly once")
}
