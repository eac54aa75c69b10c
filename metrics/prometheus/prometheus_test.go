package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/search/unguided"
	fixtures "github.com/hupe1980/spacesearch/testutil"
)

func TestCollector(t *testing.T) {
	c := NewCollector("test")
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	start := fixtures.Word{Alphabet: "ab", MaxLen: 3, Suffix: "ab"}
	s := spacesearch.New(start,
		unguided.NoRouteHashable[fixtures.Word](unguided.BreadthFirst),
		spacesearch.WithMetricsCollector(c),
	)
	require.Len(t, s.Take(10), 3)

	const label = "breadth_first/hashable/no_route"
	assert.Equal(t, 3.0, testutil.ToFloat64(c.solutions.WithLabelValues(label)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.exhaustions.WithLabelValues(label)))
	assert.Equal(t, float64(s.Stats().Expanded), testutil.ToFloat64(c.expansions.WithLabelValues(label)))
	assert.Equal(t, float64(s.Stats().Generated), testutil.ToFloat64(c.generated.WithLabelValues(label)))
	assert.Equal(t, float64(s.Stats().Enqueued), testutil.ToFloat64(c.enqueued.WithLabelValues(label)))

	expected := `
# HELP test_search_solutions_total Solutions yielded.
# TYPE test_search_solutions_total counter
test_search_solutions_total{strategy="breadth_first/hashable/no_route"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_search_solutions_total"))

	n, err := testutil.GatherAndCount(reg, "test_search_solution_depth")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_Duplicates(t *testing.T) {
	c := NewCollector("")
	s := spacesearch.New(fixtures.Pos{},
		unguided.NoRouteHashable[fixtures.Pos](unguided.BreadthFirst),
		spacesearch.WithMetricsCollector(c),
	)
	_, ok := s.Next()
	require.True(t, ok)

	const label = "breadth_first/hashable/no_route"
	assert.Equal(t, float64(s.Stats().Duplicates), testutil.ToFloat64(c.duplicates.WithLabelValues(label)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.exhaustions.WithLabelValues(label)))
}

func TestDepthBuckets(t *testing.T) {
	b := DepthBuckets()
	require.Len(t, b, 12)
	assert.Equal(t, "1", b[0])
	assert.Equal(t, "2048", b[11])
}
