package spacesearch_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spacesearch"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want spacesearch.Strategy
	}{
		{"guided/hashable/route", spacesearch.Strategy{Order: spacesearch.Guided, Dedup: spacesearch.Hashable, Shape: spacesearch.Route}},
		{"depth_first/unhashable/no_route", spacesearch.Strategy{Order: spacesearch.DepthFirst, Dedup: spacesearch.Unhashable, Shape: spacesearch.NoRoute}},
		{"route, a-star", spacesearch.Strategy{Order: spacesearch.AStar, Dedup: spacesearch.Hashable, Shape: spacesearch.Route}},
		{"BFS", spacesearch.Strategy{Order: spacesearch.BreadthFirst, Dedup: spacesearch.Hashable, Shape: spacesearch.NoRoute}},
		{"unhashable dfs", spacesearch.Strategy{Order: spacesearch.DepthFirst, Dedup: spacesearch.Unhashable, Shape: spacesearch.NoRoute}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := spacesearch.ParseStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStrategy_Errors(t *testing.T) {
	_, err := spacesearch.ParseStrategy("guided/sorted")
	require.Error(t, err)
	assert.ErrorIs(t, err, spacesearch.ErrUnknownStrategy)

	var se *spacesearch.StrategyError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "sorted", se.Value)

	_, err = spacesearch.ParseStrategy("guided/a_star")
	assert.ErrorIs(t, err, spacesearch.ErrDuplicateField)
	assert.ErrorIs(t, err, spacesearch.ErrUnknownStrategy)

	_, err = spacesearch.ParseStrategy(" / ")
	assert.ErrorIs(t, err, spacesearch.ErrUnknownStrategy)
}

func TestStrategy_String(t *testing.T) {
	st := spacesearch.Strategy{Order: spacesearch.AStar, Dedup: spacesearch.Unhashable, Shape: spacesearch.Route}
	assert.Equal(t, "a_star/unhashable/route", st.String())

	assert.Equal(t, "order(9)", spacesearch.Order(9).String())
	assert.Equal(t, "dedup(9)", spacesearch.Dedup(9).String())
	assert.Equal(t, "shape(9)", spacesearch.Shape(9).String())
}

func TestStrategy_TextRoundTrip(t *testing.T) {
	type config struct {
		Strategy spacesearch.Strategy `json:"strategy"`
	}

	var cfg config
	require.NoError(t, json.Unmarshal([]byte(`{"strategy":"guided/unhashable/route"}`), &cfg))
	assert.Equal(t, spacesearch.Guided, cfg.Strategy.Order)
	assert.Equal(t, spacesearch.Unhashable, cfg.Strategy.Dedup)
	assert.Equal(t, spacesearch.Route, cfg.Strategy.Shape)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"strategy":"guided/unhashable/route"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"strategy":"sideways"}`), &cfg))
}
