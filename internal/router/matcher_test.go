package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/router"
)

func testRoutes() []router.Route {
	return []router.Route{
		{Pattern: "/", Name: "home"},
		{Pattern: "/events", Name: "events"},
		{Pattern: "/event/:id", Name: "event_detail"},
		{Pattern: "/booking/:id", Name: "booking"},
		{Pattern: "/confirmation/:id", Name: "confirmation"},
		{Pattern: "/account", Name: "account"},
		{Pattern: "/about", Name: "about"},
	}
}

func TestMatch_ExactRoute(t *testing.T) {
	route, params, ok := router.Match(testRoutes(), "/events")
	require.True(t, ok)
	assert.Equal(t, "events", route.Name)
	assert.Empty(t, params)
}

func TestMatch_ParameterizedRoute(t *testing.T) {
	route, params, ok := router.Match(testRoutes(), "/event/42")
	require.True(t, ok)
	assert.Equal(t, "event_detail", route.Name)
	assert.Equal(t, router.Params{"id": "42"}, params)
}

func TestMatch_NoMatch(t *testing.T) {
	_, _, ok := router.Match(testRoutes(), "/nope/at/all")
	assert.False(t, ok)
}

func TestMatch_Root(t *testing.T) {
	route, _, ok := router.Match(testRoutes(), "/")
	require.True(t, ok)
	assert.Equal(t, "home", route.Name)
}

func TestMatch_ExactBeatsParameterized(t *testing.T) {
	// The literal entry is registered after the parameterized one and
	// would also match it segment-wise; the literal still wins.
	routes := []router.Route{
		{Pattern: "/event/:id", Name: "detail"},
		{Pattern: "/event/new", Name: "create"},
	}
	route, params, ok := router.Match(routes, "/event/new")
	require.True(t, ok)
	assert.Equal(t, "create", route.Name)
	assert.Empty(t, params)

	route, params, ok = router.Match(routes, "/event/7")
	require.True(t, ok)
	assert.Equal(t, "detail", route.Name)
	assert.Equal(t, "7", params["id"])
}

func TestMatch_SegmentCountMustAgree(t *testing.T) {
	_, _, ok := router.Match(testRoutes(), "/event/42/tickets")
	assert.False(t, ok)

	_, _, ok = router.Match(testRoutes(), "/event")
	assert.False(t, ok)
}

func TestMatch_LiteralSegmentsMustAgree(t *testing.T) {
	_, _, ok := router.Match(testRoutes(), "/even/42")
	assert.False(t, ok)
}
