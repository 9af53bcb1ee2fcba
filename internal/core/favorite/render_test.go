package favorite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/core/render"
)

func TestRender_Empty(t *testing.T) {
	instructions := Render(nil)

	require.Len(t, instructions, 1)
	assert.Equal(t, render.TargetFavoritesList, instructions[0].Target)
	require.Len(t, instructions[0].Items, 1)
	assert.Equal(t, EmptyMessage, instructions[0].Items[0].Text)
}

func TestRender_Items(t *testing.T) {
	lat, lon := 48.85, 2.35
	instructions := Render([]Favorite{
		{ID: "1", Place: "Paris", Latitude: &lat, Longitude: &lon},
		{ID: "2", LocationID: "loc-7"},
	})

	require.Len(t, instructions, 1)
	items := instructions[0].Items
	require.Len(t, items, 2)

	assert.Equal(t, "Paris", items[0].Fields[0].Text)
	require.Len(t, items[0].Actions, 2)
	view, del := items[0].Actions[0], items[0].Actions[1]
	assert.Equal(t, ActionView, view.Name)
	assert.Equal(t, "48.85", view.Data["lat"])
	assert.Equal(t, "2.35", view.Data["lon"])
	assert.Equal(t, ActionDelete, del.Name)
	assert.Equal(t, "1", del.Data["id"])

	assert.Equal(t, "loc-7", items[1].Fields[0].Text)
	assert.Equal(t, "", items[1].Actions[0].Data["lat"])
	assert.Equal(t, "2", items[1].Actions[1].Data["id"])
}
