package favorite

import "weatherview.app/internal/core/render"

const (
	EmptyMessage              = "No favorites yet"
	SaveFailedMessage         = "Could not save favorite"
	DeleteFailedMessage       = "Could not delete favorite"
	InvalidCoordinatesMessage = "Invalid favorite coordinates"

	ActionView   = "view"
	ActionDelete = "delete"
)

// Render replaces the favorites list. Every row carries its own view and
// delete actions; nothing from the previous rendering survives.
func Render(items []Favorite) []render.Instruction {
	if len(items) == 0 {
		return []render.Instruction{
			render.ReplaceList(render.TargetFavoritesList, []render.Item{
				{Class: "favorites__empty", Text: EmptyMessage},
			}),
		}
	}

	rows := make([]render.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, render.Item{
			Class:  "favorites__item",
			Fields: []render.Field{{Class: "favorites__name", Text: it.DisplayName()}},
			Actions: []render.Action{
				{
					Name:  ActionView,
					Label: "View",
					Class: "btn btn--small btn--secondary",
					Data: map[string]string{
						"lat": formatCoordinate(it.Latitude),
						"lon": formatCoordinate(it.Longitude),
					},
				},
				{
					Name:  ActionDelete,
					Label: "Delete",
					Class: "btn btn--small btn--danger",
					Data:  map[string]string{"id": it.ID},
				},
			},
		})
	}

	return []render.Instruction{render.ReplaceList(render.TargetFavoritesList, rows)}
}
