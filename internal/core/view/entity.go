package view

import "weatherview.app/internal/core/render"

// ErrorPrefix starts every error banner message
const ErrorPrefix = "Error: "

// Visibility is the state of the three mutually dependent page regions
type Visibility struct {
	Loading        bool   `json:"loading"`
	ErrorVisible   bool   `json:"error_visible"`
	ErrorText      string `json:"error_text,omitempty"`
	ContentVisible bool   `json:"content_visible"`
}

// Snapshot is a point-in-time copy of the page
type Snapshot struct {
	Theme        string           `json:"theme"`
	Days         int              `json:"days"`
	CurrentPlace string           `json:"current_place,omitempty"`
	Visibility   Visibility       `json:"visibility"`
	Document     *render.Document `json:"-"`
}

func visibilityOf(d *render.Document) Visibility {
	v := Visibility{
		Loading:        d.Visible(render.TargetLoading),
		ErrorVisible:   d.Visible(render.TargetError),
		ContentVisible: d.Visible(render.TargetWeatherContent),
	}
	if v.ErrorVisible {
		v.ErrorText = d.Text(render.TargetErrorMessage)
	}
	return v
}
