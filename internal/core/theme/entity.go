package theme

import "weatherview.app/internal/core/render"

// Theme is the colour scheme of the page
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// StorageKey is the preference key the theme is persisted under
	StorageKey = "theme"
	// Attribute is set on the page root
	Attribute = "data-theme"
)

// Parse maps a stored value to a theme. Anything unrecognised is light.
func Parse(raw string) Theme {
	if Theme(raw) == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}

// Render applies the theme to the page root
func Render(t Theme) []render.Instruction {
	return []render.Instruction{render.SetAttr(render.TargetRoot, Attribute, t.String())}
}
