package api

import (
	"embed"
	"html/template"
	"net/url"
	"slices"
	"strconv"

	"weatherview.app/internal/core/render"
	"weatherview.app/internal/core/theme"
	"weatherview.app/internal/core/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index.html"

var pageFuncs = template.FuncMap{
	"deletePath": func(id string) string {
		return "/favorites/" + url.PathEscape(id) + "/delete"
	},
}

// forecastLengths are the choices of the days selector; 0 leaves the
// length to the backend
var forecastLengths = []int{0, 3, 5, 7, 10, 14}

type dayOption struct {
	Value    int
	Label    string
	Selected bool
}

// pageData is the template model of one page render
type pageData struct {
	Theme       string
	ThemeToggle string
	DayOptions  []dayOption
	Visibility  view.Visibility

	Place       string
	Date        string
	CurrentIcon string
	CurrentTemp string
	FeelsLike   string
	Humidity    string
	Wind        string
	Precip      string

	Daily     []render.Item
	Hourly    []render.Item
	Videos    []render.Item
	Favorites []render.Item
}

func newPageData(snap view.Snapshot) pageData {
	doc := snap.Document
	if doc == nil {
		doc = render.NewDocument()
	}

	data := pageData{
		Theme:       doc.Attr(render.TargetRoot, theme.Attribute),
		ThemeToggle: "🌙",
		DayOptions:  dayOptions(snap.Days),
		Visibility:  snap.Visibility,
		Place:       doc.Text(render.TargetPlace),
		Date:        doc.Text(render.TargetDate),
		CurrentIcon: doc.Text(render.TargetCurrentIcon),
		CurrentTemp: doc.Text(render.TargetCurrentTemp),
		FeelsLike:   doc.Text(render.TargetFeelsLike),
		Humidity:    doc.Text(render.TargetHumidity),
		Wind:        doc.Text(render.TargetWind),
		Precip:      doc.Text(render.TargetPrecip),
		Daily:       doc.Items(render.TargetDailyList),
		Hourly:      doc.Items(render.TargetHourlyList),
		Videos:      doc.Items(render.TargetVideosList),
		Favorites:   doc.Items(render.TargetFavoritesList),
	}
	if data.Theme == "" {
		data.Theme = snap.Theme
	}
	if data.Theme == theme.Dark.String() {
		data.ThemeToggle = "☀️"
	}
	return data
}

func dayOptions(selected int) []dayOption {
	lengths := forecastLengths
	if !slices.Contains(lengths, selected) {
		lengths = append(slices.Clone(lengths), selected)
		slices.Sort(lengths)
	}

	opts := make([]dayOption, 0, len(lengths))
	for _, n := range lengths {
		label := "Default"
		if n > 0 {
			label = strconv.Itoa(n) + " days"
		}
		opts = append(opts, dayOption{Value: n, Label: label, Selected: n == selected})
	}
	return opts
}
