package weather

import (
	"time"

	"weatherview.app/internal/core/render"
)

// Placeholders for readings the backend did not report
const (
	Placeholder         = "--"
	DefaultIcon         = "☁️"
	UnknownPlace        = "Unknown"
	UntitledVideo       = "Untitled Video"
	UnknownChannel      = "Unknown Channel"
	UnknownDate         = "Unknown date"
	NoVideosMessage     = "No local news videos available"
	WatchVideoLabel     = "▶ Watch on YouTube"
	videoDateLayout     = "1/2/2006"
	degreeSuffix        = "°"
	percentSuffix       = "%"
	videoCardClass      = "video-card"
	videoEmptyClass     = "videos__empty"
	videoThumbnailClass = "video-card__thumbnail"
	videoLinkClass      = "video-card__link"
)

// Render projects a summary onto the weather page. It never fails: missing
// readings degrade to placeholders, and every list is rebuilt from scratch.
// Showing the content block is left to the caller.
func Render(s *Summary) []render.Instruction {
	if s == nil {
		s = &Summary{}
	}
	cur := s.Current
	if cur == nil {
		cur = &Current{}
	}

	return []render.Instruction{
		render.SetText(render.TargetPlace, DisplayPlace(s)),
		render.SetText(render.TargetDate, or(s.Date, Placeholder)),
		render.SetText(render.TargetCurrentIcon, or(cur.Icon, DefaultIcon)),
		render.SetText(render.TargetCurrentTemp, or(cur.Temp, Placeholder)+degreeSuffix),
		render.SetText(render.TargetFeelsLike, or(cur.FeelsLike, Placeholder)+degreeSuffix),
		render.SetText(render.TargetHumidity, or(cur.Humidity, Placeholder)+percentSuffix),
		render.SetText(render.TargetWind, or(cur.Wind, Placeholder)),
		render.SetText(render.TargetPrecip, or(cur.Precip, Placeholder)),
		render.ReplaceList(render.TargetDailyList, dailyItems(s.Daily)),
		render.ReplaceList(render.TargetHourlyList, hourlyItems(s.Hourly)),
		render.ReplaceList(render.TargetVideosList, videoItems(s.Videos)),
	}
}

// DisplayPlace is the place heading shown for a summary
func DisplayPlace(s *Summary) string {
	if s == nil {
		return UnknownPlace
	}
	return or(s.Place, UnknownPlace)
}

func dailyItems(days []Day) []render.Item {
	items := make([]render.Item, 0, len(days))
	for _, d := range days {
		items = append(items, render.Item{
			Class: "day",
			Fields: []render.Field{
				{Class: "day__name", Text: or(d.Name, Placeholder)},
				{Class: "day__icon", Text: or(d.Icon, DefaultIcon), Decorative: true},
				{Class: "day__hi", Text: or(d.Hi, Placeholder) + degreeSuffix, Strong: true},
				{Class: "day__lo", Text: or(d.Lo, Placeholder) + degreeSuffix},
			},
		})
	}
	return items
}

func hourlyItems(hours []Hour) []render.Item {
	items := make([]render.Item, 0, len(hours))
	for _, h := range hours {
		items = append(items, render.Item{
			Class: "hour",
			Fields: []render.Field{
				{Class: "hour__time", Text: or(h.Time, Placeholder)},
				{Class: "hour__icon", Text: or(h.Icon, DefaultIcon), Decorative: true},
				{Class: "hour__temp", Text: or(h.Temp, Placeholder) + degreeSuffix},
			},
		})
	}
	return items
}

func videoItems(videos []Video) []render.Item {
	if len(videos) == 0 {
		return []render.Item{{Class: videoEmptyClass, Text: NoVideosMessage}}
	}

	items := make([]render.Item, 0, len(videos))
	for _, v := range videos {
		item := render.Item{
			Class: videoCardClass,
			Fields: []render.Field{
				{Class: "video-card__title", Text: or(v.Title, UntitledVideo)},
				{Class: "video-card__channel", Text: or(v.ChannelTitle, UnknownChannel)},
				{Class: "video-card__date", Text: publishedDate(v.PublishedAt)},
			},
			Link: &render.Link{Href: v.URL, Label: WatchVideoLabel, Class: videoLinkClass},
		}
		if v.ThumbnailURL != "" {
			item.Image = &render.Image{Src: v.ThumbnailURL, Alt: v.Title, Class: videoThumbnailClass}
		}
		items = append(items, item)
	}
	return items
}

func publishedDate(raw string) string {
	if raw == "" {
		return UnknownDate
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(videoDateLayout)
		}
	}
	return UnknownDate
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
