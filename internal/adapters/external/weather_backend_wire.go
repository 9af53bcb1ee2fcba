package external

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"weatherview.app/internal/ports"
)

// reading is a display value that the backend may send as a string, a number
// or null. Anything else decodes to empty so one bad field cannot fail the
// whole summary.
type reading string

func (r *reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = ""
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*r = reading(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		// integers keep their digits; ids may exceed float64 precision
		if !strings.ContainsAny(n.String(), ".eE") {
			*r = reading(n.String())
			return nil
		}
		if f, err := n.Float64(); err == nil {
			*r = reading(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
	return nil
}

func (r reading) String() string {
	return string(r)
}

// coordinate accepts a number or a numeric string; anything else is absent
type coordinate struct {
	value *float64
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	c.value = nil
	var raw reading
	if err := raw.UnmarshalJSON(data); err != nil {
		return nil
	}
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		c.value = &f
	}
	return nil
}

type summaryResponse struct {
	Place   reading             `json:"place"`
	Date    reading             `json:"date"`
	Current *currentResponse    `json:"current"`
	Daily   list[dayResponse]   `json:"daily"`
	Hourly  list[hourResponse]  `json:"hourly"`
	Videos  list[videoResponse] `json:"videos"`
}

// list decodes a JSON array and ignores any other value
type list[T any] []T

func (l *list[T]) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	*l = items
	return nil
}

type currentResponse struct {
	Icon      reading `json:"icon"`
	Temp      reading `json:"temp"`
	FeelsLike reading `json:"feels_like"`
	Humidity  reading `json:"humidity"`
	Wind      reading `json:"wind"`
	Precip    reading `json:"precip"`
}

func (c *currentResponse) UnmarshalJSON(data []byte) error {
	type plain currentResponse
	if d := bytes.TrimSpace(data); len(d) == 0 || d[0] != '{' {
		return nil
	}
	return json.Unmarshal(data, (*plain)(c))
}

type dayResponse struct {
	Name reading `json:"name"`
	Icon reading `json:"icon"`
	Hi   reading `json:"hi"`
	Lo   reading `json:"lo"`
}

type hourResponse struct {
	Time reading `json:"time"`
	Icon reading `json:"icon"`
	Temp reading `json:"temp"`
}

type videoResponse struct {
	Title        reading `json:"title"`
	ChannelTitle reading `json:"channel_title"`
	PublishedAt  reading `json:"published_at"`
	ThumbnailURL reading `json:"thumbnail_url"`
	URL          reading `json:"url"`
}

type favoriteResponse struct {
	ID         reading    `json:"id"`
	Place      reading    `json:"place"`
	LocationID reading    `json:"location_id"`
	Latitude   coordinate `json:"latitude"`
	Longitude  coordinate `json:"longitude"`
}

type createFavoriteRequest struct {
	Q string `json:"q"`
}

func (s summaryResponse) toPorts() *ports.SummaryData {
	data := &ports.SummaryData{
		Place: s.Place.String(),
		Date:  s.Date.String(),
	}

	if s.Current != nil {
		data.Current = &ports.CurrentData{
			Icon:      s.Current.Icon.String(),
			Temp:      s.Current.Temp.String(),
			FeelsLike: s.Current.FeelsLike.String(),
			Humidity:  s.Current.Humidity.String(),
			Wind:      s.Current.Wind.String(),
			Precip:    s.Current.Precip.String(),
		}
	}
	for _, d := range s.Daily {
		data.Daily = append(data.Daily, ports.DayData{
			Name: d.Name.String(), Icon: d.Icon.String(), Hi: d.Hi.String(), Lo: d.Lo.String(),
		})
	}
	for _, h := range s.Hourly {
		data.Hourly = append(data.Hourly, ports.HourData{
			Time: h.Time.String(), Icon: h.Icon.String(), Temp: h.Temp.String(),
		})
	}
	for _, v := range s.Videos {
		data.Videos = append(data.Videos, ports.VideoData{
			Title:        v.Title.String(),
			ChannelTitle: v.ChannelTitle.String(),
			PublishedAt:  v.PublishedAt.String(),
			ThumbnailURL: v.ThumbnailURL.String(),
			URL:          v.URL.String(),
		})
	}

	return data
}

func (f favoriteResponse) toPorts() ports.FavoriteData {
	return ports.FavoriteData{
		ID:         f.ID.String(),
		Place:      f.Place.String(),
		LocationID: f.LocationID.String(),
		Latitude:   f.Latitude.value,
		Longitude:  f.Longitude.value,
	}
}
