// Package render describes page updates as plain data. Domain code produces
// instruction lists; a Document applies them, so the projection from weather
// data to page content can be tested without a browser.
package render

// Element ids of the weather page
const (
	TargetRoot           = "root"
	TargetLoading        = "loading"
	TargetError          = "error"
	TargetErrorMessage   = "errorMessage"
	TargetWeatherContent = "weatherContent"
	TargetPlace          = "place"
	TargetDate           = "date"
	TargetCurrentIcon    = "currentIcon"
	TargetCurrentTemp    = "currentTemp"
	TargetFeelsLike      = "feelsLike"
	TargetHumidity       = "humidity"
	TargetWind           = "wind"
	TargetPrecip         = "precip"
	TargetDailyList      = "dailyList"
	TargetHourlyList     = "hourlyList"
	TargetVideosList     = "videosList"
	TargetFavoritesList  = "favoritesList"
)

// Op is the kind of update an instruction performs
type Op string

const (
	OpSetText     Op = "set_text"
	OpSetAttr     Op = "set_attr"
	OpReplaceList Op = "replace_list"
	OpShow        Op = "show"
	OpHide        Op = "hide"
)

// Instruction is one update against a page element
type Instruction struct {
	Op     Op     `json:"op"`
	Target string `json:"target"`
	Text   string `json:"text,omitempty"`
	Attr   string `json:"attr,omitempty"`
	Items  []Item `json:"items,omitempty"`
}

// Item is a rendered list entry
type Item struct {
	Class   string   `json:"class"`
	Text    string   `json:"text,omitempty"`
	Fields  []Field  `json:"fields,omitempty"`
	Image   *Image   `json:"image,omitempty"`
	Link    *Link    `json:"link,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

// Field is a text node inside a list item
type Field struct {
	Class  string `json:"class"`
	Text   string `json:"text"`
	Strong bool   `json:"strong,omitempty"`
	// Decorative fields are hidden from assistive technology
	Decorative bool `json:"decorative,omitempty"`
}

type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Class string `json:"class"`
}

type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
	Class string `json:"class"`
}

// Action is a button bound to a list item. Data carries the values the
// handler needs (coordinates for "view", id for "delete").
type Action struct {
	Name  string            `json:"name"`
	Label string            `json:"label"`
	Class string            `json:"class"`
	Data  map[string]string `json:"data,omitempty"`
}

func SetText(target, text string) Instruction {
	return Instruction{Op: OpSetText, Target: target, Text: text}
}

func SetAttr(target, attr, value string) Instruction {
	return Instruction{Op: OpSetAttr, Target: target, Attr: attr, Text: value}
}

func ReplaceList(target string, items []Item) Instruction {
	if items == nil {
		items = []Item{}
	}
	return Instruction{Op: OpReplaceList, Target: target, Items: items}
}

func Show(target string) Instruction {
	return Instruction{Op: OpShow, Target: target}
}

func Hide(target string) Instruction {
	return Instruction{Op: OpHide, Target: target}
}
