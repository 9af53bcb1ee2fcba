package render

// ElementState is the current state of one page element
type ElementState struct {
	Text    string            `json:"text,omitempty"`
	Visible bool              `json:"visible"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Items   []Item            `json:"items,omitempty"`
}

// Document is an in-memory page: element id to state. It is not safe for
// concurrent use; callers serialize access.
type Document struct {
	elements map[string]*ElementState
}

// NewDocument returns the initial page: content, loading indicator and error
// banner hidden, every other element visible and empty.
func NewDocument() *Document {
	d := &Document{elements: make(map[string]*ElementState)}
	for _, id := range []string{TargetLoading, TargetError, TargetWeatherContent} {
		d.element(id).Visible = false
	}
	return d
}

func (d *Document) element(id string) *ElementState {
	el, ok := d.elements[id]
	if !ok {
		el = &ElementState{Visible: true}
		d.elements[id] = el
	}
	return el
}

// Apply executes instructions in order
func (d *Document) Apply(instructions ...Instruction) {
	for _, in := range instructions {
		el := d.element(in.Target)
		switch in.Op {
		case OpSetText:
			el.Text = in.Text
		case OpSetAttr:
			if el.Attrs == nil {
				el.Attrs = make(map[string]string)
			}
			el.Attrs[in.Attr] = in.Text
		case OpReplaceList:
			el.Items = append([]Item(nil), in.Items...)
		case OpShow:
			el.Visible = true
		case OpHide:
			el.Visible = false
		}
	}
}

// Text returns the text content of an element
func (d *Document) Text(id string) string {
	if el, ok := d.elements[id]; ok {
		return el.Text
	}
	return ""
}

// Visible reports whether an element is displayed
func (d *Document) Visible(id string) bool {
	if el, ok := d.elements[id]; ok {
		return el.Visible
	}
	return true
}

// Attr returns an attribute value of an element
func (d *Document) Attr(id, attr string) string {
	if el, ok := d.elements[id]; ok {
		return el.Attrs[attr]
	}
	return ""
}

// Items returns the list entries of an element
func (d *Document) Items(id string) []Item {
	if el, ok := d.elements[id]; ok {
		return el.Items
	}
	return nil
}

// Clone returns a deep copy safe to hand to other goroutines
func (d *Document) Clone() *Document {
	c := &Document{elements: make(map[string]*ElementState, len(d.elements))}
	for id, el := range d.elements {
		cp := &ElementState{
			Text:    el.Text,
			Visible: el.Visible,
			Items:   append([]Item(nil), el.Items...),
		}
		if el.Attrs != nil {
			cp.Attrs = make(map[string]string, len(el.Attrs))
			for k, v := range el.Attrs {
				cp.Attrs[k] = v
			}
		}
		c.elements[id] = cp
	}
	return c
}

// Elements returns the element states keyed by id
func (d *Document) Elements() map[string]ElementState {
	out := make(map[string]ElementState, len(d.elements))
	for id, el := range d.elements {
		out[id] = *el
	}
	return out
}
