package item

// DisplayItem is the human-readable form of one loaded entity. The selection
// action closes over the exact entity the item was derived from, so a
// consumer can route a selection without knowing the entity kind.
type DisplayItem struct {
	Title    string
	Subtitle string
	onSelect func()
}

// NewDisplayItem builds a DisplayItem. A nil onSelect makes Select a no-op.
func NewDisplayItem(title, subtitle string, onSelect func()) DisplayItem {
	return DisplayItem{Title: title, Subtitle: subtitle, onSelect: onSelect}
}

// Select runs the selection action bound at construction time.
func (d DisplayItem) Select() {
	if d.onSelect != nil {
		d.onSelect()
	}
}
