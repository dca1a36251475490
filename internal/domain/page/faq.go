package page

// FAQEntry is the static content of one question/answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQItem is an entry together with its open state.
type FAQItem struct {
	FAQEntry
	Open bool
}

// Accordion holds the FAQ items. At most one item is open at any time.
type Accordion struct {
	items []FAQItem
}

// NewAccordion builds an accordion with every item closed.
func NewAccordion(entries []FAQEntry) *Accordion {
	items := make([]FAQItem, len(entries))
	for i, entry := range entries {
		items[i] = FAQItem{FAQEntry: entry}
	}
	return &Accordion{items: items}
}

// Toggle closes every item and then opens the one at index unless it was the
// open one. Clicking the open item therefore collapses everything. It reports
// false for an index outside the accordion.
func (a *Accordion) Toggle(index int) bool {
	if index < 0 || index >= len(a.items) {
		return false
	}

	wasOpen := a.items[index].Open
	for i := range a.items {
		a.items[i].Open = false
	}
	if !wasOpen {
		a.items[index].Open = true
	}

	return true
}

// OpenIndex returns the index of the open item, if any.
func (a *Accordion) OpenIndex() (int, bool) {
	for i, item := range a.items {
		if item.Open {
			return i, true
		}
	}
	return -1, false
}

// IsOpen reports whether the item at index is open.
func (a *Accordion) IsOpen(index int) bool {
	if index < 0 || index >= len(a.items) {
		return false
	}
	return a.items[index].Open
}

// Len returns the number of items.
func (a *Accordion) Len() int {
	return len(a.items)
}

// Items returns a copy of the items.
func (a *Accordion) Items() []FAQItem {
	out := make([]FAQItem, len(a.items))
	copy(out, a.items)
	return out
}
