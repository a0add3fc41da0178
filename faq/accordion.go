package faq

import (
	"fmt"
	"strconv"
)

// None is the open index when every item is collapsed.
const None = -1

// Toggle icons.
const (
	IconOpen   = "×"
	IconClosed = "+"
)

// Measurer returns the natural content height of an item's answer in pixels.
type Measurer func(i int, item Item) float64

// Accordion is the render state for one FAQ list.
type Accordion struct {
	items   []Item
	open    int
	heights []float64
}

// New returns an accordion over items with everything collapsed.
func New(items []Item) *Accordion {
	return &Accordion{items: items, open: None}
}

// Len returns the number of items.
func (a *Accordion) Len() int { return len(a.items) }

// Items returns the items in display order.
func (a *Accordion) Items() []Item { return a.items }

// OpenIndex returns the open item, or None.
func (a *Accordion) OpenIndex() int { return a.open }

// Next returns the open index Toggle(i) would produce.
func (a *Accordion) Next(i int) int {
	a.mustIndex(i)
	if a.open == i {
		return None
	}
	return i
}

// Toggle collapses item i when it is open and opens it otherwise. An index
// outside the item list panics.
func (a *Accordion) Toggle(i int) {
	a.open = a.Next(i)
}

// Open sets the open index directly. None collapses everything.
func (a *Accordion) Open(i int) {
	if i != None {
		a.mustIndex(i)
	}
	a.open = i
}

// Measure runs the one-time measurement pass. It reports whether heights
// were recorded; every call after the first is a no-op returning false.
func (a *Accordion) Measure(m Measurer) bool {
	if a.heights != nil {
		return false
	}
	heights := make([]float64, len(a.items))
	for i, item := range a.items {
		heights[i] = m(i, item)
	}
	a.heights = heights
	return true
}

// Measured reports whether the measurement pass has run.
func (a *Accordion) Measured() bool { return a.heights != nil }

// Height returns the rendered answer height of item i: its measured height
// while open, otherwise 0. An open item that has not been measured yet
// also renders at 0.
func (a *Accordion) Height(i int) float64 {
	a.mustIndex(i)
	if i != a.open || a.heights == nil {
		return 0
	}
	return a.heights[i]
}

// Expanded reports whether item i is the open item.
func (a *Accordion) Expanded(i int) bool {
	a.mustIndex(i)
	return i == a.open
}

// QuestionID is the element id of item i's toggle control.
func QuestionID(i int) string { return "faq-question-" + strconv.Itoa(i) }

// AnswerID is the element id of item i's answer region.
func AnswerID(i int) string { return "faq-answer-" + strconv.Itoa(i) }

// ItemView is the render model of one item.
type ItemView struct {
	Index      int     `json:"index"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Expanded   bool    `json:"expanded"`
	Height     float64 `json:"height"`
	Icon       string  `json:"icon"`
	Target     int     `json:"target"`
	QuestionID string  `json:"question_id"`
	AnswerID   string  `json:"answer_id"`
}

// View returns the render model for every item in display order.
func (a *Accordion) View() []ItemView {
	views := make([]ItemView, len(a.items))
	for i, item := range a.items {
		icon := IconClosed
		if a.Expanded(i) {
			icon = IconOpen
		}
		views[i] = ItemView{
			Index:      i,
			Question:   item.Question,
			Answer:     item.Answer,
			Expanded:   a.Expanded(i),
			Height:     a.Height(i),
			Icon:       icon,
			Target:     a.Next(i),
			QuestionID: QuestionID(i),
			AnswerID:   AnswerID(i),
		}
	}
	return views
}

func (a *Accordion) mustIndex(i int) {
	if i < 0 || i >= len(a.items) {
		panic(fmt.Sprintf("faq: index %d out of range [0,%d)", i, len(a.items)))
	}
}
