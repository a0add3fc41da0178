package faq

import (
	"math"
	"unicode/utf8"
)

// Layout describes the answer box used by EstimateHeight. The defaults match
// the .faq__answer rules in the site stylesheet.
type Layout struct {
	Width      float64 // content width in px
	CharWidth  float64 // average glyph advance in px
	LineHeight float64 // px
	Padding    float64 // top plus bottom padding in px
}

// DefaultLayout is the desktop answer box.
var DefaultLayout = Layout{Width: 720, CharWidth: 8.4, LineHeight: 25.6, Padding: 24}

// Estimate returns the content height of text laid out in l, rounded up to
// whole pixels.
func (l Layout) Estimate(text string) float64 {
	perLine := math.Floor(l.Width / l.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := math.Ceil(float64(utf8.RuneCountInString(text)) / perLine)
	if lines < 1 {
		lines = 1
	}
	return math.Ceil(lines*l.LineHeight + l.Padding)
}

// EstimateHeight is the server-side Measurer. The browser replaces these
// values with real scrollHeight measurements after load.
func EstimateHeight(_ int, item Item) float64 {
	return DefaultLayout.Estimate(item.Answer)
}
