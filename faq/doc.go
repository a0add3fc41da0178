// Package faq implements the single-open FAQ accordion.
//
// An Accordion holds at most one open item. Toggle flips an item: toggling
// the open item collapses everything, toggling any other item opens it and
// implicitly closes the previous one. The rendered height of an answer is
// its measured natural height while open and 0 while closed, which lets the
// page animate between the two. Heights are measured once per accordion; an
// item opened before that pass renders at height 0.
//
//	acc := faq.New(faq.DefaultItems())
//	acc.Measure(faq.EstimateHeight)
//	acc.Toggle(0)
//	views := acc.View()
//
// An Accordion belongs to a single render and is not safe for concurrent use.
package faq
