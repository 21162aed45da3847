// Package forms holds the entry forms for each entity: a draft of raw string
// fields, a small editing/submitting state machine, and the submit-time
// validation that blocks bad payloads before they reach the network.
//
// All four forms follow one policy: required numeric fields must parse to a
// strictly positive number, required choice fields must be selected. A failed
// submit emits exactly one error toast, keeps the form editable, and hands
// nothing to the caller.
package forms

import "strconv"

const (
	// Editing is the initial state; the draft may be changed freely.
	Editing State = iota
	// Submitting is entered only after validation passes; the caller either
	// discards the form on success or calls Fail to resume editing.
	Submitting
)

type State int

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "editing"
}

// formatAmount renders a stored number back into an editable field.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
