package selector

import (
	"strings"
	"unicode"
)

// Option is a selectable item shown in the filtered list.
type Option struct {
	Label string // Text shown to the operator and matched by the filter
	ID    string // Opaque identifier returned on selection
}

// KeyType identifies the kind of key event fed into the state machine
type KeyType int

const (
	// KeyRune is a character key; the character is carried in Key.Rune
	KeyRune KeyType = iota
	// KeyUp moves the cursor to the previous item
	KeyUp
	// KeyDown moves the cursor to the next item
	KeyDown
	// KeyBackspace removes the last character of the search text
	KeyBackspace
	// KeyEnter confirms the item under the cursor
	KeyEnter
	// KeyEscape cancels the selection
	KeyEscape
)

// Key is a single operator keystroke, independent of any terminal backend.
type Key struct {
	Type KeyType
	Rune rune
}

// Predefined non-character keys
var (
	Up        = Key{Type: KeyUp}
	Down      = Key{Type: KeyDown}
	Backspace = Key{Type: KeyBackspace}
	Enter     = Key{Type: KeyEnter}
	Escape    = Key{Type: KeyEscape}
)

// RuneKey returns the key event for typing r.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Status is the lifecycle state of a selector session.
type Status int

const (
	// StatusActive means the selector is waiting for more input
	StatusActive Status = iota
	// StatusSelected means the operator confirmed an item
	StatusSelected
	// StatusCancelled means the operator pressed Escape
	StatusCancelled
)

// String returns a human-readable status name
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSelected:
		return "selected"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminated reports whether the session has ended.
func (s Status) Terminated() bool {
	return s == StatusSelected || s == StatusCancelled
}

// Outcome is returned by State.Apply after every keystroke.
type Outcome struct {
	Status Status
	ID     string // Identifier of the confirmed option (StatusSelected only)
}

// Filter returns the options whose label contains search as a
// case-insensitive substring, in their original order.
func Filter(options []Option, search string) []Option {
	query := strings.ToLower(search)
	filtered := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), query) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// State is the selector state for one interactive session.
// The option list is never mutated; only search text and cursor change.
type State struct {
	options  []Option
	search   string
	filtered []Option
	cursor   int
	status   Status
	selected string
}

// New creates a fresh selector state over options with an empty search.
func New(options []Option) *State {
	s := &State{options: options}
	s.refilter()
	return s
}

// Search returns the current search text
func (s *State) Search() string { return s.search }

// Filtered returns the current filtered view
func (s *State) Filtered() []Option { return s.filtered }

// Cursor returns the cursor index into the filtered view
func (s *State) Cursor() int { return s.cursor }

// Status returns the lifecycle status
func (s *State) Status() Status { return s.status }

// Empty reports whether the filtered view has no items.
func (s *State) Empty() bool { return len(s.filtered) == 0 }

// Current returns the option under the cursor, if any.
func (s *State) Current() (Option, bool) {
	if s.Empty() {
		return Option{}, false
	}
	return s.filtered[s.cursor], true
}

// Apply processes one keystroke and returns the resulting outcome.
// Keys received after the session terminated are ignored.
func (s *State) Apply(k Key) Outcome {
	if s.status.Terminated() {
		return s.outcome()
	}

	switch k.Type {
	case KeyUp:
		if n := len(s.filtered); n > 0 {
			s.cursor = (s.cursor - 1 + n) % n
		}

	case KeyDown:
		if n := len(s.filtered); n > 0 {
			s.cursor = (s.cursor + 1) % n
		}

	case KeyBackspace:
		if s.search != "" {
			r := []rune(s.search)
			s.search = string(r[:len(r)-1])
			s.refilter()
		}

	case KeyEnter:
		if opt, ok := s.Current(); ok {
			s.status = StatusSelected
			s.selected = opt.ID
		}

	case KeyEscape:
		s.status = StatusCancelled

	case KeyRune:
		// Control codes never reach the search text
		if unicode.IsPrint(k.Rune) {
			s.search += string(k.Rune)
			s.refilter()
		}
	}

	return s.outcome()
}

// refilter recomputes the filtered view and re-derives the cursor.
// A cursor that still fits the new view keeps its index; otherwise it
// is clamped back to the first row.
func (s *State) refilter() {
	s.filtered = Filter(s.options, s.search)
	if s.cursor >= len(s.filtered) || s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *State) outcome() Outcome {
	return Outcome{Status: s.status, ID: s.selected}
}
