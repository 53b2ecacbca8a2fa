// Package selector provides the interactive filtered list used to pick a
// FusionAuth group during user onboarding.
//
// # Architecture
//
// The package is split in two layers:
//
//   - State: a pure state machine holding the search text, the filtered
//     view and the cursor. It knows nothing about terminals and is driven
//     by Key values through State.Apply.
//   - Model: a Bubble Tea model that translates tea.KeyMsg into Key values,
//     feeds them to State, and renders the current view with Lip Gloss.
//
// # Filtering
//
// The visible rows are exactly the options whose label contains the search
// text as a case-insensitive substring, in their original order:
//
//	selector.Filter(options, "team")
//
// # Keys
//
//	↑ / ctrl+p   previous row (wraps to the last row)
//	↓ / ctrl+n   next row (wraps to the first row)
//	backspace    remove the last filter character
//	enter        select the highlighted row (ignored when nothing matches)
//	esc          cancel
//	ctrl+c       abort the whole command (Run returns ErrInterrupted)
//
// Any other printable character is appended to the filter.
//
// # Usage
//
//	result, err := selector.Run(options, &selector.RunOptions{
//	    Title: "Type to filter, press Enter to select a group:",
//	})
//	if err != nil {
//	    return err
//	}
//	if !result.Selected {
//	    // operator cancelled
//	}
package selector
