package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the refresh frequency of the generation
// spinner. 200ms keeps terminal updates cheap without looking frozen.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner so that the
// generation loop is decoupled from a specific spinner implementation,
// facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner wraps `spinner.Spinner` to implement the Spinner
// interface. The adapter allows the spinner library to be swapped out
// in tests.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// StartGenerationSpinner starts a spinner describing the batch being
// generated. It returns a stop function that halts the animation; the
// stop function is safe to call exactly once.
//
// Parameters:
//   - out: The writer the spinner animates on (usually stderr).
//   - count: The number of integers being generated.
//   - bits: The requested bit length per integer.
//
// Returns:
//   - func(): A function that stops the spinner.
func StartGenerationSpinner(out io.Writer, count, bits int) func() {
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" generating %d random integers of %d bits...", count, bits))
	sp.Start()
	return sp.Stop
}
