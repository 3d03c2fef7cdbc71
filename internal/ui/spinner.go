package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const spinInterval = 80 * time.Millisecond

// Spinner shows an animated status line while a step runs. On writers that
// are not terminals it prints the status once instead of animating.
type Spinner struct {
	w    io.Writer
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// StartSpinner prints text with a spinner and starts animating it.
func StartSpinner(w io.Writer, text string) *Spinner {
	s := &Spinner{w: w}
	if !isTerminal(w) {
		fmt.Fprintln(w, text)
		return s
	}

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(text),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(spinInterval),
		progressbar.OptionClearOnFinish(),
	)
	s.done = make(chan struct{})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
	return s
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success(text string) {
	s.stop()
	Success(s.w, text)
}

// Error stops the spinner and prints a failure line.
func (s *Spinner) Error(text string) {
	s.stop()
	Failure(s.w, text)
}

func (s *Spinner) stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	s.wg.Wait()
	_ = s.bar.Clear()
	s.bar = nil
}
