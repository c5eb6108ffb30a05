// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar counts the transitions of an experiment and redraws
// itself on a writer every few transitions. It implements
// environment.Observer so that it can watch a grid world directly.
//
// ProgressBar does not use concurrency.
type ProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	every           int
	bar             strings.Builder
	startTime       time.Time
}

// New returns a new ProgressBar that is width characters wide, reaches
// 100% after max transitions and is redrawn every every transitions.
func New(out io.Writer, width, max, every int) *ProgressBar {
	if every < 1 {
		every = 1
	}
	return &ProgressBar{
		out:         out,
		width:       width,
		maxProgress: max,
		every:       every,
		startTime:   time.Now(),
	}
}

// Observe increments the progress counter, redrawing the bar if needed
func (p *ProgressBar) Observe(_, _, _ int, _ float64) {
	p.Increment()
	if p.currentProgress%p.every == 0 || p.currentProgress == p.maxProgress {
		p.Display()
	}
}

// Increment increments the interal progress counter
func (p *ProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of the maximum progress reached
func (p *ProgressBar) Progress() float64 {
	if p.maxProgress <= 0 {
		return 1
	}
	return float64(p.currentProgress) / float64(p.maxProgress)
}

func (p *ProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	filled := int(p.Progress() * float64(p.width))
	p.bar.WriteString(strings.Repeat("█", filled))
	p.bar.WriteString(strings.Repeat(" ", p.width-filled))

	p.bar.WriteString(fmt.Sprintf("| [%.2f%% | elapsed: %v]",
		p.Progress()*100, time.Since(p.startTime).Truncate(time.Second)))
	return p.bar.String()
}

// Display redraws the progress bar over the current line
func (p *ProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p)
}

// Close moves the writer to the next line after the bar
func (p *ProgressBar) Close() {
	fmt.Fprintln(p.out)
}
