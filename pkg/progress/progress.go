// Package progress shows render progress in the terminal as a bubbletea
// program.
package progress

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBarWidth = 40
	minBarWidth     = 10
)

// Msg reports how many pixels are finished
type Msg struct {
	Done, Total int
}

// FinishedMsg ends the program once the render has returned
type FinishedMsg struct {
	Err error
}

// Model is the bubbletea model of a single render
type Model struct {
	title    string
	done     int
	total    int
	barWidth int
	started  time.Time
	elapsed  time.Duration

	finished  bool
	cancelled bool
	err       error
	cancel    context.CancelFunc
}

// New creates a model for a render of total pixels. cancel is called when
// the user interrupts the render and may be nil.
func New(title string, total int, cancel context.CancelFunc) Model {
	return Model{
		title:    title,
		total:    total,
		barWidth: defaultBarWidth,
		started:  time.Now(),
		cancel:   cancel,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Msg:
		m.done = msg.Done
		if msg.Total > 0 {
			m.total = msg.Total
		}
		m.elapsed = time.Since(m.started)
		return m, nil

	case FinishedMsg:
		m.finished = true
		m.err = msg.Err
		m.elapsed = time.Since(m.started)
		if msg.Err == nil {
			m.done = m.total
		}
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// leave room for the title and the percentage
		m.barWidth = max(minBarWidth, min(defaultBarWidth, msg.Width-len(m.title)-12))
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	filled := int(m.Fraction() * float64(m.barWidth))
	fmt.Fprintf(&b, "%s [%s%s] %5.1f%%",
		m.title,
		strings.Repeat("█", filled),
		strings.Repeat("░", m.barWidth-filled),
		m.Fraction()*100)

	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "\nfailed: %v", m.err)
	case m.cancelled:
		b.WriteString("\ncancelled")
	case m.finished:
		fmt.Fprintf(&b, "  done in %v", m.elapsed.Round(time.Millisecond))
	case m.done > 0:
		fmt.Fprintf(&b, "  %v elapsed, ~%v left", m.elapsed.Round(time.Second), m.remaining().Round(time.Second))
	}

	b.WriteString("\n")
	return b.String()
}

// Fraction is the finished share of the render in [0, 1]
func (m Model) Fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(1, max(0, float64(m.done)/float64(m.total)))
}

// Cancelled reports whether the user interrupted the render
func (m Model) Cancelled() bool { return m.cancelled }

// Err returns the error the render finished with, if any
func (m Model) Err() error { return m.err }

func (m Model) remaining() time.Duration {
	if m.done <= 0 {
		return 0
	}
	perPixel := m.elapsed / time.Duration(m.done)
	return perPixel * time.Duration(m.total-m.done)
}

// Reporter forwards render progress to a program, at most once per
// percent. Report is safe for concurrent use by render workers.
type Reporter struct {
	send func(tea.Msg)
	step int64
	last atomic.Int64
}

// NewReporter creates a reporter for a render of total pixels; send is
// usually (*tea.Program).Send
func NewReporter(send func(tea.Msg), total int) *Reporter {
	r := &Reporter{send: send, step: max(1, int64(total)/100)}
	r.last.Store(-1)
	return r
}

// Report matches renderer.ProgressFunc
func (r *Reporter) Report(done, total int) {
	bucket := int64(done) / r.step
	if done == total {
		bucket = int64(total)/r.step + 1
	}
	for {
		last := r.last.Load()
		if bucket <= last {
			return
		}
		if r.last.CompareAndSwap(last, bucket) {
			r.send(Msg{Done: done, Total: total})
			return
		}
	}
}
