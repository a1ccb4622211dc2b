package progress

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Expected Model, got %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelProgress(t *testing.T) {
	m := New("render", 200, nil)
	if m.Init() != nil {
		t.Error("Expected no initial command")
	}
	if m.Fraction() != 0 {
		t.Errorf("Expected fraction 0, got %v", m.Fraction())
	}

	m, cmd := update(t, m, Msg{Done: 100, Total: 200})
	if cmd != nil {
		t.Error("Expected no command for a progress message")
	}
	if m.Fraction() != 0.5 {
		t.Errorf("Expected fraction 0.5, got %v", m.Fraction())
	}

	view := m.View()
	if !strings.Contains(view, "render [") || !strings.Contains(view, " 50.0%") {
		t.Errorf("Unexpected view %q", view)
	}
	if got := strings.Count(view, "█"); got != defaultBarWidth/2 {
		t.Errorf("Expected %d filled cells, got %d", defaultBarWidth/2, got)
	}
}

func TestModelFinished(t *testing.T) {
	m := New("render", 10, nil)
	m, cmd := update(t, m, FinishedMsg{})
	if !isQuit(cmd) {
		t.Error("Expected quit after finishing")
	}
	if m.Fraction() != 1 {
		t.Errorf("Expected fraction 1, got %v", m.Fraction())
	}
	if !strings.Contains(m.View(), "done in") {
		t.Errorf("Expected completion in view, got %q", m.View())
	}
}

func TestModelFinishedWithError(t *testing.T) {
	failure := errors.New("boom")
	m, cmd := update(t, New("render", 10, nil), FinishedMsg{Err: failure})
	if !isQuit(cmd) {
		t.Error("Expected quit after failure")
	}
	if !errors.Is(m.Err(), failure) {
		t.Errorf("Expected %v, got %v", failure, m.Err())
	}
	if !strings.Contains(m.View(), "failed: boom") {
		t.Errorf("Expected failure in view, got %q", m.View())
	}
}

func TestModelInterrupt(t *testing.T) {
	called := false
	m := New("render", 10, func() { called = true })

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("Expected quit on ctrl+c")
	}
	if !called {
		t.Error("Expected cancel to be called")
	}
	if !m.Cancelled() {
		t.Error("Expected model to be cancelled")
	}
	if !strings.Contains(m.View(), "cancelled") {
		t.Errorf("Expected cancellation in view, got %q", m.View())
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m, cmd := update(t, New("render", 10, nil), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil || m.Cancelled() {
		t.Error("Expected other keys to be ignored")
	}
}

func TestModelWindowSize(t *testing.T) {
	m, _ := update(t, New("render", 10, nil), tea.WindowSizeMsg{Width: 20, Height: 10})
	if m.barWidth != minBarWidth {
		t.Errorf("Expected bar width %d, got %d", minBarWidth, m.barWidth)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 10})
	if m.barWidth != defaultBarWidth {
		t.Errorf("Expected bar width %d, got %d", defaultBarWidth, m.barWidth)
	}
}

func TestReporterThrottles(t *testing.T) {
	var msgs []Msg
	r := NewReporter(func(msg tea.Msg) { msgs = append(msgs, msg.(Msg)) }, 1000)

	for done := 1; done <= 1000; done++ {
		r.Report(done, 1000)
	}

	if len(msgs) != 101 {
		t.Errorf("Expected 101 messages, got %d", len(msgs))
	}
	if last := msgs[len(msgs)-1]; last.Done != 1000 || last.Total != 1000 {
		t.Errorf("Expected final message 1000/1000, got %+v", last)
	}
}

func TestReporterSmallRender(t *testing.T) {
	count := 0
	r := NewReporter(func(tea.Msg) { count++ }, 5)
	for done := 1; done <= 5; done++ {
		r.Report(done, 5)
	}
	if count != 5 {
		t.Errorf("Expected every pixel reported, got %d", count)
	}
}

func TestReporterConcurrent(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}
	r := NewReporter(func(msg tea.Msg) {
		mu.Lock()
		defer mu.Unlock()
		seen[msg.(Msg).Done] = true
	}, 400)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for done := w*100 + 1; done <= (w+1)*100; done++ {
				r.Report(done, 400)
			}
		}(w)
	}
	wg.Wait()

	if !seen[400] {
		t.Error("Expected the final count to be reported")
	}
}
