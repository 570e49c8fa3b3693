package tui

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets   int
	titles   int
	frames   []core.InputFrame
	endAfter int // Report game over on this step, 0 for never
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { g.titles++; return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	in.Actions = maps.Clone(in.Actions)
	g.frames = append(g.frames, in)
	state := core.GameState{Frame: len(g.frames)}
	if g.endAfter > 0 && len(g.frames) >= g.endAfter {
		state.GameOver = true
		return core.StepResult{State: state, Events: []core.Event{{Kind: core.EventPlayerHit}}}
	}
	return core.StepResult{State: state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 50, Seed: 1}, Options{HoldFrames: 2})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if g.resets != 1 {
		t.Errorf("expected one reset, got %d", g.resets)
	}
	if m.screen.Height() != 20-footerHeight {
		t.Errorf("screen height = %d, expected room for the footer", m.screen.Height())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestInitSetsWindowTitle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init should batch the title with the first tick")
	}
	if g.titles != 1 {
		t.Errorf("Title called %d times, expected 1", g.titles)
	}

	var title, tick bool
	for _, cmd := range batch {
		switch msg := cmd().(type) {
		case TickMsg:
			tick = true
		default:
			title = title || fmt.Sprint(msg) == "Fake"
		}
	}
	if !title || !tick {
		t.Errorf("expected the window title and a tick, got title=%v tick=%v", title, tick)
	}
}

func TestTickStepsWithHeldDirections(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	if len(g.frames) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(g.frames))
	}

	first := g.frames[0]
	if !first.Held.Has(core.DirUp) {
		t.Error("up should be held on the first frame")
	}
	if first.Count(core.ActionFire) != 2 {
		t.Errorf("expected 2 queued fires, got %d", first.Count(core.ActionFire))
	}

	if g.frames[1].Count(core.ActionFire) != 0 {
		t.Error("fire presses should be consumed by one frame")
	}
	if !g.frames[1].Held.Has(core.DirUp) {
		t.Error("up should stay held for the hold window")
	}
	if g.frames[2].Held.Has(core.DirUp) {
		t.Error("up should be released once the hold window passes")
	}
}

func TestGameOverSchedulesQuit(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("model should record game over")
	}
	if cmd == nil {
		t.Fatal("game over should schedule the exit")
	}
	if _, ok := cmd().(gameOverMsg); !ok {
		t.Error("zero delay should report game over right away")
	}

	// Stale ticks are ignored
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil || len(g.frames) != 1 {
		t.Error("no more steps after game over")
	}

	// Movement and fire are ignored, quit still works
	m, _ = update(t, m, runeKey('w'))
	if m.hold.Held() != (core.DirectionSet{}) {
		t.Error("keys should be ignored after game over")
	}

	m, cmd = update(t, m, gameOverMsg{})
	if cmd == nil || !m.quitting {
		t.Error("game over message should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&fakeGame{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Error("resizing should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()
	if !strings.Contains(view, "fake game") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should contain the key help footer")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 50, Seed: 1}, Options{ScreenshotDir: dir})

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake game") {
		t.Errorf("screenshot content = %q", string(data)[:20])
	}
}
