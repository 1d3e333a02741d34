package term

import (
	"strings"
	"testing"

	"wildfire/internal/sims/wildfire"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func newEngine(t *testing.T) *wildfire.Engine {
	t.Helper()
	cfg := wildfire.DefaultConfig()
	cfg.Rows = 3
	cfg.Cols = 3
	cfg.Params.FlammableChance = 1
	cfg.Params.IgnitionProbability = 1
	cfg.Params.SelfIgnitionProbability = 0
	cfg.Params.RegenerationThreshold = 0
	cfg.Params.WindStrength = 0
	e, err := wildfire.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.IgniteAt(wildfire.Coord{Row: 1, Col: 1}); err != nil {
		t.Fatalf("IgniteAt: %v", err)
	}
	return e
}

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawGrid(t *testing.T) {
	screen := newScreen(t)
	e := newEngine(t)

	Draw(screen, e, true, false, "")

	want := []string{"T T T", "T B T", "T T T"}
	for i, line := range want {
		if got := rowText(screen, headerRows+i, len(line)); got != line {
			t.Fatalf("row %d: got %q want %q", i, got, line)
		}
	}
	_, _, style, _ := screen.GetContent(2, headerRows+1)
	if style != StyleFor(wildfire.StateBurning) {
		t.Fatal("burning cell drawn with the wrong style")
	}
	if header := rowText(screen, 0, 40); !strings.HasPrefix(header, "Step 0  Wind: ") {
		t.Fatalf("unexpected header %q", header)
	}
}

func TestDrawEndOfSimulation(t *testing.T) {
	screen := newScreen(t)
	e := newEngine(t)
	for e.Step() {
	}

	Draw(screen, e, false, false, "")
	width, _ := screen.Size()
	if status := rowText(screen, 1, width); !strings.HasPrefix(status, "End of simulation") {
		t.Fatalf("expected end marker on the status row, got %q", status)
	}
	if header := rowText(screen, 0, width); !strings.HasPrefix(header, "Step 3  Wind: ") {
		t.Fatalf("unexpected header %q", header)
	}
}

func TestDrawStatusRow(t *testing.T) {
	screen := newScreen(t)
	e := newEngine(t)
	width, _ := screen.Size()

	cases := []struct {
		burning bool
		paused  bool
		status  string
		want    string
	}{
		{true, false, "", ""},
		{true, true, "", "[paused]"},
		{false, true, "", "End of simulation"},
		{false, false, "reset failed", "reset failed"},
	}
	for _, tc := range cases {
		Draw(screen, e, tc.burning, tc.paused, tc.status)
		got := strings.TrimRight(rowText(screen, 1, width), " \x00")
		if got != tc.want {
			t.Fatalf("burning=%v paused=%v status=%q: got %q want %q", tc.burning, tc.paused, tc.status, got, tc.want)
		}
	}
	if help := rowText(screen, 2, width); !strings.HasPrefix(help, "space pause") {
		t.Fatalf("expected key help on row 2, got %q", help)
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want action
	}{
		{tcell.KeyEscape, 0, actionQuit},
		{tcell.KeyCtrlC, 0, actionQuit},
		{tcell.KeyRune, 'q', actionQuit},
		{tcell.KeyRune, ' ', actionTogglePause},
		{tcell.KeyRune, 'n', actionStepOnce},
		{tcell.KeyRune, 'r', actionReset},
		{tcell.KeyRune, 'x', actionNone},
	}
	for _, tc := range cases {
		if got := keyAction(tc.key, tc.r); got != tc.want {
			t.Fatalf("key %v rune %q: got %v want %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestRunExitsWhenFireEnds(t *testing.T) {
	screen := newScreen(t)
	e := newEngine(t)

	if err := Run(screen, e, Options{TPS: 1000, ExitOnEnd: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.StepCount() != 3 {
		t.Fatalf("expected the 3x3 fire to end after 3 ticks, got %d", e.StepCount())
	}
}
