package view

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
)

// Board is the grid surface the terminal viewer drives.
type Board interface {
	core.Sim
	core.ParameterProvider
	IsAlive(column, row int) bool
	Toggle(column, row int)
	Clear()
	Generation() int
	LiveCells() int
	Seed() int64
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders a Board in the terminal. Every board access happens on
// the gocui main loop: key handlers run there and timer ticks are funnelled
// through Gui.Update.
type ConsoleUI struct {
	board    Board
	g        *gocui.Gui
	k        []keyBinding
	log      *logrus.Entry
	interval time.Duration
	done     chan struct{}

	running  bool
	stepTime time.Duration

	liveFiller string
	deadFiller string
}

// NewConsoleUI prepares the terminal and key bindings. The board advances
// one generation per interval while running.
func NewConsoleUI(b Board, interval time.Duration, log *logrus.Logger) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("console ui: %w", err)
	}
	t := &ConsoleUI{
		board:      b,
		g:          g,
		log:        log.WithField("view", "console"),
		interval:   interval,
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Reseed", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, "field"},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("console ui: bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Start runs the main loop until the user quits and restores the terminal.
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	go t.ticker()
	err := t.g.MainLoop()
	close(t.done)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("console ui: %w", err)
	}
	t.log.WithField("generation", t.board.Generation()).Info("console closed")
	return nil
}

func (t *ConsoleUI) ticker() {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-tk.C:
			t.g.Update(func(*gocui.Gui) error {
				if t.running {
					t.step()
				}
				return nil
			})
		}
	}
}

func (t *ConsoleUI) step() {
	start := time.Now()
	t.board.Step()
	t.stepTime = time.Since(start)
	t.refresh()
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	v, err := t.g.View("field")
	if err != nil {
		return
	}
	v.Clear()

	size := t.board.Size()
	maxW, maxH := v.Size()
	crop := size.W > maxW || size.H > maxH

	var b bytes.Buffer
	for y := 0; y < size.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field is larger than the viewing area").BgBlack().String())
			break
		}
		for x := 0; x < size.W && x < maxW; x++ {
			if t.board.IsAlive(x, y) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Blue("waiting").String()
	if t.running {
		mode = aurora.Cyan("running").String()
	}
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", t.board.Generation()))
	_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", t.board.LiveCells()))
	_, _ = fmt.Fprintln(v, renderProp("Step time", "%v", t.stepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
}

func (t *ConsoleUI) renderConfiguration() {
	v, err := t.g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	for _, grp := range t.board.Parameters().Groups {
		if grp.Name != "Grid" {
			continue
		}
		for _, p := range grp.Params {
			_, _ = fmt.Fprintln(v, renderProp(p.Label, "%v", p.Value))
		}
	}
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", t.interval))
	_, _ = fmt.Fprintln(v, renderProp("Seed", "%v", t.board.Seed()))
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 16

	if maxY < minWindowHeight || maxX < leftColumnWidth+10 {
		if err := t.header(g, maxY, "Terminal too small"); err != nil {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		return nil
	}
	if err := t.header(g, 2, "Game of Life backdrop"); err != nil {
		return err
	}

	mid := 3 + (maxY-5-3)/2
	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, mid); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Configuration"
	}
	t.renderConfiguration()

	if v, err := g.SetView("status", 0, mid+1, leftColumnWidth, maxY-5); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	t.renderStatus()

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Field"
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ConsoleUI) header(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := 0
	if maxX > len(text) {
		pad = (maxX - len(text)) / 2
	}
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.running = false
	t.step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.running = true
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.running = false
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.running = false
	t.board.Clear()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	seed := time.Now().UnixNano()
	t.board.Reset(seed)
	t.log.WithField("seed", seed).Debug("board reseeded")
	t.renderConfiguration()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.board.Toggle(cx+ox, cy+oy)
	t.refresh()
	return nil
}
