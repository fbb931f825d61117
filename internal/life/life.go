// Package life implements the toroidal Game of Life variant drawn behind the
// lock screen. Live cells age every generation; a cell that stays alive for
// more than ExplosionAge generations dies and seeds its whole neighbourhood.
package life

import (
	"strconv"

	"github.com/gabrielssanches/i3lock-game-of-life/internal/core"
)

const (
	// CellPitch is the number of display units covered by one cell side.
	CellPitch = 5
	// ExplosionAge is the age a surviving cell must exceed to explode.
	ExplosionAge = 100
)

type cell struct {
	alive bool
	age   uint32
}

// mark holds the transient per-generation flags of a cell.
type mark uint8

const (
	markBorn mark = 1 << iota
	markKill
)

// neighbourhood lists the Moore neighbourhood offsets.
var neighbourhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a toroidal Game of Life board. A Grid is not safe for concurrent use.
type Grid struct {
	torus core.Torus
	cells []cell
	marks []mark

	// display mirrors the alive state as 0/1 bytes for renderers.
	display []uint8

	generation int
	seed       int64
}

// New returns a grid sized to cover a display of the given dimensions at
// CellPitch units per cell, randomly seeded from seed. Displays smaller than
// one cell produce a 1×1 grid.
func New(displayWidth, displayHeight int, seed int64) *Grid {
	g := NewGrid(displayWidth/CellPitch, displayHeight/CellPitch)
	g.Reset(seed)
	return g
}

// NewGrid returns an all-dead grid with the given cell dimensions.
func NewGrid(columns, rows int) *Grid {
	t := core.NewTorus(columns, rows)
	return &Grid{
		torus:   t,
		cells:   make([]cell, t.Len()),
		marks:   make([]mark, t.Len()),
		display: make([]uint8, t.Len()),
	}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions in cells.
func (g *Grid) Size() core.Size { return core.Size{W: g.torus.W, H: g.torus.H} }

// Dimensions returns the grid size and the cell pitch so callers can map
// cell coordinates back to display coordinates.
func (g *Grid) Dimensions() (columns, rows, pitch int) {
	return g.torus.W, g.torus.H, CellPitch
}

// Cells exposes the render buffer: 1 for a live cell, 0 otherwise.
// The slice is owned by the grid and must not be modified.
func (g *Grid) Cells() []uint8 { return g.display }

// Generation returns the number of steps since the last Reset or Clear.
func (g *Grid) Generation() int { return g.generation }

// Seed returns the seed used by the last Reset.
func (g *Grid) Seed() int64 { return g.seed }

// Index returns the storage index of (column, row) after toroidal wrapping.
func (g *Grid) Index(column, row int) int { return g.torus.Index(column, row) }

// IsAlive reports whether the cell at (column, row) is alive.
func (g *Grid) IsAlive(column, row int) bool {
	return g.cells[g.Index(column, row)].alive
}

// Age returns how many consecutive generations the cell at (column, row)
// has been alive. Dead cells report 0.
func (g *Grid) Age(column, row int) int {
	return int(g.cells[g.Index(column, row)].age)
}

// LiveCells counts the live cells on the board.
func (g *Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c.alive {
			n++
		}
	}
	return n
}

// Set places a fresh live cell at (column, row) or removes it.
func (g *Grid) Set(column, row int, alive bool) {
	idx := g.Index(column, row)
	g.cells[idx] = cell{alive: alive}
	g.display[idx] = boolByte(alive)
}

// Toggle inverts the state of the cell at (column, row).
func (g *Grid) Toggle(column, row int) {
	g.Set(column, row, !g.IsAlive(column, row))
}

// Settle places live cells at every [column, row] pair in coords.
func (g *Grid) Settle(coords [][2]int) {
	for _, c := range coords {
		g.Set(c[0], c[1], true)
	}
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{}
		g.marks[i] = 0
		g.display[i] = 0
	}
	g.generation = 0
}

// Reset clears the board and makes each cell alive with probability 1/2.
func (g *Grid) Reset(seed int64) {
	g.Clear()
	g.seed = seed
	rng := core.NewRNG(seed)
	for i := range g.cells {
		if rng.Bool() {
			g.cells[i].alive = true
			g.display[i] = 1
		}
	}
}

// Step advances the board by one generation. Every cell is evaluated against
// the alive state of the previous generation; births and deaths are recorded
// as marks and only applied once the whole board has been evaluated.
func (g *Grid) Step() {
	w, h := g.torus.W, g.torus.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			g.evaluate(col, row)
		}
	}
	g.commit()
	g.generation++
}

func (g *Grid) evaluate(col, row int) {
	idx := g.Index(col, row)
	neighbours := g.liveNeighbours(col, row)

	c := &g.cells[idx]
	if !c.alive {
		if neighbours == 3 {
			g.marks[idx] |= markBorn
		}
		return
	}

	// Age is not read by neighbour counts, so it is updated in place.
	c.age++
	switch {
	case neighbours < 2 || neighbours > 3:
		g.marks[idx] |= markKill
	case c.age > ExplosionAge:
		g.marks[idx] |= markKill
		for _, d := range neighbourhood {
			g.marks[g.Index(col+d[0], row+d[1])] |= markBorn
		}
	}
}

func (g *Grid) liveNeighbours(col, row int) int {
	n := 0
	for _, d := range neighbourhood {
		if g.cells[g.Index(col+d[0], row+d[1])].alive {
			n++
		}
	}
	return n
}

// commit applies the marks recorded by evaluate. Kill wins over born.
func (g *Grid) commit() {
	for i, m := range g.marks {
		switch {
		case m&markKill != 0:
			g.cells[i] = cell{}
		case m&markBorn != 0:
			g.cells[i].alive = true
		}
		g.marks[i] = 0
		g.display[i] = boolByte(g.cells[i].alive)
	}
}

// Parameters reports the grid geometry and counters.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("columns", "Columns", g.torus.W, "horizontal cell count"),
				intParam("rows", "Rows", g.torus.H, "vertical cell count"),
				intParam("pitch", "Cell pitch", CellPitch, "display units per cell"),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("generation", "Generation", g.generation, "steps since reset"),
				intParam("live", "Live cells", g.LiveCells(), ""),
				intParam("explosion_age", "Explosion age", ExplosionAge, "age a surviving cell must exceed to explode"),
			},
		},
	}}
}

func intParam(key, label string, v int, descr string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v), Description: descr}
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.DisplayWidth, c.DisplayHeight, c.Seed)
	})
}
