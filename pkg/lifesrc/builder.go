package lifesrc

import "math/rand"

// NewWorld validates cfg and builds a ready-to-search World from it:
// the cell arena, every pred/succ/neighbor/symmetry link, the
// background sentinels standing in for out-of-range cells, and the
// deterministic search list — spec §4's "Configuration & world
// builder" component, grounded on original_source/lib/src/cells.rs's
// LifeCell::new (background-seeded descriptor) adapted to Go's
// zero-valued Unknown state rather than the Rust source's
// construct-as-background-then-clear dance.
func NewWorld(cfg Config) (*World, error) {
	r, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return buildWorld(r), nil
}

func buildWorld(r *resolved) *World {
	width, height, period := r.width, r.height, r.period
	rule := r.rule
	background := rule.Background()

	w := &World{
		rule:           rule,
		Width:          width,
		Height:         height,
		Period:         period,
		DX:             r.dx,
		DY:             r.dy,
		TransformVal:   r.transform,
		SymmetryVal:    r.symmetry,
		NewStateVal:    r.newState,
		NonEmptyFront:  r.nonEmptyFront,
		cellCount:      make([]int, period),
		rng:            rand.New(rand.NewSource(r.seed)),
	}
	w.SearchOrderVal = r.autoSearchOrder()
	if r.maxCellCount != nil {
		w.SetMaxCellCount(*r.maxCellCount, true)
	}

	// Real cells, indexed grid[x][y][t]. Zero-valued State is Unknown,
	// so no explicit "blank" assignment is needed beyond Desc.
	grid := make([][][]*Cell, width)
	for x := range grid {
		grid[x] = make([][]*Cell, height)
		for y := range grid[x] {
			grid[x][y] = make([]*Cell, period)
			for t := range grid[x][y] {
				c := &Cell{
					Coord:      Coord{X: x, Y: y, T: t},
					Background: background.At(t),
					Desc:       BlankDesc(),
					IsGen0:     t == 0,
				}
				grid[x][y][t] = c
				w.cells = append(w.cells, c)
			}
		}
	}

	// One background sentinel per generation, standing in for every
	// out-of-rectangle neighbor/pred/succ reference at that generation.
	sentinels := make([]*Cell, period)
	for t := 0; t < period; t++ {
		bg := background.At(t)
		s := &Cell{
			Coord:      Coord{X: -1, Y: -1, T: t},
			Background: bg,
			State:      bg,
			IsGen0:     t == 0,
		}
		sentinels[t] = s
		w.cells = append(w.cells, s)
	}
	for t, s := range sentinels {
		s.Pred = sentinels[t]
		s.Succ = sentinels[(t+1)%period]
		for i := range s.Nbhd {
			s.Nbhd[i] = s
		}
		s.Desc = rule.NewDesc(s.State, s.Succ.State)
	}

	cellAt := func(x, y, t int) *Cell {
		if x < 0 || x >= width || y < 0 || y >= height {
			return sentinels[t]
		}
		return grid[x][y][t]
	}

	// Pred/succ within a generation run (t-1 <-> t straightforwardly);
	// the wraparound at the period boundary is handled separately below,
	// since it's the one link that isn't simply "same (x,y), adjacent t".
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for t := 1; t < period; t++ {
				grid[x][y][t].Pred = grid[x][y][t-1]
			}
			for t := 0; t < period-1; t++ {
				grid[x][y][t].Succ = grid[x][y][t+1]
			}
		}
	}

	// Wraparound: generation period-1's successor is generation 0,
	// transformed by the inverse post-period transform and shifted by
	// (-dx, -dy), per spec §3. When period == 1, every cell is
	// simultaneously its own "last generation", so this loop is the
	// only source of pred/succ for every cell.
	inv := r.transform.Inverse()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			last := grid[x][y][period-1]
			tx, ty := inv.Apply(x, y, width, height)
			tx, ty = tx-r.dx, ty-r.dy
			target := cellAt(tx, ty, 0)
			last.Succ = target
			if tx >= 0 && tx < width && ty >= 0 && ty < height {
				target.Pred = last
			}
		}
	}

	// Moore neighborhood, substituting the generation's background
	// sentinel for any position outside the rectangle (no toroidal
	// wraparound in x/y, unlike the explicit t-wraparound above).
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for t := 0; t < period; t++ {
				c := grid[x][y][t]
				for i, off := range neighborOffsets {
					c.Nbhd[i] = cellAt(x+off[0], y+off[1], t)
				}
			}
		}
	}

	// Symmetry partners, within a generation only.
	elems := r.symmetry.Elements()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for t := 0; t < period; t++ {
				c := grid[x][y][t]
				for _, el := range elems {
					if el == Id {
						continue
					}
					px, py := el.Apply(x, y, width, height)
					if px == x && py == y {
						continue
					}
					partner := grid[px][py][t]
					already := false
					for _, s := range c.Sym {
						if s == partner {
							already = true
							break
						}
					}
					if !already {
						c.Sym = append(c.Sym, partner)
					}
				}
			}
		}
	}

	// Front marking: generation 0's first row (RowFirst) or first
	// column (ColumnFirst) under the active search order.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := grid[x][y][0]
			switch w.SearchOrderVal {
			case RowFirst:
				c.IsFront = y == 0
			case ColumnFirst:
				c.IsFront = x == 0
			}
			if c.IsFront {
				w.frontUnknownCnt++
			}
		}
	}

	// Fold in whatever is already committed on each cell's wired-up
	// pred/succ/neighbors (i.e. sentinels) now that every pointer is
	// set; a cell surrounded entirely by other still-Unknown real cells
	// keeps its blank descriptor.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for t := 0; t < period; t++ {
				recomputeDesc(grid[x][y][t])
			}
		}
	}

	w.searchList = buildSearchList(grid, width, height, period, w.SearchOrderVal)

	return w
}

// recomputeDesc rebuilds c.Desc from scratch by inspecting c's own
// state and the current state of its successor and 8 neighbors. Used
// once at construction time, after every pointer is wired, to fold in
// background-sentinel knowledge that BlankDesc() could not anticipate.
func recomputeDesc(c *Cell) {
	d := NewDesc(c.State, Unknown)
	if c.Succ != nil {
		d = d.withSucc(c.Succ.State)
	}
	for i, n := range c.Nbhd {
		if n != nil {
			d = d.withNeighbor(i, n.State)
		}
	}
	c.Desc = d
}

// buildSearchList enumerates every real (x, y, t) cell in the order
// Config.search_order demands: RowFirst iterates t fastest, then x,
// then y; ColumnFirst iterates t fastest, then y, then x (spec §3).
func buildSearchList(grid [][][]*Cell, width, height, period int, order SearchOrder) []*Cell {
	list := make([]*Cell, 0, width*height*period)
	if order == RowFirst {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				for t := 0; t < period; t++ {
					list = append(list, grid[x][y][t])
				}
			}
		}
	} else {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				for t := 0; t < period; t++ {
					list = append(list, grid[x][y][t])
				}
			}
		}
	}
	return list
}
