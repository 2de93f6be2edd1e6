package lifesrc

// SearchOrder fixes which axis is walked first when the builder lays out
// the deterministic search list: it always exhausts every generation of
// a cell before moving to the next cell (spec §4.3), and this picks
// which cell comes next.
type SearchOrder int

const (
	RowFirst SearchOrder = iota
	ColumnFirst
)

func (o SearchOrder) String() string {
	if o == ColumnFirst {
		return "ColumnFirst"
	}
	return "RowFirst"
}

// NewState chooses what a fresh decision assigns to an unknown cell.
type NewState struct {
	Choose State // meaningful only when Random is false
	Random bool
}

// ChooseAlive and ChooseDead are the two deterministic NewState values;
// RandomState lets the builder flip a coin each decision.
var (
	ChooseAlive = NewState{Choose: Alive}
	ChooseDead  = NewState{Choose: Dead}
	RandomState = NewState{Random: true}
)

// Config is the declarative description of a search, grounded on
// original_source/lib/src/config.rs's Config struct. It is the unit
// loaded from YAML by LoadConfig (config_io.go) and passed to NewWorld
// (builder.go) to allocate the cell arena.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Period int `yaml:"period"`

	DX int `yaml:"dx"`
	DY int `yaml:"dy"`

	TransformStr string `yaml:"transform"`
	SymmetryStr  string `yaml:"symmetry"`

	// SearchOrderStr is "RowFirst", "ColumnFirst", or "" (auto).
	SearchOrderStr string `yaml:"search_order"`

	// NewStateStr is "Alive", "Dead", or "Random".
	NewStateStr string `yaml:"new_state"`

	// MaxCellCount bounds the generation-0 living cell count when
	// non-nil; nil means unbounded. A pointer (rather than an int with
	// "0 means unbounded") because 0 is itself a valid cap: "no living
	// cells allowed at all", distinct from no cap being set, mirroring
	// original_source/lib/src/config.rs's Option<usize>.
	MaxCellCount *int `yaml:"max_cell_count"`

	NonEmptyFront bool `yaml:"non_empty_front"`

	RuleString string `yaml:"rule_string"`

	// Seed drives NewState.Random's coin flips. Two runs with the same
	// Config (including Seed) and a Random new_state produce identical
	// witnesses, per spec §5's determinism guarantee.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig mirrors original_source/lib/src/config.rs's
// Default impl: a 16x16 still-life search under Conway's Life.
func DefaultConfig() Config {
	return Config{
		Width:         16,
		Height:        16,
		Period:        1,
		TransformStr:  "Id",
		SymmetryStr:   "C1",
		NewStateStr:   "Alive",
		NonEmptyFront: true,
		RuleString:    "B3/S23",
	}
}

// resolved is the validated, type-checked form of Config, produced by
// Validate and consumed by NewWorld.
type resolved struct {
	width, height, period int
	dx, dy                int
	transform             Transform
	symmetry              Symmetry
	searchOrder           *SearchOrder // nil means automatic
	newState              NewState
	maxCellCount          *int // nil means unbounded; a set 0 is a valid cap
	nonEmptyFront         bool
	rule                  Rule
	seed                  int64
}

// Validate checks c for internal consistency and parses its string
// fields, per spec §4.2/§4.8's validation rules, returning a
// *ConfigError wrapping one of the Err* sentinels on failure.
func (c Config) Validate() (*resolved, error) {
	if c.Width <= 0 || c.Height <= 0 || c.Period <= 0 {
		return nil, configErrorf(ErrNonPositiveSize, "width=%d height=%d period=%d", c.Width, c.Height, c.Period)
	}

	transform, err := ParseTransform(c.TransformStr)
	if err != nil {
		return nil, err
	}
	symmetry, err := ParseSymmetry(c.SymmetryStr)
	if err != nil {
		return nil, err
	}
	square := c.Width == c.Height
	if !square && (transform.SquareWorld() || symmetry.SquareWorld()) {
		return nil, configErrorf(ErrIncompatibleTransform, "width=%d height=%d transform=%s symmetry=%s", c.Width, c.Height, transform, symmetry)
	}

	var searchOrder *SearchOrder
	switch c.SearchOrderStr {
	case "", "Auto":
		searchOrder = nil
	case "RowFirst":
		o := RowFirst
		searchOrder = &o
	case "ColumnFirst":
		o := ColumnFirst
		searchOrder = &o
	default:
		return nil, configErrorf(ErrInvalidRuleString, "invalid search_order %q", c.SearchOrderStr)
	}

	var newState NewState
	switch c.NewStateStr {
	case "", "Alive":
		newState = ChooseAlive
	case "Dead":
		newState = ChooseDead
	case "Random":
		newState = RandomState
	default:
		return nil, configErrorf(ErrInvalidRuleString, "invalid new_state %q", c.NewStateStr)
	}

	rule, err := ParseRuleString(c.RuleString)
	if err != nil {
		return nil, err
	}

	return &resolved{
		width: c.Width, height: c.Height, period: c.Period,
		dx: c.DX, dy: c.DY,
		transform: transform, symmetry: symmetry,
		searchOrder: searchOrder, newState: newState,
		maxCellCount: c.MaxCellCount, nonEmptyFront: c.NonEmptyFront,
		rule: rule, seed: c.Seed,
	}, nil
}

// autoSearchOrder mirrors config.rs's auto_search_order: when the
// config leaves search order unset, pick column-first for a wide (or
// square with |dx|>=|dy|) world, row-first otherwise. D2Row/D2Col
// effectively halve one dimension before the comparison, since a
// symmetric world only needs to search half of it.
func (r *resolved) autoSearchOrder() SearchOrder {
	if r.searchOrder != nil {
		return *r.searchOrder
	}
	width, height := r.width, r.height
	switch r.symmetry {
	case D2Row:
		height = (height + 1) / 2
	case D2Col:
		width = (width + 1) / 2
	}
	switch {
	case width > height:
		return ColumnFirst
	case width < height:
		return RowFirst
	default:
		if abs(r.dx) >= abs(r.dy) {
			return ColumnFirst
		}
		return RowFirst
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
