package lifesrc

import (
	"encoding/json"
	"fmt"
)

// assignmentSer is one committed cell in save order, replayed against
// a freshly built World to restore it, per spec §6.3/§7. Only the
// Assume/Conflict-rooted decisions and whatever consistify/sym forced
// along the way need to survive the round trip: replaying them through
// SetCell regenerates an equivalent setStack, cellCount, and Desc state
// without serializing any of that derived bookkeeping directly.
type assignmentSer struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	T     int `json:"t"`
	State int `json:"state"`
	Kind  int `json:"kind"`
}

// WorldSer is the on-disk form of a World: the Config it was built
// from plus the ordered list of committed assignments, grounded on
// execution_checkpoint.go's ExecutionCheckpoint (JSON-tagged struct,
// Serialize/Deserialize pair, a Validate-style compatibility check).
type WorldSer struct {
	Config        Config          `json:"config"`
	ConflictCount uint64          `json:"conflict_count"`
	Assignments   []assignmentSer `json:"assignments"`
}

// Save captures w's Config and every currently-committed cell, in
// propagation order, as a WorldSer ready for JSON serialization.
func (w *World) Save() WorldSer {
	ser := WorldSer{ConflictCount: w.conflictCount}
	ser.Config = w.toConfig()
	ser.Assignments = make([]assignmentSer, 0, len(w.setStack))
	for _, c := range w.setStack {
		ser.Assignments = append(ser.Assignments, assignmentSer{
			X: c.Coord.X, Y: c.Coord.Y, T: c.Coord.T,
			State: int(c.State),
			Kind:  int(c.Reason.Kind),
		})
	}
	return ser
}

// Serialize renders ser as JSON, for writing to a snapshot file.
func (ser WorldSer) Serialize() ([]byte, error) {
	return json.MarshalIndent(ser, "", "  ")
}

// DeserializeWorldSer parses the JSON form written by Serialize.
func DeserializeWorldSer(data []byte) (WorldSer, error) {
	var ser WorldSer
	if err := json.Unmarshal(data, &ser); err != nil {
		return WorldSer{}, fmt.Errorf("lifesrc: deserializing snapshot: %w", err)
	}
	return ser, nil
}

// Restore rebuilds a World from ser's Config and replays its
// assignments in order via SetCell, propagating after each one. If the
// replayed assignments are no longer consistent (e.g. the rule string
// in Config changed since Save), it fails with a *SetCellError naming
// the cell whose replayed state disagrees with what is already
// committed, or with an error wrapping the ConflReason that propagation
// after a replayed assignment ran into,
// per spec §7's "snapshot disagreement is reported, not silently
// resolved".
func Restore(ser WorldSer) (*World, error) {
	w, err := NewWorld(ser.Config)
	if err != nil {
		return nil, err
	}
	w.conflictCount = ser.ConflictCount

	for _, a := range ser.Assignments {
		c := w.cellAt(a.X, a.Y, a.T)
		if c == nil {
			return nil, fmt.Errorf("lifesrc: snapshot references out-of-range cell (%d,%d,t=%d)", a.X, a.Y, a.T)
		}
		reason := Reason{Kind: ReasonKind(a.Kind)}
		if cr := w.SetCell(c, State(a.State), reason); cr != nil {
			return nil, &SetCellError{Coord: c.Coord}
		}
		if cr := w.Proceed(); cr != nil {
			return nil, fmt.Errorf("lifesrc: snapshot replay conflict during propagation: %w", *cr)
		}
	}
	return w, nil
}

// toConfig reconstructs the Config that would build an equivalent
// (empty) World to w, for embedding in a snapshot.
func (w *World) toConfig() Config {
	cfg := Config{
		Width: w.Width, Height: w.Height, Period: w.Period,
		DX: w.DX, DY: w.DY,
		TransformStr:   w.TransformVal.String(),
		SymmetryStr:    w.SymmetryVal.String(),
		SearchOrderStr: w.SearchOrderVal.String(),
		NonEmptyFront:  w.NonEmptyFront,
		RuleString:     RuleStringOf(w.rule),
	}
	if w.NewStateVal.Random {
		cfg.NewStateStr = "Random"
	} else if w.NewStateVal.Choose == Alive {
		cfg.NewStateStr = "Alive"
	} else {
		cfg.NewStateStr = "Dead"
	}
	if w.hasMaxCellCount {
		max := w.maxCellCount
		cfg.MaxCellCount = &max
	}
	return cfg
}
