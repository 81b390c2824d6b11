package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/disentangle/config"
	"github.com/katalvlaran/disentangle/solver"
)

// moveRecord is the JSON form of one solution step.
type moveRecord struct {
	Step      int      `json:"step"`
	Move      string   `json:"move"`
	Pieces    []string `json:"pieces"`
	Direction [3]int   `json:"direction"`
	Removal   bool     `json:"removal"`
	State     string   `json:"state"`
}

// writeSolution renders seq (initial frame first) in the given format.
func writeSolution(w io.Writer, format string, seq []solver.Frame) error {
	if len(seq) == 0 {
		return nil
	}
	records := make([]moveRecord, 0, len(seq)-1)
	for _, f := range seq[1:] {
		d := f.Move.Direction()
		rec := moveRecord{
			Step:      f.Depth,
			Move:      f.Move.String(),
			Direction: [3]int{d.X, d.Y, d.Z},
			Removal:   f.Move.IsRemoval(),
			State:     f.State.String(),
		}
		for _, p := range f.Move.Pieces() {
			rec.Pieces = append(rec.Pieces, p.Name())
		}
		records = append(records, rec)
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		if _, err := fmt.Fprintf(w, "solved in %d moves\n", len(records)); err != nil {
			return err
		}
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%3d. %s\n", r.Step, r.Move); err != nil {
				return err
			}
		}
		return nil
	}
}
