package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/HazemIbrahim256/academyreport/report"
)

// dataset is the JSON export the CLI renders from.
type dataset struct {
	Players     []report.Player     `json:"players"`
	Groups      []report.Group      `json:"groups"`
	Evaluations []report.Evaluation `json:"evaluations"`
}

func loadDataset(path string) (*dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &ds, nil
}

func (ds *dataset) player(id int64) (report.Player, error) {
	for _, p := range ds.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return report.Player{}, fmt.Errorf("player %d not found", id)
}

func (ds *dataset) group(id int64) (report.Group, error) {
	for _, g := range ds.Groups {
		if g.ID == id {
			return g, nil
		}
	}
	return report.Group{}, fmt.Errorf("group %d not found", id)
}
