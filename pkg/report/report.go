// Package report writes a spreadsheet summarising a batch of packing runs.
//
// The workbook has two sheets:
//
//   - "Runs": one row per run with its parameters, cost, clearance, timing
//     and status (failed runs are listed with their error)
//   - "Placements": one row per biscuit centre of every successful run
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nathaniel-may/biscuit-packing/pkg/pipeline"
)

// Sheet names.
const (
	SheetRuns       = "Runs"
	SheetPlacements = "Placements"
)

var (
	runHeaders       = []any{"Biscuits", "Width", "Length", "Iterations", "Seed", "Cost", "Initial Cost", "Clearance", "Solve (s)", "Cached", "Status"}
	placementHeaders = []any{"Biscuits", "Index", "X", "Y"}
)

// Write renders batch as an xlsx workbook to w.
func Write(w io.Writer, batch *pipeline.BatchResult) error {
	f, err := Build(batch)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// Save writes the workbook to path.
func Save(path string, batch *pipeline.BatchResult) error {
	f, err := Build(batch)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// Build assembles the workbook. The caller must Close it.
func Build(batch *pipeline.BatchResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetRuns); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetPlacements); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRuns(f, batch); err != nil {
		f.Close()
		return nil, fmt.Errorf("runs sheet: %w", err)
	}
	if err := writePlacements(f, batch); err != nil {
		f.Close()
		return nil, fmt.Errorf("placements sheet: %w", err)
	}
	return f, nil
}

func writeRuns(f *excelize.File, batch *pipeline.BatchResult) error {
	if err := setRow(f, SheetRuns, 1, runHeaders); err != nil {
		return err
	}
	failures := map[int]error{}
	for _, e := range batch.Errors {
		failures[e.Index] = e.Err
	}

	row := 2
	for i, res := range batch.Results {
		var values []any
		switch {
		case res != nil:
			sol := res.Solution
			values = []any{
				res.Run.Biscuits, res.Run.Width, res.Run.Length, res.Run.Iterations, seed(res.Run),
				sol.Cost, sol.InitialCost, sol.Clearance, res.Stats.SolveTime.Seconds(), res.CacheHit, "ok",
			}
		case failures[i] != nil:
			run := failedRun(batch, i)
			values = []any{
				run.Biscuits, run.Width, run.Length, run.Iterations, seed(run),
				nil, nil, nil, nil, false, "failed: " + failures[i].Error(),
			}
		default:
			continue
		}
		if err := setRow(f, SheetRuns, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writePlacements(f *excelize.File, batch *pipeline.BatchResult) error {
	if err := setRow(f, SheetPlacements, 1, placementHeaders); err != nil {
		return err
	}
	row := 2
	for _, res := range batch.Succeeded() {
		for i, p := range res.Solution.Placement {
			if err := setRow(f, SheetPlacements, row, []any{res.Run.Biscuits, i, p.X, p.Y}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func failedRun(batch *pipeline.BatchResult, index int) pipeline.Run {
	for _, e := range batch.Errors {
		if e.Index == index {
			return e.Run
		}
	}
	return pipeline.Run{}
}

func seed(run pipeline.Run) any {
	if run.Seed == nil {
		return nil
	}
	return *run.Seed
}
