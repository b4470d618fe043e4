package tabular

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/dd0wney/cluso-conclave/pkg/analysis"
)

// Workbook sheet names
const (
	SheetCommunities = "Communities"
	SheetGlobal      = "Global"
)

// WriteStatsXLSX writes a workbook with the community table and, when global
// is not nil, a sheet of global metrics. Undefined values are written as
// the text "undefined".
func WriteStatsXLSX(w io.Writer, table analysis.StatsTable, global *analysis.GlobalMetrics) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCommunities); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(statsHeader))
	for i, h := range statsHeader {
		header[i] = h
	}
	if err := setRow(f, SheetCommunities, 1, header); err != nil {
		return err
	}

	for i, s := range table.Rows() {
		row := []any{
			s.ID, s.Size, cellFloat(s.Density), cellFloat(s.AvgDegree), cellFloat(s.AvgWeight),
			s.TotalWeight, s.Countries, s.Continents, s.InternalEdges, s.ExternalEdges,
			cellFloat(s.InternalRatio), cellFloat(s.AvgAge), s.CBCount, cellFloat(s.CBRatio),
		}
		if err := setRow(f, SheetCommunities, i+2, row); err != nil {
			return err
		}
	}

	if global != nil {
		if _, err := f.NewSheet(SheetGlobal); err != nil {
			return fmt.Errorf("add sheet: %w", err)
		}
		rows := [][]any{
			{"Metric", "Value"},
			{"Nodes", global.Nodes},
			{"Edges", global.Edges},
			{"AvgDegree", cellFloat(global.AvgDegree)},
			{"Components", global.Components},
			{"LargestComponent", global.LargestComponent},
			{"Connected", global.Connected},
			{"Diameter", cellFloat(global.Diameter)},
			{"AvgShortestPath", cellFloat(global.AvgShortestPath)},
			{"AvgClustering", cellFloat(global.AvgClustering)},
		}
		for i, row := range rows {
			if err := setRow(f, SheetGlobal, i+1, row); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write XLSX: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func cellFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return v
}
