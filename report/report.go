// Package report exports the numbers behind the summary figure to an XLSX
// workbook, one sheet of per-replicate integrals and one of per-condition
// summaries.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"envfig/stats"
)

// Sheet names in the exported workbook.
const (
	IntegralSheet = "Replicate_Integrals"
	SummarySheet  = "Condition_Summaries"
)

// WriteWorkbook writes one row per replicate integral and one row per
// condition summary, overwriting any workbook at path.
func WriteWorkbook(path string, aggs []stats.Aggregate, summaries []stats.ConditionSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", IntegralSheet)

	headers := []string{"EnvChangeFreq", "Replicate", "Integral"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(IntegralSheet, cell, header)
	}
	f.SetColWidth(IntegralSheet, "A", "C", 16)

	for i, a := range aggs {
		row := i + 2
		f.SetCellValue(IntegralSheet, fmt.Sprintf("A%d", row), a.EnvChangeFreq)
		f.SetCellValue(IntegralSheet, fmt.Sprintf("B%d", row), a.Replicate)
		f.SetCellValue(IntegralSheet, fmt.Sprintf("C%d", row), a.Integral)
	}

	f.NewSheet(SummarySheet)

	summaryHeaders := []string{"EnvChangeFreq", "1/EnvChangeFreq", "MeanIntegral",
		"SD", "SEM", "Replicates"}
	for i, header := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SummarySheet, cell, header)
	}
	f.SetColWidth(SummarySheet, "A", "F", 16)

	for i, s := range summaries {
		row := i + 2
		f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", row), s.EnvChangeFreq)
		f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", row), s.X)
		f.SetCellValue(SummarySheet, fmt.Sprintf("C%d", row), s.Mean)
		f.SetCellValue(SummarySheet, fmt.Sprintf("D%d", row), s.SD)
		f.SetCellValue(SummarySheet, fmt.Sprintf("E%d", row), s.SEM)
		f.SetCellValue(SummarySheet, fmt.Sprintf("F%d", row), s.N)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
