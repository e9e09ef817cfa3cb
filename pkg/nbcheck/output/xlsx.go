package output

import (
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteXLSX.
const (
	SheetSummary  = "Summary"
	SheetSyntax   = "Syntax"
	SheetElements = "Elements"
)

// WriteXLSX saves the report as a workbook with a summary sheet, one row
// per check, plus sheets for syntax findings and element results.
func WriteXLSX(report *models.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Check", "Status", "Blocking", "Summary", "Details"},
	}
	for _, res := range report.Results {
		rows = append(rows, []interface{}{
			res.Name, string(res.Status), res.Blocking, res.Summary, strings.Join(res.Details, "\n"),
		})
	}
	overall := "fail"
	if report.Passed {
		overall = "pass"
	}
	rows = append(rows, []interface{}{"Overall", overall})
	if err := writeRows(f, SheetSummary, rows); err != nil {
		return err
	}

	syntax := [][]interface{}{{"Cell", "Line", "Column", "Message"}}
	elements := [][]interface{}{{"Element", "Present"}}
	for _, res := range report.Results {
		for _, fnd := range res.Syntax {
			syntax = append(syntax, []interface{}{fnd.Cell, fnd.Line, fnd.Column, fnd.Message})
		}
		for _, el := range res.Elements {
			elements = append(elements, []interface{}{el.Label, el.Present})
		}
	}
	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetSyntax, syntax},
		{SheetElements, elements},
	}
	for _, sh := range sheets {
		if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		if err := writeRows(f, sh.name, sh.rows); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
