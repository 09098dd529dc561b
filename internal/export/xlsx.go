package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rollcall/internal"
)

func WriteXLSX(rows []internal.OutputRow, path string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, row.Identifier)
		set(2, row.LastName)
		set(3, row.FirstName)
		set(4, row.Party)
		set(5, row.Region)
		set(6, row.SubRegion)
		set(7, row.Choice)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}
