package directory

import (
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// exportHeader is the column order of the spreadsheet view.
var exportHeader = []string{"ID", "Name", "URL", "Industry", "Stage", "Location", "Description", "Founded"}

// ExportXLSX writes the full directory as a single-sheet workbook.
func (d *Directory) ExportXLSX(w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Companies")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range exportHeader {
		header.AddCell().SetString(col)
	}

	for _, c := range d.companies {
		row := sheet.AddRow()
		row.AddCell().SetString(c.ID)
		row.AddCell().SetString(c.Name)
		row.AddCell().SetString(c.URL)
		row.AddCell().SetString(c.Industry)
		row.AddCell().SetString(c.Stage)
		row.AddCell().SetString(c.Location)
		row.AddCell().SetString(c.Description)
		row.AddCell().SetString(strconv.Itoa(c.Founded))
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write workbook")
	}
	return nil
}
