package applicants

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Pendaftar"

var exportHeaders = []string{"No. Pendaftar", "Nama", "Email", "Telp", "Status", "Tanggal Daftar", "Detail"}

// ExportXLSX renders records as a single-sheet workbook in table order.
func ExportXLSX(records []Applicant) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, a := range records {
		row := []any{
			a.ID,
			a.Name,
			a.Email,
			a.Phone,
			StatusLabel(a.Status),
			a.CreatedAt.Format("2006-01-02 15:04"),
			detailsText(a.Details),
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write %s: %w", cell, err)
			}
		}
	}
	return f.WriteToBuffer()
}

func detailsText(d map[string]any) string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(k)
		buf.WriteString("=")
		if s, ok := d[k].(string); ok {
			buf.WriteString(s)
			continue
		}
		v, _ := json.Marshal(d[k])
		buf.Write(v)
	}
	return buf.String()
}
