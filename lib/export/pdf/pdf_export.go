package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	retirementapimodels "hr-admin-backend/models/api/retirement"
)

// GenerateRetirementReport renders the alert list as a printable table.
func GenerateRetirementReport(generatedAt string, list []retirementapimodels.AlertView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRetirementReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, "Upcoming retirements", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", generatedAt), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{60, 40, 30, 25, 25}
	headers := []string{"Employee", "Department", "Retirement", "Days", "Priority"}
	pdf.SetFont("Helvetica", "B", 10)
	for idx, header := range headers {
		pdf.CellFormat(colWidths[idx], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range list {
		pdf.CellFormat(colWidths[0], 6, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, item.Department, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, item.RetirementDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%d", item.DaysUntil), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, item.Priority, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
