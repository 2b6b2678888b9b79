package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	retirementapimodels "hr-admin-backend/models/api/retirement"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	ExportRetirementAlerts(list []retirementapimodels.AlertView) (*bytes.Buffer, error)
	ExportEmployeeRegister(list []dbmodels.Employee) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var alertHeaders = []string{"Employee", "Department", "Retirement date", "Days until", "Priority"}

func (i impl) ExportRetirementAlerts(list []retirementapimodels.AlertView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, alertHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeAlertData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Retirement alerts")
	return f.WriteToBuffer()
}

func writeAlertData(f *excelize.File, sheet string, list []retirementapimodels.AlertView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(alertHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.RetirementDate); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.DaysUntil); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Priority); err != nil {
			return row, err
		}
	}
	return row, nil
}

var employeeHeaders = []string{"Full name", "Sex", "Rank", "Grade level", "Date of birth", "First appointment", "LGA of origin", "Department", "Present station", "Phone"}

func (i impl) ExportEmployeeRegister(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Employees")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return row, err
	}
	const dateLayout = "2006-01-02"
	for _, item := range list {
		row++
		values := []interface{}{
			item.FullName,
			item.Sex,
			item.Rank,
			item.GradeLevel,
			item.DateOfBirth.Format(dateLayout),
			item.DateOfFirstAppointment.Format(dateLayout),
			item.LgaOfOrigin,
			item.Department,
			item.PresentStation,
			item.PhoneNumber,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
