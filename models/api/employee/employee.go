package employeeapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "hr-admin-backend/models/api"
	dbmodels "hr-admin-backend/models/db"
)

type EmployeeData struct {
	FullName               string `json:"full_name"`
	Sex                    string `json:"sex"`
	Rank                   string `json:"rank"`
	GradeLevel             string `json:"grade_level"`
	DateOfBirth            string `json:"date_of_birth"`             // YYYY-MM-DD
	DateOfFirstAppointment string `json:"date_of_first_appointment"` // YYYY-MM-DD
	LgaOfOrigin            string `json:"lga_of_origin"`
	Department             string `json:"department"`
	PresentStation         string `json:"present_station"`
	PhoneNumber            string `json:"phone_number"`
	Qualifications         string `json:"qualifications"`
	DateOfConfirmation     string `json:"date_of_confirmation"`
	DateOfTransfer         string `json:"date_of_transfer"`
	Remark                 string `json:"remark"`
	LgaID                  string `json:"lga_id"`
}

const dateLayout = "2006-01-02"

func (d EmployeeData) Validate() error {
	if d.FullName == "" {
		return errors.New("full name is required")
	}
	if d.Sex == "" {
		return errors.New("sex is required")
	}
	if d.Rank == "" {
		return errors.New("rank is required")
	}
	if d.GradeLevel == "" {
		return errors.New("grade level is required")
	}
	if d.LgaOfOrigin == "" {
		return errors.New("LGA of origin is required")
	}
	if d.Department == "" {
		return errors.New("department is required")
	}
	if d.PresentStation == "" {
		return errors.New("present station is required")
	}
	if _, err := time.Parse(dateLayout, d.DateOfBirth); err != nil {
		return errors.New("date of birth is required in YYYY-MM-DD format")
	}
	if _, err := time.Parse(dateLayout, d.DateOfFirstAppointment); err != nil {
		return errors.New("date of first appointment is required in YYYY-MM-DD format")
	}
	for _, optional := range []string{d.DateOfConfirmation, d.DateOfTransfer} {
		if optional == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, optional); err != nil {
			return errors.Errorf("invalid date %q, expected YYYY-MM-DD", optional)
		}
	}
	return nil
}

func (d EmployeeData) ToRecord() (dbmodels.Employee, error) {
	dob, err := time.Parse(dateLayout, d.DateOfBirth)
	if err != nil {
		return dbmodels.Employee{}, errors.Wrap(err, "invalid date of birth")
	}
	dofa, err := time.Parse(dateLayout, d.DateOfFirstAppointment)
	if err != nil {
		return dbmodels.Employee{}, errors.Wrap(err, "invalid date of first appointment")
	}
	rec := dbmodels.Employee{
		FullName:               d.FullName,
		Sex:                    d.Sex,
		Rank:                   d.Rank,
		GradeLevel:             d.GradeLevel,
		DateOfBirth:            dob,
		DateOfFirstAppointment: dofa,
		LgaOfOrigin:            d.LgaOfOrigin,
		Department:             d.Department,
		PresentStation:         d.PresentStation,
		PhoneNumber:            d.PhoneNumber,
		Qualifications:         d.Qualifications,
		Remark:                 d.Remark,
	}
	if d.DateOfConfirmation != "" {
		v, err := time.Parse(dateLayout, d.DateOfConfirmation)
		if err != nil {
			return dbmodels.Employee{}, errors.Wrap(err, "invalid date of confirmation")
		}
		rec.DateOfConfirmation = &v
	}
	if d.DateOfTransfer != "" {
		v, err := time.Parse(dateLayout, d.DateOfTransfer)
		if err != nil {
			return dbmodels.Employee{}, errors.Wrap(err, "invalid date of transfer")
		}
		rec.DateOfTransfer = &v
	}
	if d.LgaID != "" {
		rec.LgaID = &d.LgaID
	}
	return rec, nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search     string `json:"search"`
	Department string `json:"department"`
}

type EmployeeView struct {
	ID                     string  `json:"id"`
	FullName               string  `json:"full_name"`
	Sex                    string  `json:"sex"`
	Rank                   string  `json:"rank"`
	GradeLevel             string  `json:"grade_level"`
	DateOfBirth            string  `json:"date_of_birth"`
	DateOfFirstAppointment string  `json:"date_of_first_appointment"`
	LgaOfOrigin            string  `json:"lga_of_origin"`
	Department             string  `json:"department"`
	PresentStation         string  `json:"present_station"`
	PhoneNumber            string  `json:"phone_number,omitempty"`
	Qualifications         string  `json:"qualifications,omitempty"`
	DateOfConfirmation     *string `json:"date_of_confirmation,omitempty"`
	DateOfTransfer         *string `json:"date_of_transfer,omitempty"`
	Remark                 string  `json:"remark,omitempty"`
	ProfilePictureURL      string  `json:"profile_picture_url,omitempty"`
	LgaID                  string  `json:"lga_id,omitempty"`
	LgaName                string  `json:"lga_name,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:                     rec.ID,
		FullName:               rec.FullName,
		Sex:                    rec.Sex,
		Rank:                   rec.Rank,
		GradeLevel:             rec.GradeLevel,
		DateOfBirth:            rec.DateOfBirth.Format(dateLayout),
		DateOfFirstAppointment: rec.DateOfFirstAppointment.Format(dateLayout),
		LgaOfOrigin:            rec.LgaOfOrigin,
		Department:             rec.Department,
		PresentStation:         rec.PresentStation,
		PhoneNumber:            rec.PhoneNumber,
		Qualifications:         rec.Qualifications,
		Remark:                 rec.Remark,
		ProfilePictureURL:      rec.ProfilePictureURL,
	}
	if rec.DateOfConfirmation != nil {
		s := rec.DateOfConfirmation.Format(dateLayout)
		view.DateOfConfirmation = &s
	}
	if rec.DateOfTransfer != nil {
		s := rec.DateOfTransfer.Format(dateLayout)
		view.DateOfTransfer = &s
	}
	if rec.LgaID != nil {
		view.LgaID = *rec.LgaID
	}
	if rec.Lga != nil {
		view.LgaName = rec.Lga.Name
	}
	return view
}
