package retirementapimodels

type AlertFilter struct {
	Priority   string `json:"priority"`
	Department string `json:"department"`
}

type AlertView struct {
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	RetirementDate string `json:"retirement_date"` // YYYY-MM-DD
	DaysUntil      int    `json:"days_until"`
	Priority       string `json:"priority"`
}
