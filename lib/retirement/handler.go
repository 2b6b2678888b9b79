package retirementhandler

import (
	"sort"
	"time"

	"hr-admin-backend/db"
	employeestore "hr-admin-backend/lib/employee/store"
	"hr-admin-backend/models"
	retirementapimodels "hr-admin-backend/models/api/retirement"
	dbmodels "hr-admin-backend/models/db"
)

const (
	retirementAgeYears     = 60
	retirementServiceYears = 35
	alertWindowDays        = 365
)

type Provider interface {
	Alerts(filter retirementapimodels.AlertFilter) (list []retirementapimodels.AlertView, err error)
	CriticalCount() (count int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
		now:           time.Now,
	}
}

type impl struct {
	employeeStore employeestore.Provider
	now           func() time.Time
}

// Alerts lists employees whose retirement date falls within the next twelve
// months. An employee retires at whichever comes first: age sixty or
// thirty-five years of service. Overdue dates stay on the list as critical.
func (i impl) Alerts(filter retirementapimodels.AlertFilter) (list []retirementapimodels.AlertView, err error) {
	now := i.now()
	ageCutoff := now.AddDate(-(retirementAgeYears - 1), 0, 0)
	serviceCutoff := now.AddDate(-(retirementServiceYears - 1), 0, 0)
	candidates, err := i.employeeStore.ListRetirementCandidates(ageCutoff, serviceCutoff, filter.Department)
	if err != nil {
		return nil, err
	}
	list = make([]retirementapimodels.AlertView, 0, len(candidates))
	for _, rec := range candidates {
		alert, ok := i.toAlert(rec, now)
		if !ok {
			continue
		}
		if filter.Priority != "" && alert.Priority != filter.Priority {
			continue
		}
		list = append(list, alert)
	}
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].DaysUntil < list[b].DaysUntil
	})
	return list, nil
}

func (i impl) CriticalCount() (count int, err error) {
	list, err := i.Alerts(retirementapimodels.AlertFilter{Priority: string(models.AlertPriorityCritical)})
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (i impl) toAlert(rec dbmodels.Employee, now time.Time) (retirementapimodels.AlertView, bool) {
	byAge := rec.DateOfBirth.AddDate(retirementAgeYears, 0, 0)
	byService := rec.DateOfFirstAppointment.AddDate(retirementServiceYears, 0, 0)
	retirementDate := byAge
	if byService.Before(byAge) {
		retirementDate = byService
	}
	daysUntil := int(retirementDate.Sub(now).Hours() / 24)
	if daysUntil > alertWindowDays {
		return retirementapimodels.AlertView{}, false
	}
	return retirementapimodels.AlertView{
		EmployeeID:     rec.ID,
		Name:           rec.FullName,
		Department:     rec.Department,
		RetirementDate: retirementDate.Format("2006-01-02"),
		DaysUntil:      daysUntil,
		Priority:       string(priorityFor(daysUntil)),
	}, true
}

func priorityFor(daysUntil int) models.AlertPriority {
	switch {
	case daysUntil <= 30:
		return models.AlertPriorityCritical
	case daysUntil <= 90:
		return models.AlertPriorityWarning
	case daysUntil <= 180:
		return models.AlertPriorityNormal
	default:
		return models.AlertPriorityLow
	}
}
