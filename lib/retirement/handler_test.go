package retirementhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/models"
	employeeapimodels "hr-admin-backend/models/api/employee"
	retirementapimodels "hr-admin-backend/models/api/retirement"
	dbmodels "hr-admin-backend/models/db"
)

var alertTime = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

type fakeEmployeeStore struct {
	recs []dbmodels.Employee
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	return rec.ID, nil
}

func (f *fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeStore) ApplyChanges(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeStore) Delete(id string) error {
	return nil
}

func (f *fakeEmployeeStore) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListAll() ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListCount(filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeStore) ListByLga(lgaID string) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListRetirementCandidates(ageCutoff, serviceCutoff time.Time, department string) (list []dbmodels.Employee, err error) {
	for _, rec := range f.recs {
		if department != "" && rec.Department != department {
			continue
		}
		if rec.DateOfBirth.Before(ageCutoff) || rec.DateOfBirth.Equal(ageCutoff) ||
			rec.DateOfFirstAppointment.Before(serviceCutoff) || rec.DateOfFirstAppointment.Equal(serviceCutoff) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func employee(id, name, department string, born, appointed time.Time) dbmodels.Employee {
	rec := dbmodels.Employee{
		FullName:               name,
		Department:             department,
		DateOfBirth:            born,
		DateOfFirstAppointment: appointed,
	}
	rec.ID = id
	return rec
}

// bornRetiringIn positions a date of birth so the age-based retirement date
// lands the given number of days after alertTime.
func bornRetiringIn(days int) time.Time {
	return alertTime.AddDate(-retirementAgeYears, 0, 0).AddDate(0, 0, days)
}

func appointedRetiringIn(days int) time.Time {
	return alertTime.AddDate(-retirementServiceYears, 0, 0).AddDate(0, 0, days)
}

func TestAlerts(t *testing.T) {
	young := alertTime.AddDate(-30, 0, 0)
	recent := alertTime.AddDate(-5, 0, 0)

	t.Run(`priority bands`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(10), recent),
				employee("e2", "B", "Finance", bornRetiringIn(60), recent),
				employee("e3", "C", "Finance", bornRetiringIn(150), recent),
				employee("e4", "D", "Finance", bornRetiringIn(300), recent),
			}},
			now: func() time.Time { return alertTime },
		}
		list, err := h.Alerts(retirementapimodels.AlertFilter{})
		require.Nil(t, err)
		require.Len(t, list, 4)
		require.Equal(t, string(models.AlertPriorityCritical), list[0].Priority)
		require.Equal(t, string(models.AlertPriorityWarning), list[1].Priority)
		require.Equal(t, string(models.AlertPriorityNormal), list[2].Priority)
		require.Equal(t, string(models.AlertPriorityLow), list[3].Priority)
	})

	t.Run(`earliest of age and service wins`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(200), appointedRetiringIn(20)),
			}},
			now: func() time.Time { return alertTime },
		}
		list, err := h.Alerts(retirementapimodels.AlertFilter{})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, 20, list[0].DaysUntil)
		require.Equal(t, alertTime.AddDate(0, 0, 20).Format("2006-01-02"), list[0].RetirementDate)
	})

	t.Run(`overdue stays on the list as critical`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(-40), recent),
			}},
			now: func() time.Time { return alertTime },
		}
		list, err := h.Alerts(retirementapimodels.AlertFilter{})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, -40, list[0].DaysUntil)
		require.Equal(t, string(models.AlertPriorityCritical), list[0].Priority)
	})

	t.Run(`beyond the window is excluded`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(400), recent),
				employee("e2", "B", "Finance", young, recent),
			}},
			now: func() time.Time { return alertTime },
		}
		list, err := h.Alerts(retirementapimodels.AlertFilter{})
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`sorted by days until`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(90), recent),
				employee("e2", "B", "Finance", bornRetiringIn(5), recent),
				employee("e3", "C", "Finance", bornRetiringIn(40), recent),
			}},
			now: func() time.Time { return alertTime },
		}
		list, err := h.Alerts(retirementapimodels.AlertFilter{})
		require.Nil(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "e2", list[0].EmployeeID)
		require.Equal(t, "e3", list[1].EmployeeID)
		require.Equal(t, "e1", list[2].EmployeeID)
	})

	t.Run(`critical count honours the priority filter`, func(t *testing.T) {
		h := impl{
			employeeStore: &fakeEmployeeStore{recs: []dbmodels.Employee{
				employee("e1", "A", "Finance", bornRetiringIn(10), recent),
				employee("e2", "B", "Finance", bornRetiringIn(-3), recent),
				employee("e3", "C", "Finance", bornRetiringIn(120), recent),
			}},
			now: func() time.Time { return alertTime },
		}
		count, err := h.CriticalCount()
		require.Nil(t, err)
		require.Equal(t, 2, count)
	})
}
