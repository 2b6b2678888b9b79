package dashboardapimodels

type NotificationsView struct {
	PendingAudits  int64 `json:"pending_audits"`
	CriticalAlerts int   `json:"critical_alerts"`
}
