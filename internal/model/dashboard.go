package model

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	TotalPatients  int            `json:"total_patients"`
	PatientsByRole map[string]int `json:"patients_by_role"`
	TotalVisits    int            `json:"total_visits"`
	WalkInVisits   int            `json:"walk_in_visits"`
	VisitsToday    int            `json:"visits_today"`
}
