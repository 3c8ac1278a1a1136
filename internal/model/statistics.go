package model

// DashboardStatistics aggregates counts for the admin dashboard.
type DashboardStatistics struct {
	TotalAppointments    int64            `json:"total_appointments"`
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
	LocationsCount       int64            `json:"locations_count"`
	DepartmentsCount     int64            `json:"departments_count"`
	ActiveDoctorsCount   int64            `json:"active_doctors_count"`
	PackagesCount        int64            `json:"packages_count"`
}
