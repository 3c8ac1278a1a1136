package model

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment types: a normal visit booking or a health-check package booking.
const (
	AppointmentTypeNormal  = 1
	AppointmentTypePackage = 2
)

type Appointment struct {
	ID             int64             `db:"id" json:"id"`
	FullName       string            `db:"full_name" json:"full_name"`
	MobileNumber   string            `db:"mobile_number" json:"mobile_number"`
	Email          string            `db:"email" json:"email"`
	LocationID     *int64            `db:"location_id" json:"location_id"`
	DepartmentID   *int64            `db:"department_id" json:"department_id"`
	DoctorID       *int64            `db:"doctor_id" json:"doctor_id"`
	ReasonForVisit string            `db:"reason_for_visit" json:"reason_for_visit"`
	Message        string            `db:"message" json:"message"`
	PreferredDate  *time.Time        `db:"preferred_date" json:"preferred_date"`
	PreferredTime  string            `db:"preferred_time" json:"preferred_time"`
	Status         AppointmentStatus `db:"status" json:"status"`
	PackageID      *int64            `db:"package_id" json:"package_id"`
	Type           int               `db:"type" json:"type"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updated_at"`
}

// CreateAppointmentRequest is the public booking payload. Location,
// department and doctor arrive by name, not id; PackageID switches the
// booking to a package booking.
type CreateAppointmentRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	MobileNumber   string `json:"mobile_number" binding:"required,mobile"`
	Email          string `json:"email" binding:"omitempty,email"`
	Location       string `json:"location"`
	Department     string `json:"department"`
	Doctor         string `json:"doctor"`
	ReasonForVisit string `json:"reason_for_visit"`
	Message        string `json:"message"`
	Notes          string `json:"notes"`
	PreferredDate  string `json:"preferred_date"`
	PreferredTime  string `json:"preferred_time"`
	PackageID      *int64 `json:"package_id"`
}

// UpdateAppointmentRequest carries partial updates. PreferredDate is
// nullable in storage, so it is an Optional and an explicit null clears it.
type UpdateAppointmentRequest struct {
	Status        *AppointmentStatus `json:"status"`
	PreferredDate Optional[string]   `json:"preferred_date"`
	PreferredTime *string            `json:"preferred_time"`
	Message       *string            `json:"message"`
}

type AppointmentFilters struct {
	LocationID   int64             `form:"location_id"`
	DepartmentID int64             `form:"department_id"`
	Type         int               `form:"type"`
	Status       AppointmentStatus `form:"status"`
	StartDate    string            `form:"start_date"`
	EndDate      string            `form:"end_date"`
	ListParams
}
