package model

import "time"

type DoctorAvailability string

const (
	DoctorAvailable DoctorAvailability = "available"
	DoctorBusy      DoctorAvailability = "busy"
	DoctorOnLeave   DoctorAvailability = "on_leave"
)

func (a DoctorAvailability) Valid() bool {
	switch a {
	case DoctorAvailable, DoctorBusy, DoctorOnLeave:
		return true
	}
	return false
}

type Doctor struct {
	ID             int64              `db:"id" json:"id"`
	Name           string             `db:"name" json:"name"`
	Qualifications StringList         `db:"qualifications" json:"qualifications"`
	Experience     *int               `db:"experience" json:"experience"`
	Image          string             `db:"image" json:"image"`
	Availability   DoctorAvailability `db:"availability" json:"availability"`
	LocationID     int64              `db:"location_id" json:"location_id"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at" json:"updated_at"`

	// Populated by the repository.
	Location        *LocationRef    `db:"-" json:"location"`
	Departments     []DepartmentRef `db:"-" json:"departments"`
	Specializations []string        `db:"-" json:"specializations"`
}

type CreateDoctorRequest struct {
	Name            string     `json:"name" binding:"required"`
	Qualifications  StringList `json:"qualifications"`
	Experience      *int       `json:"experience"`
	Image           string     `json:"image"`
	Availability    string     `json:"availability"`
	LocationID      int64      `json:"location_id" binding:"required"`
	Departments     []int64    `json:"departments"`
	Specializations []string   `json:"specializations"`
}

// UpdateDoctorRequest carries partial updates: nil means leave untouched.
// Departments and Specializations, when present, replace the full sets.
type UpdateDoctorRequest struct {
	Name            *string     `json:"name"`
	Qualifications  *StringList `json:"qualifications"`
	Experience      *int        `json:"experience"`
	Image           *string     `json:"image"`
	Availability    *string     `json:"availability"`
	LocationID      *int64      `json:"location_id"`
	Departments     *[]int64    `json:"departments"`
	Specializations *[]string   `json:"specializations"`
}

// DoctorSearchFilters narrows a doctor search. Query matches name or any
// specialization as a case-insensitive substring.
type DoctorSearchFilters struct {
	Query        string `form:"q"`
	DepartmentID int64  `form:"department"`
	LocationID   int64  `form:"location"`
}
