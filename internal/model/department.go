package model

import "time"

type Department struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Heading      string     `db:"heading" json:"heading"`
	Description  string     `db:"description" json:"description"`
	Image        string     `db:"image" json:"image"`
	Overview     string     `db:"overview" json:"overview"`
	Achievements string     `db:"achievements" json:"achievements"`
	Legacy       string     `db:"legacy" json:"legacy"`
	Treatments   StringList `db:"treatments" json:"treatments"`
	Facilities   StringList `db:"facilities" json:"facilities"`
	Expertise    string     `db:"expertise" json:"expertise"`
	WhyChoose    StringList `db:"why_choose" json:"why_choose"`
	FAQs         FAQList    `db:"faqs" json:"faqs"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`

	// Populated by the repository from the department_locations junction.
	Locations []LocationRef `db:"-" json:"locations"`
}

// DepartmentRef is the flattened department shape embedded in doctor reads.
type DepartmentRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CreateDepartmentRequest struct {
	Name         string     `json:"name" binding:"required"`
	Heading      string     `json:"heading"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Overview     string     `json:"overview"`
	Achievements string     `json:"achievements"`
	Legacy       string     `json:"legacy"`
	Treatments   StringList `json:"treatments"`
	Facilities   StringList `json:"facilities"`
	Expertise    string     `json:"expertise"`
	WhyChoose    StringList `json:"why_choose"`
	FAQs         FAQList    `json:"faqs"`
	Locations    []int64    `json:"locations"`
}

// UpdateDepartmentRequest carries partial updates: nil means leave
// untouched. Locations, when present, replaces the full association set.
type UpdateDepartmentRequest struct {
	Name         *string     `json:"name"`
	Heading      *string     `json:"heading"`
	Description  *string     `json:"description"`
	Image        *string     `json:"image"`
	Overview     *string     `json:"overview"`
	Achievements *string     `json:"achievements"`
	Legacy       *string     `json:"legacy"`
	Treatments   *StringList `json:"treatments"`
	Facilities   *StringList `json:"facilities"`
	Expertise    *string     `json:"expertise"`
	WhyChoose    *StringList `json:"why_choose"`
	FAQs         *FAQList    `json:"faqs"`
	IsActive     *bool       `json:"is_active"`
	Locations    *[]int64    `json:"locations"`
}

// UpdateDepartmentContentRequest updates only the long-form content fields.
type UpdateDepartmentContentRequest struct {
	Overview     *string     `json:"overview"`
	Achievements *string     `json:"achievements"`
	Legacy       *string     `json:"legacy"`
	Treatments   *StringList `json:"treatments"`
	Facilities   *StringList `json:"facilities"`
	Expertise    *string     `json:"expertise"`
	WhyChoose    *StringList `json:"why_choose"`
	FAQs         *FAQList    `json:"faqs"`
}
