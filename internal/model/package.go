package model

import "time"

type Package struct {
	ID             int64      `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Description    string     `db:"description" json:"description"`
	Price          float64    `db:"price" json:"price"`
	DiscountPrice  *float64   `db:"discount_price" json:"discount_price"`
	KeyFeatures    StringList `db:"key_features" json:"key_features"`
	Duration       string     `db:"duration" json:"duration"`
	ReportDelivery string     `db:"report_delivery" json:"report_delivery"`
	Image          string     `db:"image" json:"image"`
	AgeRange       string     `db:"age_range" json:"age_range"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`

	// Populated by the repository from the tests table.
	Tests []Test `db:"-" json:"tests"`
}

type Test struct {
	ID          int64     `db:"id" json:"id"`
	PackageID   int64     `db:"package_id" json:"package_id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	NormalRange string    `db:"normal_range" json:"normal_range"`
	Unit        string    `db:"unit" json:"unit"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TestInput is a test row as supplied on package create/update.
type TestInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	NormalRange string `json:"normal_range"`
	Unit        string `json:"unit"`
}

type CreatePackageRequest struct {
	Name           string      `json:"name" binding:"required"`
	Description    string      `json:"description"`
	Price          float64     `json:"price" binding:"required,gt=0"`
	DiscountPrice  *float64    `json:"discount_price"`
	KeyFeatures    StringList  `json:"key_features"`
	Duration       string      `json:"duration"`
	ReportDelivery string      `json:"report_delivery"`
	Image          string      `json:"image"`
	AgeRange       string      `json:"age_range"`
	Tests          []TestInput `json:"tests"`
}

// UpdatePackageRequest carries partial updates: nil means leave untouched.
// DiscountPrice is nullable in storage, so it is an Optional and an explicit
// null clears it. Tests, when present, replaces the full test set.
type UpdatePackageRequest struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price"`
	DiscountPrice  Optional[float64] `json:"discount_price"`
	KeyFeatures    *StringList       `json:"key_features"`
	Duration       *string           `json:"duration"`
	ReportDelivery *string           `json:"report_delivery"`
	Image          *string           `json:"image"`
	AgeRange       *string           `json:"age_range"`
	IsActive       *bool             `json:"is_active"`
	Tests          *[]TestInput      `json:"tests"`
}
