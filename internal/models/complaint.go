package models

import "strings"

// Category is the closed set of complaint categories. The zero value is the
// "not chosen yet" state of a form and is never persisted.
type Category string

const (
	CategoryNone           Category = ""
	CategoryInfrastructure Category = "Infrastructure"
	CategoryAcademics      Category = "Academics"
	CategoryFacilities     Category = "Facilities"
	CategoryOther          Category = "Other"
)

// Categories lists every selectable category in display order.
var Categories = []Category{
	CategoryInfrastructure,
	CategoryAcademics,
	CategoryFacilities,
	CategoryOther,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a label only when it exactly matches a known category
// after surrounding whitespace is trimmed.
func ParseCategory(label string) (Category, bool) {
	c := Category(strings.TrimSpace(label))
	if !c.Valid() {
		return CategoryNone, false
	}
	return c, true
}

// Status is the review state of a complaint.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusInReview Status = "In Review"
	StatusResolved Status = "Resolved"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusPending, StatusInReview, StatusResolved}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Complaint is the only persisted entity. Field names and order match the
// stored JSON record.
type Complaint struct {
	// ID is an opaque unique identifier, assigned at creation.
	ID string `json:"id"`
	// Category is never empty once persisted.
	Category Category `json:"category"`
	// Description is the free-text body written by the student.
	Description string `json:"description"`
	// Date is the creation day in YYYY-MM-DD form.
	Date string `json:"date"`
	// Status is the only field that changes after creation.
	Status Status `json:"status"`
	// Anonymous is a display hint; no submitter identity is stored either way.
	Anonymous bool `json:"anonymous"`
}

// DateLayout is the calendar-day format used for Complaint.Date.
const DateLayout = "2006-01-02"
