package model

import "errors"

// Validation errors returned by Subject.Validate.
var (
	ErrEmptyName          = errors.New("subject name must not be empty")
	ErrNonPositiveCredits = errors.New("credits must be a positive integer")
	ErrNegativeCount      = errors.New("class counts must be non-negative")
	ErrAttendedOverTotal  = errors.New("attended classes cannot exceed total classes")
)

// Subject is one tracked course. The JSON tags are the persisted wire
// format and must not change without migrating stored blobs.
type Subject struct {
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Attended int    `json:"attendedClasses"`
	Total    int    `json:"totalClasses"`
}

// Validate checks the invariants every stored Subject must hold:
// non-empty name, positive credits, non-negative counts, attended <= total.
func (s Subject) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Credits <= 0 {
		return ErrNonPositiveCredits
	}
	if s.Attended < 0 || s.Total < 0 {
		return ErrNegativeCount
	}
	if s.Attended > s.Total {
		return ErrAttendedOverTotal
	}
	return nil
}

// CreateSubjectRequest is the payload for adding a subject.
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Credits  int    `json:"credits" binding:"required,min=1"`
	Attended int    `json:"attendedClasses" binding:"min=0"`
	Total    int    `json:"totalClasses" binding:"min=0"`
}

// MarkClassRequest is the payload for recording one held class.
// Attended is a pointer so that an explicit false survives binding.
type MarkClassRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}
