package model

// SubjectReport is a Subject together with its computed attendance figures.
type SubjectReport struct {
	Subject
	// Percentage is rounded to one decimal for display; Safe and the two
	// class counts are computed from the raw counters, not from it.
	Percentage      float64 `json:"percentage"`
	Safe            bool    `json:"safe"`
	ClassesToAttend int     `json:"classesToAttend"`
	ClassesBunkable int     `json:"classesBunkable"`
}
