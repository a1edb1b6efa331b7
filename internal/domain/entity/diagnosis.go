// Package entity contains the core business objects of the project.
package entity

import "time"

// Severity grades how serious a diagnosed issue (or weather alert) is.
type Severity string

const (
	// SeverityLow indicates a minor or absent issue.
	SeverityLow Severity = "low"
	// SeverityMedium indicates an issue needing treatment soon.
	SeverityMedium Severity = "medium"
	// SeverityHigh indicates an issue needing prompt treatment.
	SeverityHigh Severity = "high"
	// SeverityCritical indicates an issue threatening the whole crop.
	SeverityCritical Severity = "critical"
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the Severity is a valid value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// DiagnosisRequest is the input to a crop diagnosis: a captured image plus an
// optional field location for region-aware advice.
type DiagnosisRequest struct {
	ImageURI string
	Location *Location
}

// DiagnosisResult is the outcome of analyzing one crop image.
type DiagnosisResult struct {
	ID                  string
	CropName            string
	Issue               string
	Severity            Severity
	Confidence          float64 // 0..1.
	Advice              string
	RecommendedProducts []string // Product IDs from the marketplace catalog.
	ImageURI            string
	CreatedAt           time.Time
}
