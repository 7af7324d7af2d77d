// Package entity contains the core business objects of the project.
package entity

// Stage is one of the fixed candidate-pipeline states. The first four form
// the forward progression shown on the tracker progress bar; rejected is a
// terminal stage reachable from any point.
type Stage string

const (
	StageReceived     Stage = "received"
	StageInReview     Stage = "inReview"
	StageInterviewing Stage = "interviewing"
	StageOffer        Stage = "offer"
	StageRejected     Stage = "rejected"
)

// Stages lists every valid stage in progress-bar order.
var Stages = []Stage{StageReceived, StageInReview, StageInterviewing, StageOffer, StageRejected}

// IsValid reports whether s is a member of the fixed stage set.
func (s Stage) IsValid() bool {
	switch s {
	case StageReceived, StageInReview, StageInterviewing, StageOffer, StageRejected:
		return true
	}

	return false
}

func (s Stage) String() string {
	return string(s)
}

// StageMap maps raw upstream ATS status strings to internal stages.
type StageMap map[string]Stage

// Normalize returns the stage mapped to rawStatus, or StageReceived when the
// status is not in the map. Unmapped input is policy, not an error: an
// unknown upstream status means the application was at least received.
func (m StageMap) Normalize(rawStatus string) Stage {
	if stage, ok := m[rawStatus]; ok && stage.IsValid() {
		return stage
	}

	return StageReceived
}
