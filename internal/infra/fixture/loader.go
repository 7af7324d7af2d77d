// Package fixture loads and validates the startup seed data: the raw-status
// mapping and the mock candidate list. A malformed fixture is a configuration
// error and aborts startup; it never surfaces as a runtime request failure.
package fixture

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"tracker/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// statusMapSchema constrains the mapping document: raw status string to one
// of the fixed internal stages.
const statusMapSchema = `{
  "type": "object",
  "additionalProperties": {
    "type": "string",
    "enum": ["received", "inReview", "interviewing", "offer", "rejected"]
  }
}`

// candidatesSchema constrains the seed list. The full name is required here
// but consumed at ingestion; it never reaches the store.
const candidatesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "fullName", "role", "status", "channel"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "fullName": {"type": "string", "minLength": 1},
      "role": {"type": "string", "minLength": 1},
      "status": {"type": "string"},
      "channel": {"type": "string", "enum": ["email", "sms"]}
    },
    "additionalProperties": false
  }
}`

// RawCandidate is a record as it appears in the seed fixture, before
// normalization and masking.
type RawCandidate struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Channel  string `json:"channel"`
}

// LoadStageMap reads and validates the raw-status mapping fixture.
func LoadStageMap(path string) (entity.StageMap, error) {
	raw, err := readValidated(path, statusMapSchema)
	if err != nil {
		return nil, errors.Wrap(err, "load status map fixture")
	}

	var stageMap entity.StageMap
	if err := json.Unmarshal(raw, &stageMap); err != nil {
		return nil, errors.Wrap(err, "decode status map fixture")
	}

	return stageMap, nil
}

// LoadCandidates reads the seed fixture and turns each raw record into a
// store-ready candidate: status normalized through the stage map, identity
// masked, timeline seeded with the initial stage.
func LoadCandidates(path string, stageMap entity.StageMap) ([]*entity.Candidate, error) {
	raw, err := readValidated(path, candidatesSchema)
	if err != nil {
		return nil, errors.Wrap(err, "load candidates fixture")
	}

	var rawCandidates []RawCandidate
	if err := json.Unmarshal(raw, &rawCandidates); err != nil {
		return nil, errors.Wrap(err, "decode candidates fixture")
	}

	now := time.Now()
	candidates := make([]*entity.Candidate, 0, len(rawCandidates))
	for _, record := range rawCandidates {
		candidates = append(candidates, FromRaw(record, stageMap, now))
	}

	return candidates, nil
}

// FromRaw builds a store-ready candidate from a raw record.
func FromRaw(record RawCandidate, stageMap entity.StageMap, now time.Time) *entity.Candidate {
	stage := stageMap.Normalize(record.Status)
	masked := entity.MaskName(record.FullName)

	return &entity.Candidate{
		ID:       record.ID,
		Name:     masked.Name,
		Initials: masked.Initials,
		Role:     record.Role,
		Stage:    stage,
		Channel:  entity.Channel(record.Channel),
		Timeline: []entity.TimelineEntry{
			{Stage: stage, Timestamp: now},
		},
	}
}

// readValidated reads a fixture file and validates it against the schema
// before any decoding happens, so a malformed document fails with field-level
// detail instead of a half-decoded struct.
func readValidated(path string, schema string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "validate fixture %s", path)
	}

	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("fixture " + path + " failed validation:")
		for _, desc := range result.Errors() {
			sb.WriteString("\n  " + desc.Field() + ": " + desc.Description())
		}

		return nil, errors.New(sb.String())
	}

	return raw, nil
}
