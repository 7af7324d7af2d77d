package fixture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadStageMap(t *testing.T) {
	path := writeFixture(t, "status-map.json", `{
		"application_submitted": "received",
		"interview_panel": "interviewing",
		"offer_extended": "offer"
	}`)

	stageMap, err := LoadStageMap(path)
	require.NoError(t, err)
	assert.Equal(t, entity.StageReceived, stageMap.Normalize("application_submitted"))
	assert.Equal(t, entity.StageInterviewing, stageMap.Normalize("interview_panel"))
	assert.Equal(t, entity.StageOffer, stageMap.Normalize("offer_extended"))
	assert.Equal(t, entity.StageReceived, stageMap.Normalize("something_else"))
}

func TestLoadStageMap_RejectsUnknownStage(t *testing.T) {
	path := writeFixture(t, "status-map.json", `{"weird": "archived"}`)

	_, err := LoadStageMap(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestLoadStageMap_RejectsInvalidJSON(t *testing.T) {
	path := writeFixture(t, "status-map.json", `{not json`)

	_, err := LoadStageMap(path)
	assert.Error(t, err)
}

func TestLoadStageMap_MissingFile(t *testing.T) {
	_, err := LoadStageMap(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCandidates(t *testing.T) {
	path := writeFixture(t, "mock-candidates.json", `[
		{"id": "cand-001", "fullName": "Jordan Rivera", "role": "Engineer", "status": "application_submitted", "channel": "email"}
	]`)
	stageMap := entity.StageMap{"application_submitted": entity.StageReceived}

	candidates, err := LoadCandidates(path, stageMap)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	candidate := candidates[0]
	assert.Equal(t, "cand-001", candidate.ID)
	assert.Equal(t, "Jordan R.", candidate.Name)
	assert.Equal(t, "JR", candidate.Initials)
	assert.Equal(t, entity.StageReceived, candidate.Stage)
	assert.Equal(t, entity.ChannelEmail, candidate.Channel)
	require.Len(t, candidate.Timeline, 1)
	assert.Equal(t, entity.StageReceived, candidate.Timeline[0].Stage)
}

func TestLoadCandidates_UnknownStatusFallsBack(t *testing.T) {
	path := writeFixture(t, "mock-candidates.json", `[
		{"id": "cand-001", "fullName": "Jordan Rivera", "role": "Engineer", "status": "mystery_status", "channel": "sms"}
	]`)

	candidates, err := LoadCandidates(path, entity.StageMap{})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, entity.StageReceived, candidates[0].Stage)
}

func TestLoadCandidates_RejectsMissingFields(t *testing.T) {
	path := writeFixture(t, "mock-candidates.json", `[
		{"id": "cand-001", "role": "Engineer", "status": "x", "channel": "email"}
	]`)

	_, err := LoadCandidates(path, entity.StageMap{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestLoadCandidates_RejectsUnknownChannel(t *testing.T) {
	path := writeFixture(t, "mock-candidates.json", `[
		{"id": "cand-001", "fullName": "Jordan Rivera", "role": "Engineer", "status": "x", "channel": "carrier_pigeon"}
	]`)

	_, err := LoadCandidates(path, entity.StageMap{})
	assert.Error(t, err)
}

func TestFromRaw_MasksFullName(t *testing.T) {
	candidate := FromRaw(RawCandidate{
		ID:       "cand-007",
		FullName: "Ada Lovelace",
		Role:     "Engineer",
		Status:   "application_submitted",
		Channel:  "email",
	}, entity.StageMap{"application_submitted": entity.StageReceived}, time.Now())

	assert.Equal(t, "Ada L.", candidate.Name)
	assert.Equal(t, "AL", candidate.Initials)
	assert.NotContains(t, candidate.Name, "Lovelace")
}
