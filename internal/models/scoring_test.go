package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestResolve_EmptySettingsUseDefaults(t *testing.T) {
	resolved := ScoringSettings{}.Resolve()
	assert.Equal(t, DefaultScoringSettings(), resolved)
}

func TestResolve_PartialOverride(t *testing.T) {
	resolved := ScoringSettings{Winner: intp(3), Decision: intp(7)}.Resolve()

	assert.Equal(t, 3, resolved.Winner)
	assert.Equal(t, 5, resolved.Method)
	assert.Equal(t, 5, resolved.Round)
	assert.Equal(t, 7, resolved.Decision)
}

func TestResolve_ZeroOverrideIsNotMissing(t *testing.T) {
	resolved := ScoringSettings{Round: intp(0)}.Resolve()
	assert.Equal(t, 0, resolved.Round)
}

func TestScoringSettings_UnknownJSONKeysIgnored(t *testing.T) {
	var settings ScoringSettings
	err := json.Unmarshal([]byte(`{"winner": 8, "perfect_card_bonus": 50}`), &settings)
	require.NoError(t, err)

	require.NotNil(t, settings.Winner)
	assert.Equal(t, 8, *settings.Winner)
	assert.Nil(t, settings.Method)
}
