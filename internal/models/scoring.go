package models

// ScoringSettings holds a league's per-league scoring overrides, stored as
// sparse JSONB. Nil fields fall back to the defaults at read time; unknown
// JSON keys are ignored.
type ScoringSettings struct {
	Winner   *int `json:"winner,omitempty"`
	Method   *int `json:"method,omitempty"`
	Round    *int `json:"round,omitempty"`
	Decision *int `json:"decision,omitempty"`
}

// ResolvedScoringSettings is the fully-defaulted configuration the scoring
// engine runs with.
type ResolvedScoringSettings struct {
	Winner   int `json:"winner"`
	Method   int `json:"method"`
	Round    int `json:"round"`
	Decision int `json:"decision"`
}

// DefaultScoringSettings returns the stock point values applied for any key
// a league does not override.
func DefaultScoringSettings() ResolvedScoringSettings {
	return ResolvedScoringSettings{
		Winner:   10,
		Method:   5,
		Round:    5,
		Decision: 0,
	}
}

// Resolve merges the league overrides over the defaults.
func (s ScoringSettings) Resolve() ResolvedScoringSettings {
	out := DefaultScoringSettings()
	if s.Winner != nil {
		out.Winner = *s.Winner
	}
	if s.Method != nil {
		out.Method = *s.Method
	}
	if s.Round != nil {
		out.Round = *s.Round
	}
	if s.Decision != nil {
		out.Decision = *s.Decision
	}
	return out
}
