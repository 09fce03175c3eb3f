// Package standings computes a league's ranked point table from scratch on
// every read. No score is ever persisted or cached, so a corrected result is
// reflected on the next read with no invalidation machinery.
package standings

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/models"
)

// Compute derives the ranked standings table. It is a pure function of its
// inputs: same members, predictions, fights and settings always produce the
// same rows, including rank. Cost is O(members x predictions) per call.
//
// Only a FINISHED fight with an actual winner is scoreable; a fight that
// resolved as a draw or no contest counts toward nobody's totals, even for a
// user who predicted exactly that outcome.
func Compute(
	members []models.LeagueMember,
	predictions []models.Prediction,
	fights []models.Fight,
	settings models.ResolvedScoringSettings,
) []models.StandingRow {
	fightsByID := make(map[uuid.UUID]*models.Fight, len(fights))
	for i := range fights {
		fightsByID[fights[i].ID] = &fights[i]
	}

	byUser := make(map[uuid.UUID][]models.Prediction, len(members))
	for _, p := range predictions {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	// Every member gets a row, with or without predictions.
	rows := make([]models.StandingRow, 0, len(members))
	for _, m := range members {
		row := models.StandingRow{
			UserID:   m.UserID,
			Username: m.Username,
		}

		for _, p := range byUser[m.UserID] {
			fight := fightsByID[p.FightID]
			if fight == nil || fight.Status != models.FightStatusFinished || fight.WinnerID == nil {
				continue
			}

			row.Total++
			row.BetsPlaced++

			if p.WinnerID == nil || *p.WinnerID != *fight.WinnerID {
				continue
			}
			row.Correct++
			row.Points += settings.Winner

			methodCorrect := p.Method != nil && fight.Method != nil && *p.Method == *fight.Method
			if methodCorrect {
				row.Points += settings.Method
			}

			decisionPerfect := methodCorrect &&
				(*p.Method == models.MethodDecision || *p.Method == models.MethodDraw)

			roundCorrect := false
			if decisionPerfect {
				row.Points += settings.Decision
			} else if p.Round != nil && fight.Round != nil && *p.Round == *fight.Round {
				row.Points += settings.Round
				roundCorrect = true
			}

			if methodCorrect && (roundCorrect || decisionPerfect) {
				row.PerfectPicks++
			}
		}

		rows = append(rows, row)
	}

	// Ties break on username then user ID so the order is reproducible
	// rather than store iteration order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].Username != rows[j].Username {
			return rows[i].Username < rows[j].Username
		}
		return rows[i].UserID.String() < rows[j].UserID.String()
	})

	// Consecutive distinct ranks; equal points do not share a rank.
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}
