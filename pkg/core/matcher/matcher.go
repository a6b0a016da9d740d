// Package matcher computes the compatibility score between a volunteer's
// skills and an event's skill requirements. The score is deterministic and
// stored on the application at submission time, so it always reflects the
// applicant's skills as of when they applied.
package matcher

import (
	"math"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
)

const (
	// DefaultBaselineScore is returned for events with no skill
	// requirements unless the configuration overrides it
	DefaultBaselineScore = 70

	maxProficiency = 5
)

// Score returns a 0-100 compatibility score. Each required skill contributes
// points proportional to its importance level; a volunteer holding the skill
// earns importance * proficiency out of a possible importance * 5. The total
// is normalized to 0-100. An event with no requirements scores baseline for
// every volunteer.
func Score(volunteerSkills []model.SkillRating, required []model.SkillRequirement, baseline int) int {
	if len(required) == 0 {
		return clampScore(baseline)
	}

	proficiencyBySkill := make(map[string]int, len(volunteerSkills))
	for _, s := range volunteerSkills {
		proficiencyBySkill[s.SkillID] = clampProficiency(s.Proficiency)
	}

	earned := 0
	possible := 0
	for _, req := range required {
		weight := int(req.Importance)
		if !req.Importance.IsValid() {
			weight = int(model.ImportancePreferred)
		}
		possible += weight * maxProficiency
		if proficiency, ok := proficiencyBySkill[req.SkillID]; ok {
			earned += weight * proficiency
		}
	}

	return int(math.Round(100 * float64(earned) / float64(possible)))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func clampProficiency(p int) int {
	if p < 1 {
		return 1
	}
	if p > maxProficiency {
		return maxProficiency
	}
	return p
}
