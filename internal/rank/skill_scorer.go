package rank

import (
	"strings"

	"jobsearch-engine/internal/config"
)

// SkillScorer computes a 0-100 keyword-overlap score.
//
// base = distinct skill phrases present / total skills, as a percentage,
// then +10 for each distinct bonus term present. Clamped to 100 at both
// steps. Pure function of the input text.
type SkillScorer struct {
	Skills     []string
	BonusTerms []string
}

func NewSkillScorer(cfg config.Config) SkillScorer {
	return SkillScorer{
		Skills:     cfg.Scoring.Skills,
		BonusTerms: cfg.Scoring.BonusTerms,
	}
}

func (s SkillScorer) Score(title, description string) int {
	if len(s.Skills) == 0 {
		return 0
	}
	text := strings.ToLower(title + " " + description)

	matches := 0
	for _, skill := range s.Skills {
		if strings.Contains(text, strings.ToLower(skill)) {
			matches++
		}
	}

	base := matches * 100 / len(s.Skills)
	if base > 100 {
		base = 100
	}

	bonus := 0
	for _, term := range s.BonusTerms {
		if strings.Contains(text, strings.ToLower(term)) {
			bonus += 10
		}
	}

	final := base + bonus
	if final > 100 {
		final = 100
	}
	return final
}
