package rank

import (
	"testing"

	"jobsearch-engine/internal/config"
)

func defaultScorer() SkillScorer {
	return NewSkillScorer(config.Default())
}

func TestScoreWorkedExample(t *testing.T) {
	s := defaultScorer()

	// Matches 5 of 13 skills (business analyst, crm, sql, senior, healthcare)
	// -> base 5*100/13 = 38, plus bonus for "senior" and "business analyst"
	// -> 38 + 20 = 58.
	got := s.Score("Senior Business Analyst", "CRM and SQL experience in healthcare")
	if got != 58 {
		t.Errorf("expected score 58, got %d", got)
	}
}

func TestScoreRange(t *testing.T) {
	s := defaultScorer()

	cases := []struct {
		name        string
		title, desc string
	}{
		{"empty", "", ""},
		{"no match", "Forklift Operator", "warehouse shifts"},
		{"everything", "Senior Business Analyst Product Manager",
			"requirements crm sql stakeholder process analysis healthcare remote data business intelligence"},
		{"unicode", "Kraków Analityk", "żółć"},
	}
	for _, tc := range cases {
		got := s.Score(tc.title, tc.desc)
		if got < 0 || got > 100 {
			t.Errorf("%s: score %d out of [0,100]", tc.name, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := defaultScorer()
	first := s.Score("Senior Data Engineer", "SQL and CRM work, remote")
	for i := 0; i < 5; i++ {
		if got := s.Score("Senior Data Engineer", "SQL and CRM work, remote"); got != first {
			t.Fatalf("run %d: score changed from %d to %d", i, first, got)
		}
	}
}

func TestScoreMonotonicInMatches(t *testing.T) {
	// No bonus terms, so the score tracks base matches only.
	s := SkillScorer{Skills: []string{"sql", "crm", "data", "process"}}

	prev := -1
	texts := []string{
		"nothing relevant",
		"sql",
		"sql crm",
		"sql crm data",
		"sql crm data process",
	}
	for _, txt := range texts {
		got := s.Score("", txt)
		if got < prev {
			t.Fatalf("score decreased with more matches: %q -> %d (prev %d)", txt, got, prev)
		}
		prev = got
	}
}

func TestScoreClampsAt100(t *testing.T) {
	s := SkillScorer{
		Skills:     []string{"go"},
		BonusTerms: []string{"go", "golang"},
	}
	if got := s.Score("go golang", ""); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
}

func TestScoreRepeatedBonusTermCountsOnce(t *testing.T) {
	s := SkillScorer{
		Skills:     []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		BonusTerms: []string{"remote"},
	}
	once := s.Score("remote", "")
	twice := s.Score("remote remote remote", "")
	if once != twice {
		t.Errorf("repeated bonus term changed score: %d vs %d", once, twice)
	}
}

func TestScoreEmptySkillsIsZero(t *testing.T) {
	s := SkillScorer{BonusTerms: []string{"remote"}}
	if got := s.Score("remote senior", "anything"); got != 0 {
		t.Errorf("expected 0 with no skills configured, got %d", got)
	}
}
