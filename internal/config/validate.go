package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus any findings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Scoring.Skills = trimList(out.Scoring.Skills)
	out.Scoring.BonusTerms = trimList(out.Scoring.BonusTerms)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if len(out.Scoring.Skills) == 0 {
		res.addErr("scoring.skills must have at least 1 phrase")
	}
	if len(out.Scoring.BonusTerms) == 0 {
		res.addWarn("scoring.bonus_terms is empty; scores will come from base matches only.")
	}
	if out.Search.MaxPerSource <= 0 {
		res.addErr("search.max_per_source must be > 0")
	} else if out.Search.MaxPerSource > 100 {
		res.addWarn("search.max_per_source is high (%d); source APIs cap pages at 100.", out.Search.MaxPerSource)
	}
	if out.Search.TimeoutSeconds <= 0 {
		res.addErr("search.timeout_seconds must be > 0")
	}
	if strings.TrimSpace(out.Search.DefaultTerm) == "" {
		res.addWarn("search.default_term is empty; empty searches match everything.")
	}

	if !out.Sources.NoFluffJobs.Enabled && !out.Sources.JustJoinIT.Enabled {
		res.addWarn("all sources disabled; searches will only return demo data.")
	}

	return out, res
}
