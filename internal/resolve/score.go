package resolve

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/sells-group/permit-leads/internal/model"
)

const (
	// FuzzyThreshold is the minimum score for a fuzzy match decision.
	FuzzyThreshold = 0.85
	// CoreThreshold is the minimum core-name similarity for the
	// suffix-stripped fallback path.
	CoreThreshold = 0.9
	// containmentFloor is the score floor applied when one normalized
	// name contains the other (subsidiary / DBA variants).
	containmentFloor = 0.9
	// corePathCeiling keeps the fallback path below 1.0 so an exact
	// score is only ever reported for identical normalized names.
	corePathCeiling = 0.99
)

// Score computes a match confidence in [0,1] between two company names.
// Symmetric; returns 1.0 only when the normalized forms are identical.
func Score(a, b string) float64 {
	return scoreNormalized(Normalize(a), Normalize(b))
}

// scoreNormalized scores two already-normalized names. The matcher calls
// this directly so each candidate name is normalized once per run, not
// once per pair.
func scoreNormalized(na, nb string) float64 {
	if na == nb {
		return 1.0
	}

	r := ratio(na, nb)

	// Containment boost: a subsidiary or DBA name is commonly a
	// prefix/suffix of the parent name.
	if na != "" && nb != "" && (strings.Contains(na, nb) || strings.Contains(nb, na)) {
		if r < containmentFloor {
			r = containmentFloor
		}
	}

	// Core-name fallback: strip legal-entity tokens and rescore. Only
	// consulted when the boosted ratio still misses the fuzzy threshold.
	if r < FuzzyThreshold {
		ca, cb := StripCoreSuffixes(na), StripCoreSuffixes(nb)
		if ca != "" && cb != "" {
			if cr := ratio(ca, cb); cr >= CoreThreshold {
				if cr > corePathCeiling {
					cr = corePathCeiling
				}
				if cr > r {
					r = cr
				}
			}
		}
	}

	return r
}

// ratio is a normalized Levenshtein similarity in [0,1]: symmetric, and
// 1.0 only for identical strings.
func ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(d)/float64(longest)
}

// Decide maps a score onto a match decision using the fixed thresholds.
func Decide(score float64) model.MatchDecision {
	switch {
	case score >= 1.0:
		return model.MatchExact
	case score >= FuzzyThreshold:
		return model.MatchFuzzy
	default:
		return model.MatchNone
	}
}
