package resolve

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/permit-leads/internal/model"
)

// Matcher scans license-directory candidates for each applicant summary
// and keeps the single highest-scoring candidate above the threshold.
type Matcher struct {
	// Threshold is the minimum score for a fuzzy decision. Zero means
	// the package default.
	Threshold float64
	// Workers bounds the number of concurrent summary scans. Summaries
	// are independent and candidates are read-only, so partitioning is
	// safe; results land in index-addressed slots, keeping output
	// deterministic regardless of scheduling. Zero or one disables
	// concurrency.
	Workers int
}

// MatchAll computes one MatchResult per summary, positionally aligned
// with the input. Pure over its inputs: neither slice is mutated.
//
// The scan is a full summaries x candidates cross product. Ties on the
// top score keep the first-seen candidate in input order and are logged
// for manual review, since they indicate genuine ambiguity.
func (m *Matcher) MatchAll(ctx context.Context, summaries []model.ApplicantSummary, candidates []model.LicenseRecord) []model.MatchResult {
	threshold := m.Threshold
	if threshold == 0 {
		threshold = FuzzyThreshold
	}

	// Normalize every candidate once up front.
	normCands := make([]string, len(candidates))
	for i, c := range candidates {
		normCands[i] = Normalize(c.Company)
	}

	results := make([]model.MatchResult, len(summaries))

	workers := m.Workers
	if workers < 1 {
		workers = 1
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range summaries {
		g.Go(func() error {
			results[i] = m.matchOne(summaries[i], candidates, normCands, threshold)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes them.
	_ = g.Wait()

	return results
}

// matchOne scans all candidates for a single summary.
func (m *Matcher) matchOne(s model.ApplicantSummary, candidates []model.LicenseRecord, normCands []string, threshold float64) model.MatchResult {
	norm := s.NormalizedName
	if norm == "" {
		norm = Normalize(s.RawName)
	}

	bestIdx := -1
	bestScore := 0.0
	for i, nc := range normCands {
		if nc == "" {
			continue
		}
		score := scoreNormalized(norm, nc)
		switch {
		case score > bestScore:
			bestIdx = i
			bestScore = score
		case score == bestScore && bestIdx >= 0 && score >= threshold:
			// First-seen candidate wins; surface the ambiguity.
			zap.L().Warn("match: tie on top score",
				zap.String("applicant", s.RawName),
				zap.String("kept", candidates[bestIdx].Company),
				zap.String("discarded", candidates[i].Company),
				zap.Float64("score", score),
			)
		}
	}

	if bestIdx < 0 || bestScore < threshold {
		return model.MatchResult{Decision: model.MatchNone, Score: bestScore}
	}

	matched := candidates[bestIdx]
	return model.MatchResult{
		Decision: Decide(bestScore),
		Score:    bestScore,
		License:  &matched,
	}
}
