// Package eval implements the matching-and-scoring engine: it pairs
// predicted semantic objects to gold objects by evidence-span overlap,
// classifies the outcome into TP/FP/FN, and computes attribute accuracies
// plus an evidence-grounding rate, per entry and corpus-wide.
package eval

import (
	"fmt"
	"log/slog"
	"time"

	ashwam "github.com/Nirmitk1311/ASHWAM"
	"github.com/google/uuid"
)

// Evaluator scores predicted extractions against gold annotations. It holds
// no per-run state; a single Evaluator may be reused across runs.
type Evaluator struct {
	cfg ashwam.Config
}

// NewEvaluator creates an evaluator with the given configuration.
func NewEvaluator(cfg ashwam.Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{cfg: cfg}, nil
}

// EvaluateEntry scores a single journal entry.
//
// Every object in both lists is validated before any scoring; validation is
// strict, so one malformed object rejects the whole entry with a SchemaError
// naming the entry, list, index, and field. Nothing is ever silently
// dropped from the tallies.
func (e *Evaluator) EvaluateEntry(entry ashwam.JournalEntry) (*EntryResult, error) {
	if err := validateObjects(entry.ID, "gold", entry.Gold); err != nil {
		return nil, err
	}
	if err := validateObjects(entry.ID, "predicted", entry.Predicted); err != nil {
		return nil, err
	}

	matches, fpIdx, fnIdx := matchObjects(entry.Predicted, entry.Gold, e.cfg)

	result := &EntryResult{
		EntryID: entry.ID,
		Matches: matches,
	}
	result.TP = len(matches)
	result.FP = len(fpIdx)
	result.FN = len(fnIdx)

	for _, m := range matches {
		if m.Predicted.Polarity == m.Gold.Polarity {
			result.PolarityCorrect++
		}
		// The gold object's domain decides which bucket is in scope.
		predBucket := m.Predicted.IntensityBucket
		if m.Gold.Domain == ashwam.DomainEmotion {
			predBucket = m.Predicted.ArousalBucket
		}
		if predBucket == m.Gold.ScopedBucket() {
			result.DomainBucketCorrect++
		}
		if m.Predicted.TimeBucket == m.Gold.TimeBucket {
			result.TimeBucketCorrect++
		}
	}

	result.PredictedTotal = len(entry.Predicted)
	for _, p := range entry.Predicted {
		if validEvidence(p.EvidenceSpan, entry.Text) {
			result.ValidEvidence++
		}
	}

	for _, i := range fpIdx {
		result.FalsePositives = append(result.FalsePositives, entry.Predicted[i])
	}
	for _, i := range fnIdx {
		result.FalseNegatives = append(result.FalseNegatives, entry.Gold[i])
	}

	result.Metrics = result.Counts.Derive()
	return result, nil
}

// Run scores every entry in the corpus and folds the results into a
// corpus-level report. A schema violation in any entry aborts the run with
// that error; partial reports are never produced from partially validated
// input.
func (e *Evaluator) Run(entries []ashwam.JournalEntry) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:     uuid.New().String(),
		Threshold: e.cfg.JaccardThreshold,
		Entries:   len(entries),
	}

	for i, entry := range entries {
		result, err := e.EvaluateEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("evaluating entry %q: %w", entry.ID, err)
		}
		report.Counts.Add(result.Counts)
		report.PerEntry = append(report.PerEntry, *result)

		slog.Debug("eval: entry scored",
			"progress", fmt.Sprintf("%d/%d", i+1, len(entries)),
			"entry", entry.ID,
			"tp", result.TP,
			"fp", result.FP,
			"fn", result.FN,
			"coverage", fmt.Sprintf("%.2f", result.EvidenceCoverageRate))
	}

	report.Metrics = report.Counts.Derive()
	report.RunTime = time.Since(start)
	return report, nil
}

// validateObjects checks every object in one list, attaching position
// context to the first failure.
func validateObjects(entryID, list string, objs []ashwam.SemanticObject) error {
	for i, o := range objs {
		if serr := o.Validate(); serr != nil {
			serr.EntryID = entryID
			serr.List = list
			serr.Index = i
			return serr
		}
	}
	return nil
}
