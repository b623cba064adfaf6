package eval

import (
	"fmt"
	"strings"
	"time"

	ashwam "github.com/Nirmitk1311/ASHWAM"
)

// Counts holds the raw tallies for one entry or for the whole corpus. The
// fold over entries is a plain sum, so accumulation is associative and
// order-independent.
type Counts struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	FN int `json:"fn"`

	// Attribute agreement over TP pairs.
	PolarityCorrect     int `json:"polarity_correct"`
	DomainBucketCorrect int `json:"domain_bucket_correct"`
	TimeBucketCorrect   int `json:"time_bucket_correct"`

	// Evidence grounding over all predicted objects, matched or not.
	ValidEvidence  int `json:"valid_evidence"`
	PredictedTotal int `json:"predicted_total"`
}

// Add folds other into c.
func (c *Counts) Add(other Counts) {
	c.TP += other.TP
	c.FP += other.FP
	c.FN += other.FN
	c.PolarityCorrect += other.PolarityCorrect
	c.DomainBucketCorrect += other.DomainBucketCorrect
	c.TimeBucketCorrect += other.TimeBucketCorrect
	c.ValidEvidence += other.ValidEvidence
	c.PredictedTotal += other.PredictedTotal
}

// Metrics holds the derived ratios. Precision, recall, F1, and evidence
// coverage report 0.0 on a zero denominator; the three accuracies are nil
// (JSON null) when there are no TP pairs to measure them over.
type Metrics struct {
	Precision            float64  `json:"precision"`
	Recall               float64  `json:"recall"`
	F1                   float64  `json:"f1"`
	PolarityAccuracy     *float64 `json:"polarity_accuracy"`
	DomainBucketAccuracy *float64 `json:"domain_bucket_accuracy"`
	TimeBucketAccuracy   *float64 `json:"time_bucket_accuracy"`
	EvidenceCoverageRate float64  `json:"evidence_coverage_rate"`
}

// Derive computes the metric ratios from raw counts.
func (c Counts) Derive() Metrics {
	var m Metrics
	m.Precision = ratio(c.TP, c.TP+c.FP)
	m.Recall = ratio(c.TP, c.TP+c.FN)
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if c.TP > 0 {
		m.PolarityAccuracy = ptr(ratio(c.PolarityCorrect, c.TP))
		m.DomainBucketAccuracy = ptr(ratio(c.DomainBucketCorrect, c.TP))
		m.TimeBucketAccuracy = ptr(ratio(c.TimeBucketCorrect, c.TP))
	}
	m.EvidenceCoverageRate = ratio(c.ValidEvidence, c.PredictedTotal)
	return m
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0.0
	}
	return float64(num) / float64(den)
}

func ptr(f float64) *float64 { return &f }

// EntryResult is the scoring outcome for a single journal entry: raw
// counts, derived metrics, and the object-level detail needed to debug an
// individual entry.
type EntryResult struct {
	EntryID string `json:"entry_id"`
	Counts
	Metrics

	Matches        []Match                 `json:"matches,omitempty"`
	FalsePositives []ashwam.SemanticObject `json:"false_positives,omitempty"`
	FalseNegatives []ashwam.SemanticObject `json:"false_negatives,omitempty"`
}

// Report is the corpus-level scoring outcome. Totals are summed from raw
// per-entry counts and the ratios derived once at the end, never by
// averaging per-entry ratios, so entries with many objects weigh
// accordingly.
type Report struct {
	RunID     string  `json:"run_id"`
	Threshold float64 `json:"jaccard_threshold"`
	Entries   int     `json:"entries"`
	Counts
	Metrics

	PerEntry []EntryResult `json:"per_entry,omitempty"`
	RunTime  time.Duration `json:"run_time"`
}

// FormatReport produces a human-readable report string.
func FormatReport(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Extraction Evaluation Report ===\n")
	fmt.Fprintf(&b, "Run: %s | Entries: %d | Threshold: %.2f\n", r.RunID, r.Entries, r.Threshold)
	fmt.Fprintf(&b, "Run time: %s\n\n", r.RunTime.Round(time.Millisecond))

	fmt.Fprintf(&b, "Object Matching:\n")
	fmt.Fprintf(&b, "  TP: %d | FP: %d | FN: %d\n", r.TP, r.FP, r.FN)
	fmt.Fprintf(&b, "  Precision: %.3f\n", r.Precision)
	fmt.Fprintf(&b, "  Recall:    %.3f\n", r.Recall)
	fmt.Fprintf(&b, "  F1:        %.3f\n\n", r.F1)

	fmt.Fprintf(&b, "Attribute Accuracy (over %d TP pairs):\n", r.TP)
	fmt.Fprintf(&b, "  Polarity:      %s\n", fmtAccuracy(r.PolarityAccuracy))
	fmt.Fprintf(&b, "  Domain bucket: %s\n", fmtAccuracy(r.DomainBucketAccuracy))
	fmt.Fprintf(&b, "  Time bucket:   %s\n\n", fmtAccuracy(r.TimeBucketAccuracy))

	fmt.Fprintf(&b, "Evidence Grounding:\n")
	fmt.Fprintf(&b, "  Coverage: %.3f (%d/%d predicted spans verbatim in source)\n\n",
		r.EvidenceCoverageRate, r.ValidEvidence, r.PredictedTotal)

	if len(r.PerEntry) > 0 {
		fmt.Fprintf(&b, "Per-Entry Breakdown:\n")
		for _, e := range r.PerEntry {
			flag := "OK  "
			if e.FP > 0 || e.FN > 0 {
				flag = "MISS"
			}
			fmt.Fprintf(&b, "  [%s] %-16s TP=%d FP=%d FN=%d P=%.2f R=%.2f F1=%.2f Cov=%.2f\n",
				flag, e.EntryID, e.TP, e.FP, e.FN, e.Precision, e.Recall, e.F1, e.EvidenceCoverageRate)
		}
	}

	return b.String()
}

func fmtAccuracy(a *float64) string {
	if a == nil {
		return "N/A (no TP pairs)"
	}
	return fmt.Sprintf("%.3f", *a)
}
