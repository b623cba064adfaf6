package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteSummary writes the corpus-level report as indented JSON, without the
// per-entry breakdown.
func WriteSummary(r *Report, path string) error {
	summary := *r
	summary.PerEntry = nil
	data, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// WriteEntryScores writes one JSON line per entry with counts and metrics,
// leaving out the matched-pair object detail to keep the file scannable.
func WriteEntryScores(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, e := range r.PerEntry {
		slim := e
		slim.Matches = nil
		slim.FalsePositives = nil
		slim.FalseNegatives = nil
		if err := enc.Encode(&slim); err != nil {
			return fmt.Errorf("encoding entry %q: %w", e.EntryID, err)
		}
	}
	return w.Flush()
}

// WriteXLSX exports the report as a workbook with a Summary sheet and a
// per-entry Entries sheet.
func WriteXLSX(r *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	summaryRows := [][]any{
		{"Run ID", r.RunID},
		{"Entries", r.Entries},
		{"Jaccard threshold", r.Threshold},
		{"TP", r.TP},
		{"FP", r.FP},
		{"FN", r.FN},
		{"Precision", r.Precision},
		{"Recall", r.Recall},
		{"F1", r.F1},
		{"Polarity accuracy", accuracyCell(r.PolarityAccuracy)},
		{"Domain bucket accuracy", accuracyCell(r.DomainBucketAccuracy)},
		{"Time bucket accuracy", accuracyCell(r.TimeBucketAccuracy)},
		{"Evidence coverage rate", r.EvidenceCoverageRate},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	const entrySheet = "Entries"
	if _, err := f.NewSheet(entrySheet); err != nil {
		return err
	}
	header := []any{
		"entry_id", "tp", "fp", "fn",
		"precision", "recall", "f1",
		"polarity_accuracy", "domain_bucket_accuracy", "time_bucket_accuracy",
		"evidence_coverage_rate",
	}
	if err := f.SetSheetRow(entrySheet, "A1", &header); err != nil {
		return err
	}
	for i, e := range r.PerEntry {
		row := []any{
			e.EntryID, e.TP, e.FP, e.FN,
			e.Precision, e.Recall, e.F1,
			accuracyCell(e.PolarityAccuracy),
			accuracyCell(e.DomainBucketAccuracy),
			accuracyCell(e.TimeBucketAccuracy),
			e.EvidenceCoverageRate,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(entrySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// accuracyCell renders a nullable accuracy for spreadsheet cells.
func accuracyCell(a *float64) any {
	if a == nil {
		return "N/A"
	}
	return *a
}
