package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ashwam "github.com/Nirmitk1311/ASHWAM"
)

// CorpusConfig controls how a JSON-lines corpus is loaded.
type CorpusConfig struct {
	// JournalsFile holds one {"journal_id", "text"} record per line.
	JournalsFile string
	// GoldFile holds one {"journal_id", "items": [...]} record per line
	// with the human annotations.
	GoldFile string
	// PredictionsFile has the same shape as GoldFile with the
	// machine-produced objects.
	PredictionsFile string
}

// DefaultCorpusConfig returns the conventional file layout inside dataDir.
func DefaultCorpusConfig(dataDir string) CorpusConfig {
	return CorpusConfig{
		JournalsFile:    filepath.Join(dataDir, "journals.jsonl"),
		GoldFile:        filepath.Join(dataDir, "gold.jsonl"),
		PredictionsFile: filepath.Join(dataDir, "predictions.jsonl"),
	}
}

// journalRecord is one line of the journals file.
type journalRecord struct {
	JournalID string `json:"journal_id"`
	Text      string `json:"text"`
}

// itemsRecord is one line of the gold or predictions file.
type itemsRecord struct {
	JournalID string                  `json:"journal_id"`
	Items     []ashwam.SemanticObject `json:"items"`
}

// LoadCorpus materializes JSON-lines input files into journal entries.
// Entries keep the journals-file order. Journals with no gold or prediction
// record get empty lists; a gold or prediction record whose journal_id has
// no journal text is an error, since evidence coverage cannot be computed
// without the source text.
func LoadCorpus(cfg CorpusConfig) ([]ashwam.JournalEntry, error) {
	var journals []journalRecord
	if err := readJSONL(cfg.JournalsFile, func(line []byte) error {
		var rec journalRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		journals = append(journals, rec)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("loading journals %s: %w", cfg.JournalsFile, err)
	}

	known := make(map[string]int, len(journals))
	for i, j := range journals {
		known[j.JournalID] = i
	}

	gold, err := loadItems(cfg.GoldFile, known)
	if err != nil {
		return nil, err
	}
	predicted, err := loadItems(cfg.PredictionsFile, known)
	if err != nil {
		return nil, err
	}

	entries := make([]ashwam.JournalEntry, len(journals))
	for i, j := range journals {
		entries[i] = ashwam.JournalEntry{
			ID:        j.JournalID,
			Text:      j.Text,
			Gold:      gold[j.JournalID],
			Predicted: predicted[j.JournalID],
		}
	}
	return entries, nil
}

// loadItems reads a gold or predictions file into a journal_id index.
func loadItems(path string, known map[string]int) (map[string][]ashwam.SemanticObject, error) {
	byJournal := make(map[string][]ashwam.SemanticObject)
	err := readJSONL(path, func(line []byte) error {
		var rec itemsRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		if _, ok := known[rec.JournalID]; !ok {
			return fmt.Errorf("%w: journal_id %q", ashwam.ErrMissingJournalText, rec.JournalID)
		}
		byJournal[rec.JournalID] = rec.Items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return byJournal, nil
}

// readJSONL calls fn for every non-blank line of a JSON-lines file.
func readJSONL(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
