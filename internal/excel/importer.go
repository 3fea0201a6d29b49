package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/engstudy/pkg/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// errSkipRow marks rows that carry no word, such as blank lines
var errSkipRow = errors.New("skipping row")

// WordStore receives imported words
type WordStore interface {
	Upsert(ctx context.Context, word *models.Word) (bool, error)
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	WordColumn          string // Column with the word
	TranslationColumn   string // Column with the Vietnamese translation
	PartOfSpeechColumn  string
	PronunciationColumn string
	ExampleColumn       string
	TopicColumn         string
	SheetName           string // Name of the sheet to import, first sheet if empty
	StartRow            int    // The row to start importing from (1-based index)
	DefaultTopic        string // Topic for CSV rows before the first topic header
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:          "A",
		TranslationColumn:   "B",
		PartOfSpeechColumn:  "C",
		PronunciationColumn: "D",
		ExampleColumn:       "E",
		TopicColumn:         "F",
		StartRow:            2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}

// Importer loads word catalogs from spreadsheets
type Importer struct {
	store WordStore
	log   *zap.Logger
}

// NewImporter creates a new importer
func NewImporter(store WordStore, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{store: store, log: log}
}

// ImportWords imports words from an Excel or CSV file. Catalog order
// follows file order.
func (im *Importer) ImportWords(ctx context.Context, cfg ImportConfig) (*ImportResult, error) {
	if cfg.StartRow < 1 {
		cfg.StartRow = 1
	}

	var (
		result *ImportResult
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(cfg.FilePath)); ext {
	case ".csv":
		result, err = im.importFromCSV(ctx, cfg)
	case ".xlsx", ".xlsm", ".xltx":
		result, err = im.importFromExcel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	im.log.Info("words imported",
		zap.String("file", cfg.FilePath),
		zap.Int("processed", result.TotalProcessed),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

type rowColumns struct {
	word, translation, partOfSpeech, pronunciation, example, topic int
}

func resolveColumns(cfg ImportConfig) (rowColumns, error) {
	var cols rowColumns
	targets := []struct {
		name string
		dst  *int
	}{
		{cfg.WordColumn, &cols.word},
		{cfg.TranslationColumn, &cols.translation},
		{cfg.PartOfSpeechColumn, &cols.partOfSpeech},
		{cfg.PronunciationColumn, &cols.pronunciation},
		{cfg.ExampleColumn, &cols.example},
		{cfg.TopicColumn, &cols.topic},
	}
	for _, t := range targets {
		if t.name == "" {
			*t.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(t.name)
		if err != nil {
			return cols, fmt.Errorf("invalid column %q: %w", t.name, err)
		}
		*t.dst = n - 1
	}
	if cols.word < 0 || cols.translation < 0 {
		return cols, errors.New("word and translation columns are required")
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// importFromExcel imports words from an Excel file
func (im *Importer) importFromExcel(ctx context.Context, cfg ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]int)

	for i, row := range rows {
		// Skip header rows
		if i < cfg.StartRow-1 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word := models.Word{
			Key:           cell(row, cols.word),
			Translation:   cell(row, cols.translation),
			PartOfSpeech:  cell(row, cols.partOfSpeech),
			Pronunciation: cell(row, cols.pronunciation),
			Example:       cell(row, cols.example),
			Topic:         cell(row, cols.topic),
		}
		if word.Topic == "" {
			word.Topic = cfg.DefaultTopic
		}
		im.processWord(ctx, &word, result, seen, i+1)
	}

	return result, nil
}

// importFromCSV imports words from a CSV file. A row with only its first
// field set starts a new topic, e.g. "Động từ,,".
func (im *Importer) importFromCSV(ctx context.Context, cfg ImportConfig) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]int)
	currentTopic := cfg.DefaultTopic
	rowNum := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < cfg.StartRow {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if topic, ok := topicHeader(row); ok {
			currentTopic = topic
			continue
		}

		word := models.Word{
			Key:           cell(row, cols.word),
			Translation:   cell(row, cols.translation),
			PartOfSpeech:  cell(row, cols.partOfSpeech),
			Pronunciation: cell(row, cols.pronunciation),
			Example:       cell(row, cols.example),
			Topic:         cell(row, cols.topic),
		}
		if word.Topic == "" {
			word.Topic = currentTopic
		}
		im.processWord(ctx, &word, result, seen, rowNum)
	}

	return result, nil
}

// topicHeader detects rows like "Động từ,," that name the following topic
func topicHeader(row []string) (string, bool) {
	if len(row) == 0 {
		return "", false
	}
	first := strings.Trim(strings.TrimSpace(row[0]), "\"")
	if first == "" {
		return "", false
	}
	for _, f := range row[1:] {
		if strings.TrimSpace(f) != "" {
			return "", false
		}
	}
	return first, true
}

// processWord validates a parsed row and stores it
func (im *Importer) processWord(ctx context.Context, word *models.Word, result *ImportResult, seen map[string]int, rowNum int) {
	err := prepareWord(word)
	if errors.Is(err, errSkipRow) {
		return
	}

	result.TotalProcessed++
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		return
	}

	if first, dup := seen[word.Key]; dup {
		result.Skipped++
		im.log.Debug("duplicate word in file",
			zap.String("word", word.Key),
			zap.Int("row", rowNum),
			zap.Int("first_row", first),
		)
		return
	}
	seen[word.Key] = rowNum

	created, err := im.store.Upsert(ctx, word)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		return
	}
	if created {
		result.Created++
	} else {
		result.Updated++
	}
}

// prepareWord normalizes the key and checks required fields
func prepareWord(word *models.Word) error {
	if strings.TrimSpace(word.Key) == "" && strings.TrimSpace(word.Translation) == "" {
		return errSkipRow
	}

	word.Key = NormalizeKey(word.Key)
	word.Translation = strings.TrimSpace(word.Translation)

	if word.Key == "" {
		return errors.New("word cannot be empty")
	}
	if word.Translation == "" {
		return fmt.Errorf("translation for %q cannot be empty", word.Key)
	}
	return nil
}

// NormalizeKey turns "Go (went, gone)" into "go"
func NormalizeKey(word string) string {
	// Удаляем информацию в скобках
	if idx := strings.Index(word, "("); idx > 0 {
		word = word[:idx]
	}
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}
