package excel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/engstudy/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type memoryStore struct {
	words   []models.Word
	byKey   map[string]int
	failKey string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byKey: make(map[string]int)}
}

func (m *memoryStore) Upsert(_ context.Context, w *models.Word) (bool, error) {
	if w.Key == m.failKey {
		return false, errors.New("constraint failed")
	}
	if i, ok := m.byKey[w.Key]; ok {
		w.Position = m.words[i].Position
		m.words[i] = *w
		return false, nil
	}
	w.Position = len(m.words) + 1
	m.byKey[w.Key] = len(m.words)
	m.words = append(m.words, *w)
	return true, nil
}

func (m *memoryStore) keys() []string {
	out := make([]string, len(m.words))
	for i, w := range m.words {
		out[i] = w.Key
	}
	return out
}

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &row))
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportExcel(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Word", "Translation", "POS", "Pronunciation", "Example", "Topic"},
		{"Apple", "quả táo", "noun", "/ˈæp.əl/", "I eat an apple.", "Food"},
		{"Go (went, gone)", "đi", "verb", "/ɡəʊ/", "", "Verbs"},
		{"", "", "", "", "", ""},
		{"banana", "", "noun"},
		{"apple", "táo", "noun"},
		{"cherry", "quả anh đào"},
	})

	store := newMemoryStore()
	cfg := DefaultImportConfig()
	cfg.FilePath = path
	cfg.SheetName = "Sheet1"

	result, err := NewImporter(store, nil).ImportWords(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 5")

	assert.Equal(t, []string{"apple", "go", "cherry"}, store.keys())
	assert.Equal(t, "Verbs", store.words[1].Topic)
	assert.Equal(t, "/ɡəʊ/", store.words[1].Pronunciation)
	assert.Equal(t, "I eat an apple.", store.words[0].Example)
}

func TestImportExcelFirstSheetAndUpdate(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Word", "Translation"},
		{"house", "ngôi nhà"},
	})

	store := newMemoryStore()
	_, err := store.Upsert(context.Background(), &models.Word{Key: "house", Translation: "nhà"})
	require.NoError(t, err)

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	cfg.DefaultTopic = "Home"

	result, err := NewImporter(store, nil).ImportWords(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, "ngôi nhà", store.words[0].Translation)
	assert.Equal(t, "Home", store.words[0].Topic)
}

func TestImportCSVTopicHeaders(t *testing.T) {
	path := writeCSV(t, "word,pronunciation,translation\n"+
		"Động từ,,\n"+
		"run (ran; run),[rʌn],chạy\n"+
		"eat,[iːt],ăn\n"+
		"\"Tính từ\",,\n"+
		"big,[bɪɡ],to lớn\n"+
		"broken,[ˈbrəʊkən]\n"+
		"fail,[feɪl],thất bại\n")

	store := newMemoryStore()
	store.failKey = "fail"

	cfg := ImportConfig{
		FilePath:            path,
		WordColumn:          "A",
		PronunciationColumn: "B",
		TranslationColumn:   "C",
		StartRow:            2,
		DefaultTopic:        "Chung",
	}

	result, err := NewImporter(store, nil).ImportWords(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"run", "eat", "big"}, store.keys())
	assert.Equal(t, "Động từ", store.words[0].Topic)
	assert.Equal(t, "Tính từ", store.words[2].Topic)
	assert.Equal(t, "[rʌn]", store.words[0].Pronunciation)
	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 3, result.Created)
	assert.Len(t, result.Errors, 2)
}

func TestImportErrors(t *testing.T) {
	im := NewImporter(newMemoryStore(), nil)

	_, err := im.ImportWords(context.Background(), ImportConfig{FilePath: "words.txt"})
	assert.Error(t, err)

	cfg := DefaultImportConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "missing.xlsx")
	_, err = im.ImportWords(context.Background(), cfg)
	assert.Error(t, err)

	cfg = DefaultImportConfig()
	cfg.FilePath = writeCSV(t, "a,b\n")
	cfg.WordColumn = "1"
	_, err = im.ImportWords(context.Background(), cfg)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg = DefaultImportConfig()
	cfg.FilePath = writeCSV(t, "word,translation\nhello,xin chào\n")
	_, err = im.ImportWords(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"Apple":             "apple",
		"  Go (went, gone)": "go",
		"look   after":      "look after",
		"take off (phr.)":   "take off",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestTopicHeader(t *testing.T) {
	topic, ok := topicHeader([]string{"Động từ", "", ""})
	assert.True(t, ok)
	assert.Equal(t, "Động từ", topic)

	_, ok = topicHeader([]string{"eat", "[iːt]", "ăn"})
	assert.False(t, ok)

	_, ok = topicHeader([]string{"", ""})
	assert.False(t, ok)
}
