package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRSLevelString(t *testing.T) {
	tests := []struct {
		level SRSLevel
		want  string
	}{
		{LevelNew, "new"},
		{LevelLearning, "learning"},
		{LevelReview, "review"},
		{LevelMastered, "mastered"},
		{SRSLevel(-1), "SRSLevel(-1)"},
		{SRSLevel(4), "SRSLevel(4)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestSRSLevelStudyStatus(t *testing.T) {
	assert.Equal(t, "", LevelNew.StudyStatus())
	assert.Equal(t, "review", LevelLearning.StudyStatus())
	assert.Equal(t, "review", LevelReview.StudyStatus())
	assert.Equal(t, "known", LevelMastered.StudyStatus())
}

func TestProgressJSON(t *testing.T) {
	p := Progress{
		CatalogSize: 3,
		Levels:      map[SRSLevel]int{LevelNew: 2, LevelMastered: 1},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"catalog_size":3,"total_learned":0,"due_now":0,"reviews_today":0,"levels":{"new":2,"mastered":1}}`, string(data))

	var back Progress
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p.Levels, back.Levels)
}

func TestSRSLevelText(t *testing.T) {
	data, err := json.Marshal(ReviewRecord{EaseFactor: 2.5, SRSLevel: LevelReview})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"srs_level":"review"`)

	var l SRSLevel
	require.NoError(t, l.UnmarshalText([]byte("learning")))
	assert.Equal(t, LevelLearning, l)

	assert.Error(t, l.UnmarshalText([]byte("expert")))
	_, err = SRSLevel(9).MarshalText()
	assert.Error(t, err)
}
