package spaced_repetition

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// Limits caps the size of a study session. Zero means no cap.
type Limits struct {
	MaxReview int
	MaxNew    int
}

// BuildSession splits the catalog into words due for review and words never
// studied. Due words come most overdue first, ties keep catalog order. New
// words keep catalog order. records is only read.
func BuildSession(catalog []models.Word, records map[string]models.ReviewRecord, now time.Time, limits Limits) (models.SessionPlan, error) {
	if err := CheckTime(now, "session"); err != nil {
		return models.SessionPlan{}, err
	}
	if limits.MaxReview < 0 || limits.MaxNew < 0 {
		return models.SessionPlan{}, fmt.Errorf("%w: negative session limits (review %d, new %d)",
			ErrInvalidInput, limits.MaxReview, limits.MaxNew)
	}

	plan := models.SessionPlan{
		Due:         []string{},
		New:         []string{},
		CatalogSize: len(catalog),
	}

	type dueWord struct {
		key   string
		dueAt time.Time
	}
	var due []dueWord
	seen := make(map[string]struct{}, len(catalog))

	for i, w := range catalog {
		if w.Key == "" {
			return models.SessionPlan{}, fmt.Errorf("%w: catalog entry %d has an empty key", ErrInvalidInput, i)
		}
		if _, dup := seen[w.Key]; dup {
			return models.SessionPlan{}, fmt.Errorf("%w: duplicate catalog key %q", ErrInvalidInput, w.Key)
		}
		seen[w.Key] = struct{}{}

		rec, ok := records[w.Key]
		if !ok {
			plan.NewTotal++
			if limits.MaxNew == 0 || len(plan.New) < limits.MaxNew {
				plan.New = append(plan.New, w.Key)
			}
			continue
		}
		if !rec.DueAt.After(now) {
			due = append(due, dueWord{key: w.Key, dueAt: rec.DueAt})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].dueAt.Before(due[j].dueAt)
	})

	plan.DueTotal = len(due)
	if limits.MaxReview > 0 && len(due) > limits.MaxReview {
		due = due[:limits.MaxReview]
	}
	for _, d := range due {
		plan.Due = append(plan.Due, d.key)
	}

	plan.TotalLearned = plan.CatalogSize - plan.NewTotal
	return plan, nil
}

// ResetRecords returns a copy of records without the given keys. Keys that
// are not present are ignored, so repeating a reset changes nothing.
func ResetRecords(records map[string]models.ReviewRecord, keys []string) map[string]models.ReviewRecord {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	out := make(map[string]models.ReviewRecord, len(records))
	for k, r := range records {
		if _, ok := drop[k]; !ok {
			out[k] = r
		}
	}
	return out
}

// LevelCounts buckets catalog words by level. Words without a record are new.
func LevelCounts(catalog []models.Word, records map[string]models.ReviewRecord) map[models.SRSLevel]int {
	counts := make(map[models.SRSLevel]int, len(models.Levels))
	for _, l := range models.Levels {
		counts[l] = 0
	}
	for _, w := range catalog {
		rec, ok := records[w.Key]
		if !ok {
			counts[models.LevelNew]++
			continue
		}
		counts[rec.SRSLevel]++
	}
	return counts
}
