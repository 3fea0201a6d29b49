package models

// SessionPlan is the result of planning one study sitting.
// Due and New never share a key.
type SessionPlan struct {
	Due          []string `json:"due"`           // Words due for review, most overdue first
	New          []string `json:"new"`           // Never studied words in catalog order
	CatalogSize  int      `json:"catalog_size"`
	TotalLearned int      `json:"total_learned"` // Catalog words that have a record
	DueTotal     int      `json:"due_total"`     // Due words before the review limit was applied
	NewTotal     int      `json:"new_total"`     // Never studied words before the new limit was applied
}
