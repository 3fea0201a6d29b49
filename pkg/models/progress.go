package models

// Progress holds dashboard statistics for a user
type Progress struct {
	CatalogSize  int              `json:"catalog_size"`
	TotalLearned int              `json:"total_learned"`
	DueNow       int              `json:"due_now"`
	ReviewsToday int              `json:"reviews_today"`
	Levels       map[SRSLevel]int `json:"levels"`
}
