package model

import "time"

// AnalysisCache stores generated reports keyed by a hash of the response
// set, so identical submissions reuse a prior analysis until expiry.
type AnalysisCache struct {
	UUIDBase
	ResponseHash string    `gorm:"uniqueIndex;size:64;not null" json:"responseHash"`
	Analysis     string    `gorm:"type:mediumtext;not null" json:"analysis"`
	TokensUsed   int       `gorm:"default:0" json:"tokensUsed"`
	ExpiresAt    time.Time `gorm:"index;not null" json:"expiresAt"`
}

func (AnalysisCache) TableName() string {
	return "analysis_cache"
}
