package repository

import (
	"time"

	"relationship_mojo_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(record *model.AssessmentRecord) error {
	return r.DB.Create(record).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.DB.Where("id = ?", id).First(&record).Error
	return &record, err
}

func (r *AssessmentRepository) Update(record *model.AssessmentRecord) error {
	return r.DB.Save(record).Error
}

// FindLatestByUser returns the user's most recent assessment pass.
func (r *AssessmentRepository) FindLatestByUser(userID string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AssessmentRepository) ListByUser(userID string, page, limit int) ([]model.AssessmentRecord, int64, error) {
	var records []model.AssessmentRecord
	var total int64
	query := r.DB.Model(&model.AssessmentRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&records).Error
	return records, total, err
}

// Analysis cache: content-addressed rows with expiry. Expired entries are
// ignored on lookup and purged opportunistically.

func (r *AssessmentRepository) FindCachedAnalysis(responseHash string) (*model.AnalysisCache, error) {
	var entry model.AnalysisCache
	err := r.DB.Where("response_hash = ? AND expires_at > ?", responseHash, time.Now()).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *AssessmentRepository) SaveCachedAnalysis(entry *model.AnalysisCache) error {
	// Last write wins if the same response set was analyzed twice.
	existing := &model.AnalysisCache{}
	err := r.DB.Where("response_hash = ?", entry.ResponseHash).First(existing).Error
	if err == nil {
		existing.Analysis = entry.Analysis
		existing.TokensUsed = entry.TokensUsed
		existing.ExpiresAt = entry.ExpiresAt
		return r.DB.Save(existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(entry).Error
}

func (r *AssessmentRepository) PurgeExpiredAnalyses() error {
	return r.DB.Where("expires_at <= ?", time.Now()).Delete(&model.AnalysisCache{}).Error
}
