package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"relationship_mojo_backend/internal/catalog"
	"relationship_mojo_backend/internal/config"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/repository"
	"relationship_mojo_backend/internal/util"
	"relationship_mojo_backend/pkg/logger"
	"relationship_mojo_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const analysisCacheKeyPrefix = "analysis:"

// analysisGenerator is what the assessment flow needs from the AI layer.
type analysisGenerator interface {
	GenerateAnalysis(ctx context.Context, prompt, userID string) (*model.AnalysisResult, error)
}

// AssessmentService orchestrates the assessment flow: one navigator per
// user session, answer submission and navigation, and finalization into a
// persisted record with a generated analysis. The in-progress collection is
// owned exclusively by the session's navigator; finalization works on a
// read-only snapshot.
type AssessmentService struct {
	Repo  *repository.AssessmentRepository
	AI    analysisGenerator
	Redis *redis.Client
	Cfg   *config.Config

	mu       sync.Mutex
	sessions map[string]*Navigator
}

func NewAssessmentService(repo *repository.AssessmentRepository, ai analysisGenerator, rdb *redis.Client, cfg *config.Config) *AssessmentService {
	return &AssessmentService{
		Repo:     repo,
		AI:       ai,
		Redis:    rdb,
		Cfg:      cfg,
		sessions: make(map[string]*Navigator),
	}
}

// Session returns the user's navigator, creating one at (1, 0) on first
// use.
func (s *AssessmentService) Session(userID string) *Navigator {
	s.mu.Lock()
	defer s.mu.Unlock()
	nav, ok := s.sessions[userID]
	if !ok {
		delay := time.Duration(s.Cfg.Assessment.AutoAdvanceDelayMs) * time.Millisecond
		nav = NewNavigator(delay, nil)
		s.sessions[userID] = nav
	}
	return nav
}

// ResetSession discards the user's in-progress collection and starts over.
func (s *AssessmentService) ResetSession(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// SectionQuestions serves the catalog slice for one section.
func (s *AssessmentService) SectionQuestions(sectionID int) (*model.Section, []model.Question, error) {
	section := catalog.SectionByID(sectionID)
	if section == nil {
		return nil, nil, util.ErrSectionNotFound
	}
	return section, catalog.QuestionsBySection(sectionID), nil
}

// SubmitAnswer validates and records one answer and reports the updated
// progress. Validation failures stay at this boundary; the caller
// re-prompts the same question.
func (s *AssessmentService) SubmitAnswer(userID string, resp model.QuestionResponse) (Progress, error) {
	nav := s.Session(userID)
	if _, err := nav.Answer(resp); err != nil {
		return nav.Progress(), err
	}
	return nav.Progress(), nil
}

// Navigate applies an explicit Next/Previous, overriding any pending
// auto-advance.
func (s *AssessmentService) Navigate(userID, direction string) Progress {
	nav := s.Session(userID)
	if direction == "previous" {
		nav.Previous()
	} else {
		nav.Next()
	}
	return nav.Progress()
}

// CurrentQuestion returns the question at the session's position, nil once
// complete.
func (s *AssessmentService) CurrentQuestion(userID string) *model.Question {
	return s.Session(userID).CurrentQuestion()
}

// Progress reports the session's progress values.
func (s *AssessmentService) Progress(userID string) Progress {
	return s.Session(userID).Progress()
}

// Finalize snapshots the session's responses, generates (or reuses) the
// analysis, and persists the full pass. The record is created in_progress
// first so a failed generation leaves a retryable snapshot behind; the
// session is cleared only on success.
func (s *AssessmentService) Finalize(ctx context.Context, userID string, demographics model.UserDemographics) (*model.AssessmentRecord, error) {
	nav := s.Session(userID)
	responses := SanitizeResponses(nav.Responses())
	if len(responses) == 0 {
		return nil, util.ErrNoResponses
	}

	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return nil, err
	}
	demographicsJSON, err := json.Marshal(demographics)
	if err != nil {
		return nil, err
	}

	record := &model.AssessmentRecord{
		UserID:       userID,
		Responses:    responsesJSON,
		Demographics: demographicsJSON,
		Status:       model.StatusInProgress,
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}

	if err := s.generateInto(ctx, record, responses, demographics); err != nil {
		return record, err
	}

	s.ResetSession(userID)
	return record, nil
}

// RetryAnalysis re-runs generation from a stored snapshot, so a fatal
// analysis failure never costs the user their answers.
func (s *AssessmentService) RetryAnalysis(ctx context.Context, userID, recordID string) (*model.AssessmentRecord, error) {
	record, err := s.Repo.FindByID(recordID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRecordNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if record.Status == model.StatusCompleted {
		return nil, util.ErrRecordNotRetryable
	}

	var responses []model.QuestionResponse
	if err := json.Unmarshal(record.Responses, &responses); err != nil {
		return nil, err
	}
	var demographics model.UserDemographics
	if len(record.Demographics) > 0 {
		if err := json.Unmarshal(record.Demographics, &demographics); err != nil {
			return nil, err
		}
	}

	if err := s.generateInto(ctx, record, responses, demographics); err != nil {
		return record, err
	}
	return record, nil
}

// generateInto runs cache lookup, prompt construction and the AI call, and
// moves the record to completed or failed accordingly.
func (s *AssessmentService) generateInto(ctx context.Context, record *model.AssessmentRecord, responses []model.QuestionResponse, demographics model.UserDemographics) error {
	hash := util.HashResponses(responses)

	if analysis, tokens, ok := s.lookupCache(ctx, hash); ok {
		monitoring.AnalysisCacheHits.WithLabelValues("hit").Inc()
		s.completeRecord(record, analysis, tokens)
		return s.Repo.Update(record)
	}
	monitoring.AnalysisCacheHits.WithLabelValues("miss").Inc()

	input := model.AnalysisInput{
		UserID:              record.UserID,
		CompletionTimestamp: time.Now().Format(util.TimestampFormat),
		Demographics:        demographics,
		Responses:           responses,
	}

	prompt, err := ConstructAnalysisPrompt(input)
	if err != nil {
		record.Status = model.StatusFailed
		record.LastError = err.Error()
		if saveErr := s.Repo.Update(record); saveErr != nil {
			logger.Log.Error("failed to persist assessment failure", zap.Error(saveErr))
		}
		return err
	}

	result, err := s.AI.GenerateAnalysis(ctx, prompt, record.UserID)
	if err != nil {
		record.Status = model.StatusFailed
		record.LastError = err.Error()
		if result != nil && result.Error != "" {
			record.LastError = result.Error
		}
		if saveErr := s.Repo.Update(record); saveErr != nil {
			logger.Log.Error("failed to persist assessment failure", zap.Error(saveErr))
		}
		return err
	}

	s.completeRecord(record, result.Analysis, result.TokensUsed)
	if err := s.Repo.Update(record); err != nil {
		return err
	}

	s.storeCache(ctx, hash, result.Analysis, result.TokensUsed)
	return nil
}

func (s *AssessmentService) completeRecord(record *model.AssessmentRecord, analysis string, tokens int) {
	now := time.Now()
	record.Analysis = analysis
	record.TokensUsed = tokens
	record.Status = model.StatusCompleted
	record.LastError = ""
	record.CompletedAt = &now
}

type cachedAnalysis struct {
	Analysis   string `json:"analysis"`
	TokensUsed int    `json:"tokensUsed"`
}

// lookupCache consults Redis first, then the durable cache table. A row
// found only in MySQL is promoted back into Redis.
func (s *AssessmentService) lookupCache(ctx context.Context, hash string) (string, int, bool) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, analysisCacheKeyPrefix+hash).Result()
		if err == nil {
			var entry cachedAnalysis
			if json.Unmarshal([]byte(val), &entry) == nil {
				return entry.Analysis, entry.TokensUsed, true
			}
		} else if err != redis.Nil {
			logger.Log.Warn("analysis cache read failed", zap.Error(err))
		}
	}

	entry, err := s.Repo.FindCachedAnalysis(hash)
	if err != nil {
		return "", 0, false
	}

	s.storeRedis(ctx, hash, entry.Analysis, entry.TokensUsed)
	return entry.Analysis, entry.TokensUsed, true
}

func (s *AssessmentService) storeCache(ctx context.Context, hash, analysis string, tokens int) {
	ttl := time.Duration(s.Cfg.Cache.AnalysisTTLHours) * time.Hour
	entry := &model.AnalysisCache{
		ResponseHash: hash,
		Analysis:     analysis,
		TokensUsed:   tokens,
		ExpiresAt:    time.Now().Add(ttl),
	}
	if err := s.Repo.SaveCachedAnalysis(entry); err != nil {
		logger.Log.Warn("analysis cache write failed", zap.Error(err))
	}

	s.storeRedis(ctx, hash, analysis, tokens)
}

func (s *AssessmentService) storeRedis(ctx context.Context, hash, analysis string, tokens int) {
	if s.Redis == nil {
		return
	}
	ttl := time.Duration(s.Cfg.Cache.AnalysisTTLHours) * time.Hour
	payload, _ := json.Marshal(cachedAnalysis{Analysis: analysis, TokensUsed: tokens})
	if err := s.Redis.Set(ctx, analysisCacheKeyPrefix+hash, payload, ttl).Err(); err != nil {
		logger.Log.Warn("analysis cache redis write failed", zap.Error(err))
	}
}

// Result returns a stored assessment pass for display.
func (s *AssessmentService) Result(userID, recordID string) (*model.AssessmentRecord, error) {
	record, err := s.Repo.FindByID(recordID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRecordNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return record, nil
}

// LatestResult returns the user's most recent pass, if any.
func (s *AssessmentService) LatestResult(userID string) (*model.AssessmentRecord, error) {
	record, err := s.Repo.FindLatestByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}
