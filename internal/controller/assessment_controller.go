package controller

import (
	"encoding/json"
	"strconv"

	"relationship_mojo_backend/internal/catalog"
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/service"
	"relationship_mojo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service     *service.AssessmentService
	UserService *service.UserService
}

func NewAssessmentController(svc *service.AssessmentService, userSvc *service.UserService) *AssessmentController {
	return &AssessmentController{Service: svc, UserService: userSvc}
}

// subjectID identifies the assessment session owner: the authenticated
// user, or the guest id minted by the optional-auth middleware.
func subjectID(ctx *gin.Context) string {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return "user-" + strconv.FormatUint(uint64(claims.UserID), 10)
	}
	return ctx.GetString("subject")
}

// @Summary List assessment sections
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/sections [get]
func (c *AssessmentController) ListSections(ctx *gin.Context) {
	util.Success(ctx, catalog.Sections())
}

// @Summary List questions for one section
// @Tags assessment
// @Produce json
// @Param id path int true "section id"
// @Success 200 {object} util.Response
// @Router /api/assessment/sections/{id}/questions [get]
func (c *AssessmentController) GetSectionQuestions(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid section id")
		return
	}

	section, questions, err := c.Service.SectionQuestions(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"section": section, "questions": questions})
}

// @Summary Get the current question for this session
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/current [get]
func (c *AssessmentController) GetCurrentQuestion(ctx *gin.Context) {
	subject := subjectID(ctx)
	question := c.Service.CurrentQuestion(subject)
	progress := c.Service.Progress(subject)

	util.Success(ctx, gin.H{"question": question, "progress": progress})
}

// @Summary Submit an answer for the current question
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body model.QuestionResponse true "answer"
// @Success 200 {object} util.Response
// @Router /api/assessment/answers [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	var resp model.QuestionResponse
	if err := ctx.ShouldBindJSON(&resp); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.Service.SubmitAnswer(subjectID(ctx), resp)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"progress": progress, "question": c.Service.CurrentQuestion(subjectID(ctx))})
}

type navigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next previous"`
}

// @Summary Move to the next or previous question
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body navigateRequest true "direction"
// @Success 200 {object} util.Response
// @Router /api/assessment/navigate [post]
func (c *AssessmentController) Navigate(ctx *gin.Context) {
	var req navigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := subjectID(ctx)
	progress := c.Service.Navigate(subject, req.Direction)

	util.Success(ctx, gin.H{"progress": progress, "question": c.Service.CurrentQuestion(subject)})
}

// @Summary Get session progress
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/progress [get]
func (c *AssessmentController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.Service.Progress(subjectID(ctx)))
}

// @Summary Discard the in-progress session
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/reset [post]
func (c *AssessmentController) ResetSession(ctx *gin.Context) {
	c.Service.ResetSession(subjectID(ctx))
	util.Success(ctx, gin.H{"reset": true})
}

type completeRequest struct {
	Demographics *model.UserDemographics `json:"demographics"`
}

// @Summary Complete the assessment and generate the analysis
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body completeRequest false "optional demographics override"
// @Success 200 {object} util.Response
// @Router /api/assessment/complete [post]
func (c *AssessmentController) CompleteAssessment(ctx *gin.Context) {
	var req completeRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	var demographics model.UserDemographics
	if req.Demographics != nil {
		demographics = *req.Demographics
	} else if claims := util.GetUserFromContext(ctx); claims != nil {
		stored, err := c.UserService.GetDemographics(claims.UserID)
		if err == nil {
			demographics = stored
		}
	}

	record, err := c.Service.Finalize(ctx.Request.Context(), subjectID(ctx), demographics)
	if err != nil {
		if err == util.ErrNoResponses {
			util.BadRequest(ctx, err.Error())
			return
		}
		if record != nil {
			util.Error(ctx, 502, err.Error())
			return
		}
		util.LogInternalError(ctx, "complete assessment", err)
		return
	}

	util.Success(ctx, gin.H{
		"record": record,
		"summary": gin.H{
			"answeredCount":  answeredCount(record),
			"totalQuestions": catalog.TotalQuestions(),
			"sectionCount":   catalog.TotalSections,
		},
	})
}

func answeredCount(record *model.AssessmentRecord) int {
	var responses []model.QuestionResponse
	if err := json.Unmarshal(record.Responses, &responses); err != nil {
		return 0
	}
	return len(responses)
}

// @Summary Retry a failed analysis from its stored responses
// @Tags assessment
// @Produce json
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessment/results/{id}/retry [post]
func (c *AssessmentController) RetryAnalysis(ctx *gin.Context) {
	record, err := c.Service.RetryAnalysis(ctx.Request.Context(), subjectID(ctx), ctx.Param("id"))
	switch err {
	case nil:
		util.Success(ctx, record)
	case util.ErrRecordNotFound:
		util.NotFound(ctx)
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	case util.ErrRecordNotRetryable:
		util.BadRequest(ctx, err.Error())
	default:
		if record != nil {
			util.Error(ctx, 502, err.Error())
			return
		}
		util.LogInternalError(ctx, "retry analysis", err)
	}
}

// @Summary Get one assessment result
// @Tags assessment
// @Produce json
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessment/results/{id} [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	record, err := c.Service.Result(subjectID(ctx), ctx.Param("id"))
	switch err {
	case nil:
		util.Success(ctx, record)
	case util.ErrRecordNotFound:
		util.NotFound(ctx)
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, "get result", err)
	}
}

// @Summary Get the latest assessment result
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/results/latest [get]
func (c *AssessmentController) GetLatestResult(ctx *gin.Context) {
	record, err := c.Service.LatestResult(subjectID(ctx))
	if err != nil {
		if err == util.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, "get latest result", err)
		return
	}
	util.Success(ctx, record)
}

// @Summary List assessment results
// @Tags assessment
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/assessment/results [get]
func (c *AssessmentController) ListResults(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	records, total, err := c.Service.Repo.ListByUser(subjectID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, "list results", err)
		return
	}

	util.Success(ctx, gin.H{"items": records, "total": total})
}
