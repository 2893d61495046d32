package controller

import (
	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/service"
	"relationship_mojo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Get the current user's demographics
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/demographics [get]
func (c *UserController) GetDemographics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	demographics, err := c.UserService.GetDemographics(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, "get demographics", err)
		return
	}

	util.Success(ctx, demographics)
}

// @Summary Update the current user's demographics
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.UserDemographics true "demographics"
// @Success 200 {object} util.Response
// @Router /api/user/demographics [put]
func (c *UserController) UpdateDemographics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var demographics model.UserDemographics
	if err := ctx.ShouldBindJSON(&demographics); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdateDemographics(claims.UserID, demographics); err != nil {
		util.LogInternalError(ctx, "update demographics", err)
		return
	}

	util.Success(ctx, demographics)
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// @Summary Update the current user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body updateProfileRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name)
	if err != nil {
		util.LogInternalError(ctx, "update profile", err)
		return
	}

	util.Success(ctx, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
