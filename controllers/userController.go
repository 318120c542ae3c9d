package controllers

import (
	"fmt"
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.users.List(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, users)
}

func (c *UserController) GetMe(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	user, err := c.users.Get(ctx.Request.Context(), identity.ID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.users.Get(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

func (c *UserController) CreateUser(ctx *gin.Context) {
	var body models.RegisterData
	if !bindJSON(ctx, &body) {
		return
	}

	user, err := c.users.Create(ctx.Request.Context(), body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	sendJSONResponse(ctx, http.StatusCreated, user)
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var body models.UpdateUserData
	if !bindJSON(ctx, &body) {
		return
	}

	user, err := c.users.Update(ctx.Request.Context(), identity, id, body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.users.Delete(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
