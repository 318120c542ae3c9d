package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

type AuthController struct {
	users  *services.UserService
	tokens TokenIssuer
}

func NewAuthController(users *services.UserService, tokens TokenIssuer) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var body models.RegisterData
	if !bindJSON(ctx, &body) {
		return
	}

	user, err := c.users.Register(ctx.Request.Context(), body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.respondWithToken(ctx, user)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var body models.LoginData
	if !bindJSON(ctx, &body) {
		return
	}

	user, err := c.users.Authenticate(ctx.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.respondWithToken(ctx, user)
}

func (c *AuthController) respondWithToken(ctx *gin.Context, user models.User) {
	token, err := c.tokens.Issue(user)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, models.AuthResponse{
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
