package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/storage"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
)

func init() {
	// Report validation failures under JSON field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	}
}

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func sendValidationError(ctx *gin.Context, verr *utils.ValidationError) {
	sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
		"message": verr.Message,
		"errors":  verr.Fields,
	})
}

// respondWithError maps the error taxonomy onto HTTP statuses. Unexpected
// errors are logged and reported without their cause.
func respondWithError(ctx *gin.Context, err error) {
	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		sendValidationError(ctx, verr)
	case errors.Is(err, utils.ErrConflict), errors.Is(err, storage.ErrNotAnImage):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrInvalidCredentials):
		sendErrorResponse(ctx, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, utils.ErrIdentityNotFound), errors.Is(err, utils.ErrUnauthenticated):
		sendErrorResponse(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, utils.ErrForbidden):
		sendErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, utils.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

// bindJSON decodes the body into dst, answering 400 with field detail on failure.
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		sendValidationError(ctx, bindingError(err))
		return false
	}
	return true
}

func bindQuery(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindQuery(dst); err != nil {
		sendValidationError(ctx, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) *utils.ValidationError {
	verr := utils.NewValidationError(msgInvalidInput)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("body", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), fieldMessage(fe))
	}
	return verr
}

// fieldPath drops the root struct name from the namespace, e.g. items[0].quantity.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have a length of at least %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have a length of at most %s", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uri", "url":
		return "must be a valid URL"
	}
	return "is invalid"
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 0)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse "+name)
		return 0, false
	}
	return uint(id), true
}

// currentIdentity reads the caller set by RequireAuth, answering 401 when absent.
func currentIdentity(ctx *gin.Context) (auth.Identity, bool) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, utils.ErrIdentityNotFound.Error())
		return auth.Identity{}, false
	}
	return identity, true
}
