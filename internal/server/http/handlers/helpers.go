package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/pkg/auth"
	"github.com/zoombxu/surplus/internal/server/http/middleware"
)

// CurrentClaims extracts the authenticated principal from context.
func CurrentClaims(c *gin.Context) auth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return auth.Claims{}
	}
	claims, _ := val.(auth.Claims)
	return claims
}

// writeError maps a domain error to an HTTP status with a JSON body.
func writeError(c *gin.Context, err error) {
	var restricted *domainErrors.OrderingRestrictedError
	if errors.As(err, &restricted) {
		c.JSON(http.StatusForbidden, gin.H{"error": restricted.Error(), "remainingMinutes": restricted.RemainingMinutes})
		return
	}

	var notCancellable *domainErrors.NotCancellableError
	if errors.As(err, &notCancellable) {
		c.JSON(http.StatusConflict, gin.H{"error": notCancellable.Error(), "status": string(notCancellable.Status)})
		return
	}

	var invalidTransition *domainErrors.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": invalidTransition.Error()})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInvalidItems),
		errors.Is(err, domainErrors.ErrInvalidCustomer),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, imagehost.ErrRejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
