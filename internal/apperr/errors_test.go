package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status())
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status())
	assert.Equal(t, http.StatusForbidden, Permission("x").Status())
	assert.Equal(t, http.StatusTooManyRequests, Throttled("x").Status())
	assert.Equal(t, http.StatusUnauthorized, Auth("x").Status())
}

func TestIsKindUnwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("missing"))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindPermission))
	assert.False(t, IsKind(fmt.Errorf("plain"), KindNotFound))
}
