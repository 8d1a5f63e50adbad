package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusByKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("Add Failed", nil).Status())
	assert.Equal(t, http.StatusConflict, Domain("Delete Failed", "in use", ErrFoodReferenced).Status())
	assert.Equal(t, http.StatusBadGateway, Network("Add Failed", "boom", errors.New("dial tcp")).Status())
	assert.Equal(t, http.StatusUnauthorized, Auth("Login Failed", "Invalid email or password", nil).Status())
	assert.Equal(t, http.StatusNotFound, NotFound("Order", "42").Status())
}

func TestWrappingKeepsSentinel(t *testing.T) {
	err := fmt.Errorf("store: %w", Domain("Delete Failed", "in use", ErrFoodReferenced))
	assert.ErrorIs(t, err, ErrFoodReferenced)
	assert.True(t, IsKind(err, KindDomain))
	assert.Equal(t, "Delete Failed", As(err).Title)
}

func TestAsWrapsUnknown(t *testing.T) {
	e := As(errors.New("disk full"))
	assert.Equal(t, http.StatusInternalServerError, e.Status())
	assert.Equal(t, "disk full", e.Detail)
}

func TestNetworkCarriesDetail(t *testing.T) {
	e := Network("Update Failed", "Failed to update the order. Please try again.", errors.New("status 500"))
	assert.Equal(t, "status 500", e.Detail)
	assert.Contains(t, e.Error(), "network")
}
