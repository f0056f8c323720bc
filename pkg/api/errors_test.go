package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("platform", "required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("dispatch: %w", services.NewValidationError("direction", "invalid")), http.StatusBadRequest},
		{"unknown agent", fmt.Errorf("%w: nope", agent.ErrUnknownAgent), http.StatusNotFound},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"not suspended", services.ErrNotSuspended, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
