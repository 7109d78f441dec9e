package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestHandleUserIDAndPathUUID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	itemID := uuid.New()

	var gotUser, gotItem uuid.UUID
	rt := route{
		method:  http.MethodGet,
		pattern: "/items/{id}",
		handler: func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			gotUser, gotItem, ok = handleUserIDAndPathUUID(w, r, "id", nil)
			if ok {
				w.WriteHeader(http.StatusNoContent)
			}
		},
	}

	t.Run("both present", func(t *testing.T) {
		rec := do(t, rt, "/items/"+itemID.String(), "", userID)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, itemID, gotItem)
	})

	t.Run("not authenticated", func(t *testing.T) {
		rec := do(t, rt, "/items/"+itemID.String(), "", uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", errorMessage(t, rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := do(t, rt, "/items/not-a-uuid", "", userID)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ID format", errorMessage(t, rec))
	})
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	newRoute := func(allowEmpty bool) route {
		return route{
			method:  http.MethodPost,
			pattern: "/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req LoginRequest
				if decodeAndValidate(w, r, &req, allowEmpty, testLogger()) {
					shared.RespondWithJSON(w, r, http.StatusOK, req)
				}
			},
		}
	}

	tests := []struct {
		name        string
		allowEmpty  bool
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid body",
			body:       `{"email":"ada@example.com","password":"secret"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "malformed json",
			body:        `{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "unknown field",
			body:        `{"email":"ada@example.com","password":"secret","admin":true}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "empty body rejected",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "empty body allowed still validates",
			allowEmpty:  true,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: required field",
		},
		{
			name:        "validation failure",
			body:        `{"email":"ada@example.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid password: required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newRoute(tt.allowEmpty), "/", tt.body, uuid.Nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}
