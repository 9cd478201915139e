package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"volunteer post not found", apperrors.ErrVolunteerPostNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"restaurant not found", apperrors.ErrRestaurantNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("only the author can delete this post"), 403, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"token revoked", apperrors.ErrTokenRevoked, 401, dto.ErrorCodeInvalidToken},
		{"username exists", apperrors.ErrUsernameExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"already joined", apperrors.ErrAlreadyJoined, 409, dto.ErrorCodeResourceConflict},
		{"post full", apperrors.ErrPostFull, 409, dto.ErrorCodeResourceConflict},
		{"not participating", apperrors.ErrNotParticipating, 409, dto.ErrorCodeResourceConflict},
		{"password mismatch", apperrors.ErrPasswordMismatch, 400, dto.ErrorCodeValidationFailed},
		{"invalid region", apperrors.ErrInvalidRegion, 400, dto.ErrorCodeValidationFailed},
		{"file too large", apperrors.ErrFileTooLarge, 400, dto.ErrorCodeValidationFailed},
		{"bad request with message", apperrors.NewBadRequestError("volunteerDate must be formatted as YYYY-MM-DD"), 400, dto.ErrorCodeInvalidRequest},
		{"unknown error", assert.AnError, 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			HandleAPIError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
