package errors_test

import (
	"errors"
	"net/http"
	"testing"

	domainerrors "appforge.backend/internal/domain/errors"
	"github.com/stretchr/testify/assert"
)

func TestConstructorCodesAndStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    *domainerrors.AppError
		status int
		code   string
	}{
		{"not found", domainerrors.NotFound("x"), http.StatusNotFound, domainerrors.CodeNotFound},
		{"bad request", domainerrors.BadRequest("x"), http.StatusBadRequest, domainerrors.CodeBadRequest},
		{"forbidden", domainerrors.Forbidden("x"), http.StatusForbidden, domainerrors.CodeForbidden},
		{"slug taken", domainerrors.SlugTaken("x"), http.StatusConflict, domainerrors.CodeSlugTaken},
		{"invalid api key", domainerrors.InvalidAPIKey(), http.StatusUnauthorized, domainerrors.CodeInvalidAPIKey},
		{"ip banned", domainerrors.IPBanned(60), http.StatusTooManyRequests, domainerrors.CodeIPBanned},
		{"internal", domainerrors.InternalError(errors.New("boom")), http.StatusInternalServerError, domainerrors.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status)
			assert.Equal(t, tc.code, tc.err.Code)
		})
	}
}

func TestUnwrapPreservesSentinels(t *testing.T) {
	assert.ErrorIs(t, domainerrors.NotFound("gone"), domainerrors.ErrNotFound)
	assert.ErrorIs(t, domainerrors.InvalidAPIKey(), domainerrors.ErrInvalidAPIKey)
	assert.ErrorIs(t, domainerrors.IPBanned(10), domainerrors.ErrIPBanned)

	root := errors.New("disk full")
	assert.ErrorIs(t, domainerrors.InternalError(root), root)
}

func TestIPBannedMessageCarriesRemainingSeconds(t *testing.T) {
	err := domainerrors.IPBanned(3599)
	assert.Contains(t, err.Message, "3599")
}

func TestAppErrorErrorPrefersWrappedError(t *testing.T) {
	withCause := domainerrors.InternalError(errors.New("boom"))
	assert.Equal(t, "boom", withCause.Error())

	withoutCause := &domainerrors.AppError{Message: "just a message"}
	assert.Equal(t, "just a message", withoutCause.Error())
}

func TestRateLimitErrorNamesPolicy(t *testing.T) {
	err := &domainerrors.RateLimitError{Policy: "perKey"}
	assert.Contains(t, err.Error(), "perKey")
}
