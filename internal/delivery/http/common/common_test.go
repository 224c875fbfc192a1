package http_common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{model.ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("%w: movie 1", model.ErrResourceNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: not a participant", model.ErrForbidden), http.StatusForbidden},
		{model.ErrInvalidState, http.StatusConflict},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{errors.Join(model.ErrUpstream, errors.New("502")), http.StatusBadGateway},
		{model.ErrEmptyPool, http.StatusUnprocessableEntity},
		{errors.Join(model.ErrInternal, model.ErrResourceNotFound), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		status, message := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		if status == http.StatusInternalServerError {
			assert.Equal(t, "internal error", message)
		}
	}
}
