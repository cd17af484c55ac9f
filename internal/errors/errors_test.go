package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genroll/roulette-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "profile not found")
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "profile not found", err.Message)
	assert.Equal(t, "NOT_FOUND: profile not found", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("settings slice missing")
	wrapped := errors.Wrap(inner, "failed to load settings")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "failed to load settings")
	assert.Contains(t, wrapped.Error(), "settings slice missing")
}

func TestWrapPlainError(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "redis unreachable")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.True(t, errors.IsInternal(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "should vanish"))
}

func TestWrapWithCode(t *testing.T) {
	err := errors.WrapWithCode(fmt.Errorf("boom"), errors.CodeUnavailable, "catalog fetch failed")
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, "catalog fetch failed", errors.GetMessage(err))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad input")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, errors.CodeUnavailable.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.Code("UNKNOWN").HTTPStatus())
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("item missing").WithMeta("item_id", "hutao")
	assert.Equal(t, "hutao", err.Meta["item_id"])
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)

	err = errors.NewValidationBuilder().
		RequiredField("StateRepo").
		Field("Clock", "is required").
		Build()
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "StateRepo")
}
