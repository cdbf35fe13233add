package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CapturesCodeAndMessage(t *testing.T) {
	err := New(ErrCodeEmptyCorpus, "laws corpus is empty")

	require.NotNil(t, err)
	assert.Equal(t, ErrCodeEmptyCorpus, err.Code)
	assert.Equal(t, "[IDX_001] laws corpus is empty", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestError_IncludesDetailWhenSet(t *testing.T) {
	err := New(ErrCodeLawNotFound, "law not found").WithDetail("id=42")
	assert.Equal(t, "[SRCH_002] law not found: id=42", err.Error())
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "query failed"))
}

func TestWrap_PreservesChain(t *testing.T) {
	root := stderrors.New("connection refused")
	wrapped := Wrap(root, ErrCodeRetrievalUnavailable, "law query failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrCodeRetrievalUnavailable, wrapped.Code)
	assert.ErrorIs(t, wrapped, root)
}

func TestWrap_UnknownCodePreservesOriginal(t *testing.T) {
	inner := New(ErrCodeTemplateMissing, "group absent")
	outer := Wrap(inner, CodeUnknown, "compose failed")
	assert.Equal(t, ErrCodeTemplateMissing, outer.Code)
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeRetrievalUnavailable, "store down")
	mid := fmt.Errorf("searching laws: %w", inner)
	outer := Wrap(mid, ErrCodeInternal, "pipeline failed")

	assert.True(t, IsCode(outer, ErrCodeRetrievalUnavailable))
	assert.False(t, IsCode(outer, ErrCodeEmptyCorpus))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeLawNotFound, "missing")))
	assert.True(t, IsNotFound(New(ErrCodeCaseNotFound, "missing")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.False(t, IsNotFound(New(ErrCodeDatabaseError, "boom")))
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeEmptyCorpus, GetCode(New(ErrCodeEmptyCorpus, "empty")))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatusForCode(ErrCodeRetrievalUnavailable))
	assert.Equal(t, http.StatusNotFound, HTTPStatusForCode(ErrCodeLawNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrorCode("NOPE")))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "IDX", ModuleForCode(ErrCodeEmptyCorpus))
	assert.Equal(t, "SRCH", ModuleForCode(ErrCodeRetrievalUnavailable))
	assert.Equal(t, "COMMON", ModuleForCode(ErrCodeInternal))
}
