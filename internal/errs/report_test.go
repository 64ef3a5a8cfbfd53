package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_NilErr(t *testing.T) {
	assert.Nil(t, NewReport(nil))
}

func TestReport_SeesThroughToCause(t *testing.T) {
	sentinel := errors.New("sentinel")
	report := NewReport(fmt.Errorf("outer: %w", sentinel))

	require.ErrorIs(t, report, sentinel)
}

func TestReport_MatchesTaxonomyVariant(t *testing.T) {
	report := NewReport(fmt.Errorf("registration failed: %w", EntityAlreadyExists("Username already taken", nil)))

	var appErr *Error
	require.ErrorAs(t, report, &appErr)
	assert.Equal(t, KindEntityAlreadyExists, appErr.Kind())
}

func TestReport_ChainContainsEveryCause(t *testing.T) {
	inner := errors.New("unique constraint blew up")
	middle := fmt.Errorf("user creation ended with error: %w", inner)
	report := NewReport(Internal(middle))

	chain := report.Chain()
	assert.Contains(t, chain, "user creation ended with error")
	assert.Contains(t, chain, "unique constraint blew up")
}

func TestReport_ErrorRendersTopCause(t *testing.T) {
	report := NewReport(errors.New("top-level"))
	assert.Equal(t, "top-level", report.Error())
}
