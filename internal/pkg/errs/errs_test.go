//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkMatchesSentinelWithErrorsIs(t *testing.T) {
	sentinel := errs.New("booking not found")
	cause := errors.New("nil reply")

	marked := errs.Mark(errs.Wrap(cause, "lookup failed"), sentinel)

	require.ErrorIs(t, marked, sentinel)
	require.ErrorIs(t, marked, cause)
}

func TestMarkNilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("invalid input")

	require.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestMarkKeepsRepositoryKindVisible(t *testing.T) {
	sentinel := errs.New("booking not found")
	repoErr := infra.WrapRepoErr("booking not found", errors.New("nil reply"), infra.KindNotFound)

	marked := errs.Mark(repoErr, sentinel)

	require.ErrorIs(t, marked, sentinel)
	assert.True(t, infra.IsKind(marked, infra.KindNotFound))
}

func TestMarkKeepsMessageAndStack(t *testing.T) {
	sentinel := errs.New("store read failed")
	marked := errs.Mark(errs.Wrap(errors.New("connection refused"), "listing companies"), sentinel)

	assert.Contains(t, marked.Error(), "listing companies")

	lines := errs.ExtractStackLines(marked, 5)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "listing companies")
}
