package diferenco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNoConflict(t *testing.T) {
	original := "celery\ngarlic\nonions\nsalmon\ntomatoes\nwine\n"
	ours := "celery\nsalmon\ngarlic\nonions\ntomatoes\nwine\n"
	theirs := "celery\ngarlic\nonions\nsalmon\ntomatoes\nwine\nbeer\n"

	result, err := Merge(original, ours, theirs, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Conflicts)
	assert.Contains(t, result.Text, "beer")
}

func TestMergeConflictingEdits(t *testing.T) {
	original := "line one\nline two\nline three\n"
	ours := "line one\nOURS CHANGE\nline three\n"
	theirs := "line one\nTHEIRS CHANGE\nline three\n"

	result, err := Merge(original, ours, theirs, MergeOptions{})
	var conflictErr *MergeConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, 1, result.Conflicts)
	assert.Contains(t, result.Text, "<<<<<<<")
	assert.Contains(t, result.Text, "=======")
	assert.Contains(t, result.Text, ">>>>>>>")
	assert.Contains(t, result.Text, "OURS CHANGE")
	assert.Contains(t, result.Text, "THEIRS CHANGE")
}

func TestMergeIdenticalChangeIsNotAConflict(t *testing.T) {
	original := "line one\nline two\nline three\n"
	ours := "line one\nSAME CHANGE\nline three\n"
	theirs := "line one\nSAME CHANGE\nline three\n"

	result, err := Merge(original, ours, theirs, MergeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Conflicts)
	assert.Equal(t, ours, result.Text)
}

func TestMergeDiff3StyleIncludesOriginal(t *testing.T) {
	original := "line one\nBASE\nline three\n"
	ours := "line one\nOURS\nline three\n"
	theirs := "line one\nTHEIRS\nline three\n"

	result, err := Merge(original, ours, theirs, MergeOptions{Style: StyleDiff3})
	require.Error(t, err)
	assert.Contains(t, result.Text, "|||||||")
	assert.Contains(t, result.Text, "BASE")
}

func TestMergeCustomMarkerLen(t *testing.T) {
	original := "x\n"
	ours := "a\n"
	theirs := "b\n"

	result, err := Merge(original, ours, theirs, MergeOptions{MarkerLen: 4})
	require.Error(t, err)
	assert.Contains(t, result.Text, "<<<<\n")
	assert.Contains(t, result.Text, ">>>>\n")
}
