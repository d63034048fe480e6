package warnlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statements-dev/statements/internal/amount"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: now, Context: "transactions.csv row 3: amount", Raw: "12x.4"},
		{Timestamp: now, Context: "depreciation.csv row 2: cost", Raw: "oops"},
	}
	require.NoError(t, Append(dir, entries))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "transactions.csv row 3: amount", got[0].Context)
	assert.Equal(t, "12x.4", got[0].Raw)
	assert.True(t, got[0].Timestamp.Equal(now))
}

func TestAppend_Accumulates(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, Append(dir, []Entry{{Timestamp: now, Context: "a", Raw: "1"}}))
	require.NoError(t, Append(dir, []Entry{{Timestamp: now, Context: "b", Raw: "2"}}))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Context)
}

func TestRead_NonExistent(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromWarnings(t *testing.T) {
	now := time.Now()
	warnings := []amount.Warning{{Context: "x", Raw: "y"}}

	entries := FromWarnings(now, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Context)
	assert.Equal(t, "y", entries[0].Raw)
	assert.True(t, entries[0].Timestamp.Equal(now))
}
