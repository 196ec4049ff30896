package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIncludesCommitAndDate(t *testing.T) {
	t.Parallel()

	got := String()

	assert.Contains(t, got, "past ")
	assert.Contains(t, got, Commit)
	assert.Contains(t, got, Date)
}
