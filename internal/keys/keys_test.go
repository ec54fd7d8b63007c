package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchupKey_OrderIndependent(t *testing.T) {
	assert.Equal(t, "3_7", MatchupKey(7, 3))
	assert.Equal(t, MatchupKey(3, 7), MatchupKey(7, 3))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "mega_bazooka", NameKey("  Mega Bazooka "))
}

func TestContestKey(t *testing.T) {
	assert.Equal(t, "contest:12", ContestKey(12))
}
