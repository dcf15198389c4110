package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	id := Identity{Name: "widget", Version: "0.9.0"}

	assert.Equal(t, "widget v0.9.0", id.String())
	assert.Equal(t, "/store/widget/0.9.0", id.KegPath("/store"))

	head := Identity{Name: "widget", Version: HeadVersion}
	assert.Equal(t, "/usr/local/Cellar/widget/HEAD", head.KegPath("/usr/local/Cellar"))
}
