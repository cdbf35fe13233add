package redis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
)

func TestBuildKey(t *testing.T) {
	c := NewCache(nil, "legalai", time.Hour, logging.NewNopLogger())

	t.Run("short parts join verbatim", func(t *testing.T) {
		assert.Equal(t, "legalai:answer:abc", c.BuildKey("answer", "abc"))
	})

	t.Run("long parts are hashed", func(t *testing.T) {
		question := strings.Repeat("我想請問租賃契約的問題", 10)
		key := c.BuildKey("answer", question)
		assert.True(t, strings.HasPrefix(key, "legalai:answer:"))
		// sha256 hex digest
		assert.Len(t, strings.TrimPrefix(key, "legalai:answer:"), 64)
		assert.NotContains(t, key, "租賃")
	})

	t.Run("stable for equal input", func(t *testing.T) {
		q := strings.Repeat("x", 100)
		assert.Equal(t, c.BuildKey("answer", q), c.BuildKey("answer", q))
	})

	t.Run("distinct input yields distinct keys", func(t *testing.T) {
		a := strings.Repeat("a", 100)
		b := strings.Repeat("b", 100)
		assert.NotEqual(t, c.BuildKey("answer", a), c.BuildKey("answer", b))
	})
}
