package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupReference(t *testing.T) {
	t.Run("完全相符", func(t *testing.T) {
		row, found := LookupReference("tomato")
		require.True(t, found)
		assert.InDelta(t, 18, row.Calories, 0.001)
	})

	t.Run("食材名包含關鍵字", func(t *testing.T) {
		row, found := LookupReference("Fresh Tomatoes")
		require.True(t, found)
		assert.InDelta(t, 18, row.Calories, 0.001)
	})

	t.Run("關鍵字包含食材名", func(t *testing.T) {
		// "egg" 是 "eggs" 的反向子字串比對
		row, found := LookupReference("eggs")
		require.True(t, found)
		assert.InDelta(t, 155, row.Calories, 0.001)
	})

	t.Run("大小寫與空白正規化", func(t *testing.T) {
		row, found := LookupReference("  Chicken Breast  ")
		require.True(t, found)
		assert.InDelta(t, 31, row.Protein, 0.001)
	})

	t.Run("宣告順序先中先贏", func(t *testing.T) {
		// "sweet potato" 會先命中較早宣告的 "potato" 條目
		row, found := LookupReference("sweet potato")
		require.True(t, found)
		assert.InDelta(t, 77, row.Calories, 0.001)
	})

	t.Run("查無條目", func(t *testing.T) {
		_, found := LookupReference("dragonfruit")
		assert.False(t, found)
	})
}
