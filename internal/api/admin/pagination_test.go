package admin

import (
	"math"
	"testing"

	"onboarding-app/config"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	def, max := config.DEFAULT_PAGE_LIMIT, config.MAX_PAGE_LIMIT

	cases := []struct {
		name         string
		page, limit  string
		wantPage     int
		wantLimit    int
		wantOffset   int
	}{
		{"defaults", "", "", 1, def, 0},
		{"third page", "3", "10", 3, 10, 20},
		{"page below one", "0", "10", 1, 10, 0},
		{"negative limit", "2", "-5", 2, 1, 1},
		{"zero limit", "1", "0", 1, 1, 0},
		{"limit capped", "2", "1000", 2, max, max},
		{"garbage", "abc", "x", 1, def, 0},
		{"whitespace", " 2 ", " 5 ", 2, 5, 5},
		{"huge page", "9223372036854775807", "20", math.MaxInt / 20, 20, (math.MaxInt/20 - 1) * 20},
		{"page beyond int", "99999999999999999999", "20", 1, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pr := ParsePage(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, pr.Page)
			assert.Equal(t, tc.wantLimit, pr.Limit)
			assert.Equal(t, tc.wantOffset, pr.Offset)
			assert.GreaterOrEqual(t, pr.Offset, 0)
		})
	}
}

func TestOrderClause(t *testing.T) {
	got, ok := orderClause("")
	assert.True(t, ok)
	assert.Equal(t, "created_at DESC, id ASC", got)

	got, ok = orderClause("name")
	assert.True(t, ok)
	assert.Equal(t, "last_name ASC, first_name ASC, id ASC", got)

	got, ok = orderClause("-submitted_at")
	assert.True(t, ok)
	assert.Equal(t, "submitted_at DESC, id ASC", got)

	_, ok = orderClause("email; DROP TABLE artists")
	assert.False(t, ok)
	_, ok = orderClause("-")
	assert.False(t, ok)
}
