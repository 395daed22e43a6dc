package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/examboard/internal/model"
)

func TestGroupByProviderFirstSeenOrder(t *testing.T) {
	sorted := SortRecords([]model.ExamRecord{rec(1, "AWS", 1), rec(2, "AWS", 2), rec(3, "Google", 3)}, model.DefaultSort())
	groups := GroupByProvider(sorted)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"Google", "AWS"}, Providers(groups))
	assert.Equal(t, []int64{3}, ids(groups[0].Records))
	assert.Equal(t, []int64{2, 1}, ids(groups[1].Records))
}

func TestGroupByProviderIsPartition(t *testing.T) {
	records := []model.ExamRecord{
		rec(1, "AWS", 1),
		rec(2, "Google", 9),
		rec(3, "AWS", 4),
		rec(4, "Cisco", 2),
		rec(5, "Google", 7),
		rec(6, "AWS", 8),
	}
	for _, cfg := range []model.SortConfig{
		model.DefaultSort(),
		{Key: model.SortByID, Direction: model.Asc},
		{Key: model.SortByProvider, Direction: model.Desc},
	} {
		sorted := SortRecords(records, cfg)
		groups := GroupByProvider(sorted)

		var concat []int64
		for _, g := range groups {
			for _, r := range g.Records {
				assert.Equal(t, g.Provider, r.Provider)
			}
			concat = append(concat, ids(g.Records)...)
		}
		assert.ElementsMatch(t, ids(sorted), concat)

		var want []int64
		for _, p := range Providers(groups) {
			for _, r := range sorted {
				if r.Provider == p {
					want = append(want, r.ID)
				}
			}
		}
		assert.Equal(t, want, concat)
	}
}

func TestGroupByProviderEmpty(t *testing.T) {
	assert.Empty(t, GroupByProvider(nil))
}
