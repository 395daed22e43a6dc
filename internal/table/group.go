package table

import "github.com/verte-zerg/examboard/internal/model"

// Group is the ordered run of records sharing a provider.
type Group struct {
	Provider string
	Records  []model.ExamRecord
}

// GroupByProvider partitions records by provider in a single pass. Providers
// appear in first-seen order and records keep their relative order.
func GroupByProvider(records []model.ExamRecord) []Group {
	index := map[string]int{}
	var groups []Group
	for _, rec := range records {
		i, ok := index[rec.Provider]
		if !ok {
			i = len(groups)
			index[rec.Provider] = i
			groups = append(groups, Group{Provider: rec.Provider})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

// Providers returns the provider names of groups in order.
func Providers(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Provider
	}
	return out
}
