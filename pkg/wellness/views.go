package wellness

import "slices"

// Views is every derived projection of one snapshot under one query.
type Views struct {
	Frequency  FrequencyDistribution  `json:"frequency"`
	Percentage PercentageDistribution `json:"percentage"`
	Balance    BalanceProfile         `json:"balance"`
	Trend      DailyTrend             `json:"trend"`
	Insights   []Insight              `json:"insights"`
}

// ComputeViews applies q's window identically to moods (by local date of
// occurrence) and insights (by week start), then derives every view from the
// filtered sets. The inputs are read, never modified, and nothing is cached.
func ComputeViews(moods []MoodRecord, insights []Insight, q Query) Views {
	inRange := Filter(moods, q.Window, q.MoodDate)
	dist := Distribute(inRange)

	return Views{
		Frequency:  dist.Counts,
		Percentage: dist.Percentages,
		Balance:    BalanceOf(dist.Counts),
		Trend:      Daily(inRange, q),
		Insights:   FilterInsights(insights, q.Window),
	}
}

// FilterInsights returns the insights whose week start lies in w, ordered by
// week start ascending. Insights sharing a week keep their input order.
func FilterInsights(insights []Insight, w Window) []Insight {
	out := slices.Clone(Filter(insights, w, insightDate))
	if out == nil {
		out = []Insight{}
	}
	slices.SortStableFunc(out, func(a, b Insight) int {
		return compareDates(a.WeekStart, b.WeekStart)
	})
	return out
}
