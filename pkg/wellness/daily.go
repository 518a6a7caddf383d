package wellness

import (
	"encoding/json"
	"slices"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// averagePlaces is the precision of a daily average score.
const averagePlaces = 2

// DailyPoint is the mean wellness score of one calendar day.
type DailyPoint struct {
	Date         civil.Date
	AverageScore decimal.Decimal
}

// MarshalJSON renders the average as a JSON number with two decimals.
func (p DailyPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date         civil.Date  `json:"date"`
		AverageScore json.Number `json:"average_score"`
	}{
		Date:         p.Date,
		AverageScore: json.Number(p.AverageScore.StringFixed(averagePlaces)),
	})
}

// DailyTrend is ordered by strictly ascending date.
type DailyTrend []DailyPoint

type dayTotal struct {
	sum   int64
	count int64
}

// Daily groups records by their local calendar date (see Query.MoodDate)
// and averages their scores per day. Unrecognized categories score 0 and
// pull their day's mean down. Records without a timestamp cannot be placed
// on a day and are left out of the trend.
func Daily(records []MoodRecord, q Query) DailyTrend {
	totals := make(map[civil.Date]*dayTotal)
	for _, r := range records {
		day := q.MoodDate(r)
		if !day.IsValid() {
			continue
		}
		t, ok := totals[day]
		if !ok {
			t = &dayTotal{}
			totals[day] = t
		}
		t.sum += int64(Score(r.Category))
		t.count++
	}

	days := make([]civil.Date, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	slices.SortFunc(days, compareDates)

	trend := make(DailyTrend, 0, len(days))
	for _, day := range days {
		t := totals[day]
		trend = append(trend, DailyPoint{
			Date:         day,
			AverageScore: averageOf(t.sum, t.count),
		})
	}
	return trend
}

// averageOf divides exactly and rounds half away from zero, which for
// non-negative scores is round-half-up.
func averageOf(sum, count int64) decimal.Decimal {
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), averagePlaces)
}
