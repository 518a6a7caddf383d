package wellness

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestComputeViewsScenario(t *testing.T) {
	moods := []MoodRecord{
		mood(Happy, "2024-01-01T08:00:00Z"),
		mood(Happy, "2024-01-01T20:00:00Z"),
		mood(Sad, "2024-01-02T09:00:00Z"),
	}

	v := ComputeViews(moods, nil, Query{})

	if !reflect.DeepEqual(v.Frequency, FrequencyDistribution{Happy: 2, Sad: 1}) {
		t.Errorf("Unexpected frequency: %v", v.Frequency)
	}
	if v.Balance != (BalanceProfile{2, 0, 1, 0, 0}) {
		t.Errorf("Unexpected balance: %v", v.Balance)
	}
	if len(v.Trend) != 2 {
		t.Fatalf("Expected 2 trend points, got %d", len(v.Trend))
	}
	assertDecimal(t, v.Trend[0].AverageScore, "5.00")
	assertDecimal(t, v.Trend[1].AverageScore, "2.00")
	if v.Insights == nil || len(v.Insights) != 0 {
		t.Errorf("Expected empty, non-nil insights, got %#v", v.Insights)
	}
}

func TestComputeViewsEmpty(t *testing.T) {
	v := ComputeViews(nil, nil, Query{})
	if len(v.Frequency) != 0 || len(v.Percentage) != 0 || len(v.Trend) != 0 {
		t.Errorf("Expected empty views, got %+v", v)
	}
	if v.Balance != (BalanceProfile{}) {
		t.Errorf("Expected zero balance, got %v", v.Balance)
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"frequency":{},"percentage":{},"balance":[{"category":"happy","count":0},{"category":"neutral","count":0},{"category":"sad","count":0},{"category":"anxious","count":0},{"category":"stressed","count":0}],"trend":[],"insights":[]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestComputeViewsSharedWindow(t *testing.T) {
	moods := []MoodRecord{
		mood(Happy, "2024-01-01T08:00:00Z"),
		mood(Stressed, "2024-01-08T08:00:00Z"),
		mood(Anxious, "2024-01-15T08:00:00Z"),
	}
	insights := []Insight{
		insight(t, "2024-01-15", "late"),
		insight(t, "2024-01-08", "middle"),
		insight(t, "2024-01-01", "early"),
	}
	q := Query{Window: Window{Start: day(t, "2024-01-02"), End: day(t, "2024-01-14")}}

	v := ComputeViews(moods, insights, q)
	if !reflect.DeepEqual(v.Frequency, FrequencyDistribution{Stressed: 1}) {
		t.Errorf("Unexpected frequency: %v", v.Frequency)
	}
	if len(v.Trend) != 1 || v.Trend[0].Date != day(t, "2024-01-08") {
		t.Errorf("Unexpected trend: %v", v.Trend)
	}
	if len(v.Insights) != 1 || v.Insights[0].Summary != "middle" {
		t.Errorf("Unexpected insights: %v", v.Insights)
	}
}

func TestComputeViewsInvertedWindow(t *testing.T) {
	moods := []MoodRecord{mood(Happy, "2024-01-05T08:00:00Z")}
	insights := []Insight{insight(t, "2024-01-05", "week")}
	q := Query{Window: Window{Start: day(t, "2024-01-10"), End: day(t, "2024-01-01")}}

	v := ComputeViews(moods, insights, q)
	if len(v.Frequency) != 0 || len(v.Percentage) != 0 || len(v.Trend) != 0 || len(v.Insights) != 0 {
		t.Errorf("Expected empty views for an inverted window, got %+v", v)
	}
	if v.Balance != (BalanceProfile{}) {
		t.Errorf("Expected zero balance, got %v", v.Balance)
	}
}

func TestComputeViewsInsightsSortedWithoutMutatingInput(t *testing.T) {
	insights := []Insight{
		insight(t, "2024-02-12", "third"),
		insight(t, "2024-01-29", "first"),
		insight(t, "2024-02-05", "second"),
	}
	original := append([]Insight(nil), insights...)

	v := ComputeViews(nil, insights, Query{})
	var got []string
	for _, i := range v.Insights {
		got = append(got, i.Summary)
	}
	if !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("Expected ascending week order, got %v", got)
	}
	if !reflect.DeepEqual(insights, original) {
		t.Errorf("ComputeViews reordered its input")
	}
}

func TestComputeViewsSameWeekInsightsKeepInputOrder(t *testing.T) {
	insights := []Insight{
		insight(t, "2024-01-08", "later week"),
		insight(t, "2024-01-01", "written first"),
		insight(t, "2024-01-01", "written second"),
		insight(t, "2024-01-01", "written third"),
	}

	v := ComputeViews(nil, insights, Query{})
	var got []string
	for _, i := range v.Insights {
		got = append(got, i.Summary)
	}
	want := []string{"written first", "written second", "written third", "later week"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestComputeViewsUndatedRecords(t *testing.T) {
	moods := []MoodRecord{
		{Category: Happy},
		mood(Sad, "2024-01-02T10:00:00Z"),
	}

	// No window: the undated record still counts in the distributions but
	// cannot be placed on a day.
	v := ComputeViews(moods, nil, Query{})
	if !reflect.DeepEqual(v.Frequency, FrequencyDistribution{Happy: 1, Sad: 1}) {
		t.Errorf("Unexpected unwindowed frequency: %v", v.Frequency)
	}
	if v.Balance.Count(Happy) != 1 {
		t.Errorf("Expected the undated record in the balance, got %v", v.Balance)
	}
	if len(v.Trend) != 1 || v.Trend[0].Date != day(t, "2024-01-02") {
		t.Fatalf("Expected a single trend point on 2024-01-02, got %v", v.Trend)
	}
	assertDecimal(t, v.Trend[0].AverageScore, "2")

	// Any bound excludes it everywhere.
	v = ComputeViews(moods, nil, Query{Window: Window{Start: day(t, "2024-01-01")}})
	if !reflect.DeepEqual(v.Frequency, FrequencyDistribution{Sad: 1}) {
		t.Errorf("Unexpected windowed frequency: %v", v.Frequency)
	}
	if v.Balance.Count(Happy) != 0 {
		t.Errorf("Expected the undated record out of the balance, got %v", v.Balance)
	}
}

func TestComputeViewsUnrecognizedCategory(t *testing.T) {
	moods := []MoodRecord{
		mood("elated", "2024-01-01T08:00:00Z"),
		mood(Neutral, "2024-01-01T09:00:00Z"),
	}
	v := ComputeViews(moods, nil, Query{})
	if !reflect.DeepEqual(v.Frequency, FrequencyDistribution{Neutral: 1}) {
		t.Errorf("Unexpected frequency: %v", v.Frequency)
	}
	if len(v.Trend) != 1 {
		t.Fatalf("Expected 1 trend point, got %d", len(v.Trend))
	}
	assertDecimal(t, v.Trend[0].AverageScore, "1.50")
}

func TestComputeViewsIdempotent(t *testing.T) {
	snap := Snapshot{
		Moods: []MoodRecord{
			mood(Happy, "2024-01-01T08:00:00Z"),
			mood(Anxious, "2024-01-03T08:00:00Z"),
			mood(Stressed, "2024-01-03T18:00:00Z"),
		},
		Insights: []Insight{insight(t, "2024-01-01", "ok week")},
	}
	q := Query{Window: Window{Start: day(t, "2024-01-01")}}

	first, err := json.Marshal(snap.Views(q))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second, err := json.Marshal(snap.Views(q))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Views differ between calls:\n%s\n%s", first, second)
	}
	if !reflect.DeepEqual(snap.Views(q), snap.Views(q)) {
		t.Errorf("Views are not deeply equal between calls")
	}
}
