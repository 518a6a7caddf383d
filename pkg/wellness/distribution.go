package wellness

import "encoding/json"

// FrequencyDistribution counts recognized categories. Categories that never
// occur are absent; read them through Count.
type FrequencyDistribution map[Category]int

// Count returns the occurrences of c, 0 when absent.
func (f FrequencyDistribution) Count(c Category) int {
	return f[c]
}

// Total is the number of counted records.
func (f FrequencyDistribution) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// PercentageDistribution holds each category's share of the counted total
// in [0, 100]. Absent categories have share 0.
type PercentageDistribution map[Category]float64

// Share returns the percentage for c, 0 when absent.
func (p PercentageDistribution) Share(c Category) float64 {
	return p[c]
}

// Distribution bundles counts and their derived percentages.
type Distribution struct {
	Counts      FrequencyDistribution
	Percentages PercentageDistribution
}

// Distribute counts recognized categories across records. Percentages are
// relative to the counted total, so they sum to 100 whenever anything was
// counted and are all zero otherwise.
func Distribute(records []MoodRecord) Distribution {
	counts := make(FrequencyDistribution)
	for _, r := range records {
		if !r.Category.Valid() {
			continue
		}
		counts[r.Category]++
	}

	total := counts.Total()
	percentages := make(PercentageDistribution, len(counts))
	if total > 0 {
		for c, n := range counts {
			percentages[c] = float64(n) / float64(total) * 100
		}
	}
	return Distribution{Counts: counts, Percentages: percentages}
}

// BalanceProfile is the per-category count vector in Categories order.
type BalanceProfile [categoryCount]int

// BalanceOf projects f onto the fixed five-category order.
func BalanceOf(f FrequencyDistribution) BalanceProfile {
	var b BalanceProfile
	for i, c := range Categories {
		b[i] = f.Count(c)
	}
	return b
}

// Count returns the balance value for c, 0 for unrecognized categories.
func (b BalanceProfile) Count(c Category) int {
	i := c.index()
	if i < 0 {
		return 0
	}
	return b[i]
}

type balanceEntry struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// MarshalJSON renders the profile as an ordered list of category/count pairs.
func (b BalanceProfile) MarshalJSON() ([]byte, error) {
	entries := make([]balanceEntry, len(b))
	for i, c := range Categories {
		entries[i] = balanceEntry{Category: c, Count: b[i]}
	}
	return json.Marshal(entries)
}
