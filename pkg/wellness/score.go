package wellness

// scoreMap is the fixed wellness score of each recognized category.
var scoreMap = map[Category]int{
	Happy:    5,
	Neutral:  3,
	Sad:      2,
	Anxious:  2,
	Stressed: 1,
}

// MaxScore is the highest score any category maps to.
const MaxScore = 5

// Score returns the wellness score for c, or 0 when c is not recognized.
func Score(c Category) int {
	return scoreMap[c]
}
