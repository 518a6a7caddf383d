// Package quotes serves a motivational quote and an exercise suggestion for
// a mood category.
package quotes

import (
	"math/rand/v2"

	"github.com/unowned-ai/moodlog/pkg/wellness"
)

type Quote struct {
	Mood     wellness.Category `json:"mood"`
	Text     string            `json:"quote"`
	Author   string            `json:"author"`
	Exercise string            `json:"exercise"`
}

type entry struct {
	text   string
	author string
}

var catalog = map[wellness.Category][]entry{
	wellness.Happy: {
		{"Happiness is not something ready made. It comes from your own actions.", "Dalai Lama"},
		{"The most wasted of all days is one without laughter.", "Nicolas Chamfort"},
	},
	wellness.Neutral: {
		{"The journey of a thousand miles begins with one step.", "Lao Tzu"},
		{"Well begun is half done.", "Aristotle"},
	},
	wellness.Sad: {
		{"Even the darkest night will end and the sun will rise.", "Victor Hugo"},
		{"This too shall pass.", "Persian proverb"},
	},
	wellness.Anxious: {
		{"Nothing in life is to be feared, it is only to be understood.", "Marie Curie"},
		{"Breath is the bridge which connects life to consciousness.", "Thich Nhat Hanh"},
	},
	wellness.Stressed: {
		{"Almost everything will work again if you unplug it for a few minutes, including you.", "Anne Lamott"},
		{"The greatest weapon against stress is our ability to choose one thought over another.", "William James"},
	},
}

var exercises = map[wellness.Category]string{
	wellness.Happy:    "Keep the energy going with a 15 minute brisk walk.",
	wellness.Neutral:  "Loosen up with 5 minutes of gentle stretching.",
	wellness.Sad:      "Step outside for 10 minutes of daylight and a slow walk.",
	wellness.Anxious:  "Try box breathing for 3 minutes: inhale 4s, hold 4s, exhale 4s, hold 4s.",
	wellness.Stressed: "Work through 5 minutes of progressive muscle relaxation, head to toe.",
}

// For returns the n-th quote for c, wrapping around. Unrecognized
// categories get a neutral quote.
func For(c wellness.Category, n uint64) Quote {
	if !c.Valid() {
		c = wellness.Neutral
	}
	list := catalog[c]
	e := list[n%uint64(len(list))]
	return Quote{Mood: c, Text: e.text, Author: e.author, Exercise: exercises[c]}
}

// Random returns a randomly chosen quote for c.
func Random(c wellness.Category) Quote {
	return For(c, rand.Uint64())
}
