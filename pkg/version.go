package moodlog

// Version is the current moodlog release.
const Version = "0.3.0"
