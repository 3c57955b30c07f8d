package domain

import "strings"

// Mood is the user-selected emotional state that drives recipe selection.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodAngry       Mood = "angry"
	MoodAdventurous Mood = "adventurous"
	MoodStressed    Mood = "stressed"
	MoodChill       Mood = "chill"
	MoodRandom      Mood = "random"
)

// AllMoods lists the moods offered to the user, in display order.
var AllMoods = []Mood{
	MoodHappy,
	MoodSad,
	MoodAngry,
	MoodAdventurous,
	MoodStressed,
	MoodChill,
	MoodRandom,
}

// ParseMood maps a user-supplied tag onto a Mood. Unrecognized tags are kept
// as-is; planners treat them exactly like MoodRandom.
func ParseMood(raw string) Mood {
	return Mood(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether m is one of AllMoods.
func (m Mood) Known() bool {
	for _, k := range AllMoods {
		if m == k {
			return true
		}
	}
	return false
}

// IsRandom reports whether the planner should skip mood-specific queries.
func (m Mood) IsRandom() bool {
	return m == MoodRandom || !m.Known()
}

// Theme returns the renderer theme class for the mood.
func (m Mood) Theme() string {
	if m.IsRandom() {
		return "theme-default"
	}
	return "theme-" + string(m)
}
