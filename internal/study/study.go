// Package study holds the pure study-domain rules shared by the server
// and the client SDK: score and accuracy math, deck navigation, streaks
// and mastery. Keeping both sides on the same functions means a score
// computed locally always matches the one the server recomputes.
package study

import (
	"math"
	"sort"
	"time"
)

// Difficulty ratings recorded for a flashcard attempt.
const (
	RatingHard   = 1
	RatingMedium = 3
	RatingEasy   = 5
)

// MasteryThreshold is the number of correct attempts after which a
// flashcard counts as mastered.
const MasteryThreshold = 2

// Normalize maps NaN and infinities to zero so a bad input can never
// poison a rendered number.
func Normalize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// DisplayPercent rounds a percentage for display, half away from zero.
// Callers keep the underlying float untouched.
func DisplayPercent(x float64) int {
	return int(math.Round(Normalize(x)))
}

// Score converts a correct count into a whole-number percentage.
// A non-positive total returns zero without dividing.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Percent is the unrounded counterpart of Score, used for accuracy values.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

// RatingCorrect reports whether a rating counts as a correct recall.
// Hard is the only incorrect rating.
func RatingCorrect(rating int) bool {
	return rating > RatingHard
}

// WrapNext advances a deck index with wrap-around. An empty deck leaves
// the index unchanged.
func WrapNext(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i + 1) % n
}

// WrapPrev steps a deck index back with wrap-around. An empty deck
// leaves the index unchanged.
func WrapPrev(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i - 1 + n) % n
}

// Streaks computes the current and longest runs of consecutive study
// days. Input days may be unsorted and contain duplicates; they are
// collapsed to distinct UTC dates. The current streak counts only a run
// ending today or yesterday.
func Streaks(days []time.Time, today time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	seen := make(map[time.Time]struct{}, len(days))
	distinct := make([]time.Time, 0, len(days))
	for _, d := range days {
		day := midnight(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		distinct = append(distinct, day)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Before(distinct[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i].Sub(distinct[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := distinct[len(distinct)-1]
	t := midnight(today)
	if last.Equal(t) || last.Equal(t.AddDate(0, 0, -1)) {
		current = run
	}
	return current, longest
}

// WeekStart returns Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := midnight(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
