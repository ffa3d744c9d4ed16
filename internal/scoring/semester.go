package scoring

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var yearRe = regexp.MustCompile(`(19|20)\d{2}`)

// Term ranks within one calendar year.
const (
	termUnknown = 0
	termSpring  = 1
	termSummer  = 2
	termFall    = 3
)

// ParseSemesterKey turns a free-text semester label ("Fall 2023", "2021
// Spring", "Sem 1") into a totally ordered integer key. Labels with no
// recognizable year sort as year 2000; labels with no recognizable term sort
// before Spring of the same year.
func ParseSemesterKey(label string) int {
	year := 2000
	if m := yearRe.FindString(label); m != "" {
		year, _ = strconv.Atoi(m)
	}

	term := termUnknown
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "spring"):
		term = termSpring
	case strings.Contains(lower, "summer"):
		term = termSummer
	case strings.Contains(lower, "fall"), strings.Contains(lower, "autumn"):
		term = termFall
	}

	return year*10 + term
}

// sortedSemesterLabels returns the semester labels of a grouping in
// chronological order. Ties on the parsed key fall back to label order so the
// result stays deterministic.
func sortedSemesterLabels[T any](semesters map[string][]T) []string {
	labels := make([]string, 0, len(semesters))
	for label := range semesters {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ki, kj := ParseSemesterKey(labels[i]), ParseSemesterKey(labels[j])
		if ki != kj {
			return ki < kj
		}
		return labels[i] < labels[j]
	})
	return labels
}
