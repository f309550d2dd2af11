// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"strconv"
	"strings"
)

// YearSpan is an inclusive range of years. A single year has Start == End.
type YearSpan struct {
	Start int
	End   int
}

/*
ParseYear parses "2010" or "2008-2013".

A value containing '-' must split into exactly two integers; each side is
trimmed before parsing. A reversed range such as "2020-2012" is kept as
written and contains no year. Anything else reports ok == false so callers
can treat the value as non-matching instead of failing.
*/
func ParseYear(raw string) (span YearSpan, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return YearSpan{}, false
	}

	if !strings.Contains(raw, "-") {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return YearSpan{}, false
		}
		return YearSpan{Start: year, End: year}, true
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return YearSpan{}, false
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return YearSpan{}, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return YearSpan{}, false
	}
	return YearSpan{Start: start, End: end}, true
}

// Overlaps reports whether the two spans share at least one year.
//
// With single years stored as one-year spans this covers every case the
// listing filter needs: equality, containment either way, and range overlap.
func (s YearSpan) Overlaps(other YearSpan) bool {
	return !(s.Start > other.End || s.End < other.Start)
}

// startYear is the sort key for a year string: its first component, or 0
// when that does not parse.
func startYear(raw string) int {
	first, _, _ := strings.Cut(raw, "-")
	year, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0
	}
	return year
}
