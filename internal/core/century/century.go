// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package century maps named historical centuries to inclusive year ranges.

A century is both a user preference ("19th Century") and the filter key for
artwork discovery. The range table is fixed at process start; the database
table core.century mirrors it only so that signup forms can enumerate
choices and user rows can reference a century by id.
*/
package century

// Century is a selectable historical period.
type Century struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// Range is an inclusive year interval.
type Range struct {
	Start int
	End   int
}

// Contains reports whether year falls inside the range, inclusive both ends.
func (r Range) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// configured is the ordered set of centuries the application knows.
// Order matters only for stable presentation.
var configured = []Century{
	{Name: "18th Century", StartYear: 1700, EndYear: 1799},
	{Name: "19th Century", StartYear: 1800, EndYear: 1899},
	{Name: "20th Century", StartYear: 1900, EndYear: 1999},
}

// RangeFor resolves a century name to its year range.
//
// The second return value is false for unknown names. Callers must treat
// that as "no filtering possible" — never as a match-everything wildcard.
func RangeFor(name string) (Range, bool) {
	for _, c := range configured {
		if c.Name == name {
			return Range{Start: c.StartYear, End: c.EndYear}, true
		}
	}
	return Range{}, false
}

// Names returns the configured century names in presentation order.
func Names() []string {
	names := make([]string, 0, len(configured))
	for _, c := range configured {
		names = append(names, c.Name)
	}
	return names
}

// Alternatives returns the configured century names excluding the given one.
// Surprise mode samples uniformly from this set.
func Alternatives(exclude string) []string {
	names := make([]string, 0, len(configured))
	for _, c := range configured {
		if c.Name != exclude {
			names = append(names, c.Name)
		}
	}
	return names
}

const (
	FieldName = "name"
)
