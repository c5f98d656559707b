// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package schema

// CenturyTable represents the 'core.century' table
type CenturyTable struct {
	Table     string
	ID        string
	Name      string
	StartYear string
	EndYear   string
}

// Century is the schema definition for core.century
var Century = CenturyTable{
	Table:     "core.century",
	ID:        "id",
	Name:      "name",
	StartYear: "startyear",
	EndYear:   "endyear",
}

func (t CenturyTable) Columns() []string {
	return []string{t.ID, t.Name, t.StartYear, t.EndYear}
}
