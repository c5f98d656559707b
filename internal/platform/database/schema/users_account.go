// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

// Package schema is the registry of table and column names used by the
// postgres stores. Centralizing the identifiers keeps hand-written SQL and
// squirrel-built SQL consistent with the migrations.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	CenturyID string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "passwordhash",
	FirstName: "firstname",
	LastName:  "lastname",
	CenturyID: "centuryid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.FirstName, t.LastName,
		t.CenturyID, t.CreatedAt, t.UpdatedAt,
	}
}
