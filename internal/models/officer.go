// Package models holds the data shapes shared by the repositories, the
// astronaut client and the services.
package models

// Officer is a persisted record with a rank and a name. ID is assigned by the
// store on insert and never changes afterwards.
type Officer struct {
	ID        int64  `db:"id"`
	Rank      Rank   `db:"rank"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

// NewOfficer builds an unsaved officer (ID is zero until the store assigns one).
func NewOfficer(rank Rank, firstName, lastName string) Officer {
	return Officer{Rank: rank, FirstName: firstName, LastName: lastName}
}
