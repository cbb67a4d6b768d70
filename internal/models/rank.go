package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/officerdemo/internal/common"
)

// Rank is a military rank. It is stored by name.
type Rank string

const (
	RankEnsign     Rank = "ENSIGN"
	RankLieutenant Rank = "LIEUTENANT"
	RankCommander  Rank = "COMMANDER"
	RankCaptain    Rank = "CAPTAIN"
	RankCommodore  Rank = "COMMODORE"
	RankAdmiral    Rank = "ADMIRAL"
)

// Ranks lists every rank in ascending seniority.
var Ranks = []Rank{
	RankEnsign,
	RankLieutenant,
	RankCommander,
	RankCaptain,
	RankCommodore,
	RankAdmiral,
}

// Valid reports whether r is one of the known ranks.
func (r Rank) Valid() bool {
	for _, known := range Ranks {
		if r == known {
			return true
		}
	}
	return false
}

func (r Rank) String() string {
	return string(r)
}

// Value stores the rank by name.
func (r Rank) Value() (driver.Value, error) {
	return string(r), nil
}

// ParseRank converts a case-insensitive rank name into a Rank.
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidRank, s)
	}
	return r, nil
}
