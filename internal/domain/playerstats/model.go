package playerstats

// Role of a player inside a two-player team.
type Role string

const (
	RoleAttacker Role = "attacker"
	RoleDefender Role = "defender"
)

// StatRow is the accumulated per-player line. Every roster player gets a
// row, zeroed, before any match is counted.
type StatRow struct {
	PlayerName       string
	TeamID           string
	TeamName         string
	TeamEmoji        string
	Role             Role
	GoalAttacker     int
	GoalDefender     int
	AutogoalAttacker int
	AutogoalDefender int
	AutogoalsTotal   int
	Flash            int
}

// Goals returns the counter matching the player's role.
func (r StatRow) Goals() int {
	if r.Role == RoleAttacker {
		return r.GoalAttacker
	}
	return r.GoalDefender
}

// Winner is an award holder. IsTie means another player reached the same
// value and the name shown is only the first in roster order.
type Winner struct {
	Name  string
	Value int
	IsTie bool
}

// Awards are the four end-of-season trophies. A nil entry means nobody
// scored in that category yet.
type Awards struct {
	Capocannoniere   *Winner
	IlMuro           *Winner
	BoomerangOro     *Winner
	MigliorFotografo *Winner
}

// Category selects a leaderboard.
type Category string

const (
	CategoryCapocannoniere Category = "capocannoniere"
	CategoryMuro           Category = "muro"
	CategoryBoomerang      Category = "boomerang"
	CategoryFotografo      Category = "fotografo"
)

// ParseCategory validates a raw query value.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryCapocannoniere, CategoryMuro, CategoryBoomerang, CategoryFotografo:
		return Category(s), true
	}
	return "", false
}
