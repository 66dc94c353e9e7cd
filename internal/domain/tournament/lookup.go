package tournament

// TeamRef is a team together with its group context and current standing,
// as returned by the lookup index.
type TeamRef struct {
	Team      Team
	GroupID   string
	GroupName string
	Standing  *GroupStanding
}

// Index resolves teams by name or by player name in constant time. It is
// built once per assembled Tournament; when the same name appears on more
// than one team, the first team in group order wins.
type Index struct {
	byTeamName   map[string]TeamRef
	byPlayerName map[string]TeamRef
}

func NewIndex(t Tournament) *Index {
	ix := &Index{
		byTeamName:   make(map[string]TeamRef),
		byPlayerName: make(map[string]TeamRef),
	}

	for gi := range t.Groups {
		group := &t.Groups[gi]
		for _, team := range group.Teams {
			ref := TeamRef{
				Team:      team,
				GroupID:   group.ID,
				GroupName: group.Name,
				Standing:  standingForTeam(group.Standings, team.ID),
			}
			if _, ok := ix.byTeamName[team.Name]; !ok {
				ix.byTeamName[team.Name] = ref
			}
			if _, ok := ix.byPlayerName[team.Defender]; !ok {
				ix.byPlayerName[team.Defender] = ref
			}
			if _, ok := ix.byPlayerName[team.Attacker]; !ok {
				ix.byPlayerName[team.Attacker] = ref
			}
		}
	}

	return ix
}

func (ix *Index) TeamByName(name string) (TeamRef, bool) {
	ref, ok := ix.byTeamName[name]
	return ref, ok
}

func (ix *Index) TeamByPlayerName(playerName string) (TeamRef, bool) {
	ref, ok := ix.byPlayerName[playerName]
	return ref, ok
}

func standingForTeam(standings []GroupStanding, teamID string) *GroupStanding {
	for i := range standings {
		if standings[i].TeamID == teamID {
			row := standings[i]
			return &row
		}
	}
	return nil
}
