package schema

import "strings"

// Team is one NBA franchise from the static registry. The ids are the
// provider's stable team identifiers and do not change between seasons.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Nickname     string `json:"nickname"`
	FullName     string `json:"full_name"`
}

// Teams lists the 30 current franchises.
var Teams = []Team{
	{1610612737, "ATL", "Atlanta", "Hawks", "Atlanta Hawks"},
	{1610612738, "BOS", "Boston", "Celtics", "Boston Celtics"},
	{1610612751, "BKN", "Brooklyn", "Nets", "Brooklyn Nets"},
	{1610612766, "CHA", "Charlotte", "Hornets", "Charlotte Hornets"},
	{1610612741, "CHI", "Chicago", "Bulls", "Chicago Bulls"},
	{1610612739, "CLE", "Cleveland", "Cavaliers", "Cleveland Cavaliers"},
	{1610612742, "DAL", "Dallas", "Mavericks", "Dallas Mavericks"},
	{1610612743, "DEN", "Denver", "Nuggets", "Denver Nuggets"},
	{1610612765, "DET", "Detroit", "Pistons", "Detroit Pistons"},
	{1610612744, "GSW", "Golden State", "Warriors", "Golden State Warriors"},
	{1610612745, "HOU", "Houston", "Rockets", "Houston Rockets"},
	{1610612754, "IND", "Indiana", "Pacers", "Indiana Pacers"},
	{1610612746, "LAC", "Los Angeles", "Clippers", "Los Angeles Clippers"},
	{1610612747, "LAL", "Los Angeles", "Lakers", "Los Angeles Lakers"},
	{1610612763, "MEM", "Memphis", "Grizzlies", "Memphis Grizzlies"},
	{1610612748, "MIA", "Miami", "Heat", "Miami Heat"},
	{1610612749, "MIL", "Milwaukee", "Bucks", "Milwaukee Bucks"},
	{1610612750, "MIN", "Minnesota", "Timberwolves", "Minnesota Timberwolves"},
	{1610612740, "NOP", "New Orleans", "Pelicans", "New Orleans Pelicans"},
	{1610612752, "NYK", "New York", "Knicks", "New York Knicks"},
	{1610612760, "OKC", "Oklahoma City", "Thunder", "Oklahoma City Thunder"},
	{1610612753, "ORL", "Orlando", "Magic", "Orlando Magic"},
	{1610612755, "PHI", "Philadelphia", "76ers", "Philadelphia 76ers"},
	{1610612756, "PHX", "Phoenix", "Suns", "Phoenix Suns"},
	{1610612757, "POR", "Portland", "Trail Blazers", "Portland Trail Blazers"},
	{1610612758, "SAC", "Sacramento", "Kings", "Sacramento Kings"},
	{1610612759, "SAS", "San Antonio", "Spurs", "San Antonio Spurs"},
	{1610612761, "TOR", "Toronto", "Raptors", "Toronto Raptors"},
	{1610612762, "UTA", "Utah", "Jazz", "Utah Jazz"},
	{1610612764, "WAS", "Washington", "Wizards", "Washington Wizards"},
}

// TeamByAbbreviation finds a franchise by its three-letter code,
// case-insensitive.
func TeamByAbbreviation(abbr string) (Team, bool) {
	for _, t := range Teams {
		if strings.EqualFold(t.Abbreviation, abbr) {
			return t, true
		}
	}
	return Team{}, false
}
