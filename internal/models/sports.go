package models

// Team mirrors the remote sports API team object. Field names follow the
// upstream JSON; everything except the id may be empty.
type Team struct {
	ID              string `json:"idTeam"`
	Name            string `json:"strTeam"`
	ShortName       string `json:"strTeamShort,omitempty"`
	FormedYear      string `json:"intFormedYear,omitempty"`
	Sport           string `json:"strSport,omitempty"`
	League          string `json:"strLeague,omitempty"`
	LeagueID        string `json:"idLeague,omitempty"`
	Manager         string `json:"strManager,omitempty"`
	Stadium         string `json:"strStadium,omitempty"`
	StadiumLocation string `json:"strStadiumLocation,omitempty"`
	StadiumCapacity string `json:"intStadiumCapacity,omitempty"`
	Website         string `json:"strWebsite,omitempty"`
	Description     string `json:"strDescriptionEN,omitempty"`
	Badge           string `json:"strTeamBadge,omitempty"`
	Country         string `json:"strCountry,omitempty"`
}

// Event mirrors the remote sports API event object.
type Event struct {
	ID         string `json:"idEvent"`
	Name       string `json:"strEvent,omitempty"`
	Sport      string `json:"strSport,omitempty"`
	LeagueID   string `json:"idLeague,omitempty"`
	League     string `json:"strLeague,omitempty"`
	Season     string `json:"strSeason,omitempty"`
	HomeTeam   string `json:"strHomeTeam,omitempty"`
	AwayTeam   string `json:"strAwayTeam,omitempty"`
	HomeScore  string `json:"intHomeScore,omitempty"`
	AwayScore  string `json:"intAwayScore,omitempty"`
	HomeTeamID string `json:"idHomeTeam,omitempty"`
	AwayTeamID string `json:"idAwayTeam,omitempty"`
	Date       string `json:"dateEvent,omitempty"`
	Time       string `json:"strTime,omitempty"`
	Venue      string `json:"strVenue,omitempty"`
	Country    string `json:"strCountry,omitempty"`
	Status     string `json:"strStatus,omitempty"`
}

// Player mirrors the remote sports API player object.
type Player struct {
	ID          string `json:"idPlayer"`
	Name        string `json:"strPlayer"`
	Position    string `json:"strPosition,omitempty"`
	BornDate    string `json:"dateBorn,omitempty"`
	Nationality string `json:"strNationality,omitempty"`
	Height      string `json:"strHeight,omitempty"`
	Weight      string `json:"strWeight,omitempty"`
	Description string `json:"strDescriptionEN,omitempty"`
	Thumb       string `json:"strThumb,omitempty"`
}
