package models

// Match pairs two availability posts' teams. Status moves from proposed to
// confirmed (both captains agree) or cancelled (either declines); both are
// terminal.
type Match struct {
	ID                string `dynamodbav:"id" json:"id"`
	Team1ID           string `dynamodbav:"team1Id" json:"team1_id"`
	Team2ID           string `dynamodbav:"team2Id" json:"team2_id"`
	Captain1ID        string `dynamodbav:"captain1Id" json:"captain1_id"`
	Captain2ID        string `dynamodbav:"captain2Id" json:"captain2_id"`
	Day               string `dynamodbav:"day" json:"day"`
	Date              string `dynamodbav:"date,omitempty" json:"date,omitempty"`
	BetAmount         string `dynamodbav:"betAmount" json:"bet_amount"`
	Ground            string `dynamodbav:"ground,omitempty" json:"ground,omitempty"`
	GroundType        string `dynamodbav:"groundType" json:"ground_type"`
	Status            string `dynamodbav:"status" json:"status"`
	Captain1Confirmed bool   `dynamodbav:"captain1Confirmed" json:"captain1_confirmed"`
	Captain2Confirmed bool   `dynamodbav:"captain2Confirmed" json:"captain2_confirmed"`
	CreatedAt         string `dynamodbav:"createdAt" json:"created_at"`
}

// HasCaptain reports whether the given captain is party to the match.
func (m Match) HasCaptain(captainID string) bool {
	return m.Captain1ID == captainID || m.Captain2ID == captainID
}

// Finalized reports whether the match reached a terminal status.
func (m Match) Finalized() bool {
	return m.Status == MatchStatusConfirmed || m.Status == MatchStatusCancelled
}

// OpponentContact is the counterpart captain's contact details shown to a
// match participant.
type OpponentContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// EnrichedMatch is a match decorated with team names and, for participant
// views, the opponent captain's contact.
type EnrichedMatch struct {
	Match
	Team1Name       string           `json:"team1_name,omitempty"`
	Team2Name       string           `json:"team2_name,omitempty"`
	Captain1Name    string           `json:"captain1_name,omitempty"`
	Captain2Name    string           `json:"captain2_name,omitempty"`
	OpponentContact *OpponentContact `json:"opponent_contact,omitempty"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
