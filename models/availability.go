package models

// AvailabilityPost is one captain's open invitation for a match.
type AvailabilityPost struct {
	ID         string `dynamodbav:"id" json:"id"`
	TeamID     string `dynamodbav:"teamId" json:"team_id"`
	CaptainID  string `dynamodbav:"captainId" json:"captain_id"`
	Day        string `dynamodbav:"day" json:"day"`
	Date       string `dynamodbav:"date,omitempty" json:"date,omitempty"`
	BetAmount  string `dynamodbav:"betAmount" json:"bet_amount"`
	TimeSlot   string `dynamodbav:"timeSlot,omitempty" json:"time_slot,omitempty"`
	Ground     string `dynamodbav:"ground" json:"ground"`
	GroundType string `dynamodbav:"groundType" json:"ground_type"`
	Status     string `dynamodbav:"status" json:"status"`
	CreatedAt  string `dynamodbav:"createdAt" json:"created_at"`
}

// DedupKey identifies the tuple that must be unique among a team's open
// posts. The sweeper also uses it (plus status) to drop duplicates.
func (p AvailabilityPost) DedupKey() string {
	return p.TeamID + "|" + p.Day + "|" + p.BetAmount + "|" + p.Ground + "|" + p.GroundType
}

// EnrichedPost is an availability post decorated with team and captain
// details for the open-requests listing.
type EnrichedPost struct {
	AvailabilityPost
	TeamName     string `json:"team_name,omitempty"`
	CaptainName  string `json:"captain_name,omitempty"`
	CaptainPhone string `json:"captain_phone,omitempty"`
}

// AvailabilityPostsTable is the DynamoDB table name for availability posts
const AvailabilityPostsTable = "AvailabilityPosts"
