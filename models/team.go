package models

// Team is owned by exactly one captain. At most one non-deleted team
// exists per captain id.
type Team struct {
	ID        string   `dynamodbav:"id" json:"id"`
	CaptainID string   `dynamodbav:"captainId" json:"captain_id"`
	TeamName  string   `dynamodbav:"teamName" json:"team_name"`
	Ground    string   `dynamodbav:"ground" json:"ground"`
	Members   []string `dynamodbav:"members,omitempty" json:"members,omitempty"`
	CreatedAt string   `dynamodbav:"createdAt" json:"created_at"`
}

// TeamsTable is the DynamoDB table name for teams
const TeamsTable = "Teams"
