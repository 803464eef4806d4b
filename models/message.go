package models

// ChatMessage belongs to exactly one match. Append-only; the sender name is
// denormalized at send time so deleting a user never blanks old chats.
type ChatMessage struct {
	ID         string `dynamodbav:"id" json:"id"`
	MatchID    string `dynamodbav:"matchId" json:"match_id"`
	SenderID   string `dynamodbav:"senderId" json:"sender_id"`
	SenderName string `dynamodbav:"senderName" json:"sender_name"`
	Message    string `dynamodbav:"message" json:"message"`
	Timestamp  string `dynamodbav:"timestamp" json:"timestamp"`
}

// ChatMessagesTable is the DynamoDB table name for chat messages
const ChatMessagesTable = "ChatMessages"
