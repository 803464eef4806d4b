package models

// User is a registered captain. Immutable after signup except by deletion.
type User struct {
	ID           string `dynamodbav:"id" json:"id"`
	Name         string `dynamodbav:"name" json:"name"`
	Phone        string `dynamodbav:"phone" json:"phone"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	Role         string `dynamodbav:"role" json:"role"`
	CreatedAt    string `dynamodbav:"createdAt" json:"created_at"`
}

// UsersTable is the DynamoDB table name for users
const UsersTable = "Users"
