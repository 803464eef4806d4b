package storage

import (
	"context"
	"fmt"
	"log"
	"sort"

	"cricket_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore is the remote document-store implementation of Store. Every
// table uses "id" as the partition key; lookups that are not by id fall back
// to filtered scans, which is acceptable at this scale and keeps the two
// backends behaviorally identical.
type DynamoStore struct {
	client *dynamodb.Client
	prefix string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// NewDynamoStore wraps a DynamoDB client. prefix is prepended to every
// table name so multiple deployments can share one account.
func NewDynamoStore(client *dynamodb.Client, prefix string) *DynamoStore {
	return &DynamoStore{client: client, prefix: prefix}
}

func (s *DynamoStore) table(name string) string {
	return s.prefix + name
}

func (s *DynamoStore) putItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item for table '%s': %w", tableName, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// getItem unmarshals the record with the given id into out. Returns false
// when the record does not exist.
func (s *DynamoStore) getItem(ctx context.Context, tableName, id string, out interface{}) (bool, error) {
	output, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return false, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	if output.Item == nil {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(output.Item, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal item from table '%s': %w", tableName, err)
	}
	return true, nil
}

func (s *DynamoStore) deleteItem(ctx context.Context, tableName, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", tableName, err)
	}
	return nil
}

// scan reads the whole table into out, optionally applying a filter
// expression.
func (s *DynamoStore) scan(ctx context.Context, tableName, filterExpression string, values map[string]types.AttributeValue, out interface{}) error {
	input := &dynamodb.ScanInput{TableName: aws.String(tableName)}
	if filterExpression != "" {
		input.FilterExpression = aws.String(filterExpression)
		input.ExpressionAttributeValues = values
	}
	output, err := s.client.Scan(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(output.Items, out); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	return nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Users

func (s *DynamoStore) CreateUser(ctx context.Context, user models.User) error {
	return s.putItem(ctx, s.table(models.UsersTable), user)
}

func (s *DynamoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	found, err := s.getItem(ctx, s.table(models.UsersTable), id, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (s *DynamoStore) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var users []models.User
	err := s.scan(ctx, s.table(models.UsersTable), "phone = :phone", map[string]types.AttributeValue{
		":phone": &types.AttributeValueMemberS{Value: phone},
	}, &users)
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0], nil
}

func (s *DynamoStore) DeleteUser(ctx context.Context, id string) error {
	return s.deleteItem(ctx, s.table(models.UsersTable), id)
}

// Teams

func (s *DynamoStore) CreateTeam(ctx context.Context, team models.Team) error {
	return s.putItem(ctx, s.table(models.TeamsTable), team)
}

func (s *DynamoStore) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	found, err := s.getItem(ctx, s.table(models.TeamsTable), id, &team)
	if err != nil || !found {
		return nil, err
	}
	return &team, nil
}

func (s *DynamoStore) GetTeamByCaptain(ctx context.Context, captainID string) (*models.Team, error) {
	var teams []models.Team
	err := s.scan(ctx, s.table(models.TeamsTable), "captainId = :captainId", map[string]types.AttributeValue{
		":captainId": &types.AttributeValueMemberS{Value: captainID},
	}, &teams)
	if err != nil || len(teams) == 0 {
		return nil, err
	}
	return &teams[0], nil
}

// Availability posts

func (s *DynamoStore) CreateAvailabilityPost(ctx context.Context, post models.AvailabilityPost) error {
	return s.putItem(ctx, s.table(models.AvailabilityPostsTable), post)
}

func (s *DynamoStore) GetAvailabilityPost(ctx context.Context, id string) (*models.AvailabilityPost, error) {
	var post models.AvailabilityPost
	found, err := s.getItem(ctx, s.table(models.AvailabilityPostsTable), id, &post)
	if err != nil || !found {
		return nil, err
	}
	return &post, nil
}

func (s *DynamoStore) ListAvailabilityPosts(ctx context.Context) ([]models.AvailabilityPost, error) {
	var posts []models.AvailabilityPost
	if err := s.scan(ctx, s.table(models.AvailabilityPostsTable), "", nil, &posts); err != nil {
		return nil, err
	}
	// Scan order is arbitrary; creation order is the store iteration order
	// the matching engine and the dedup sweep rely on.
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt != posts[j].CreatedAt {
			return posts[i].CreatedAt < posts[j].CreatedAt
		}
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

func (s *DynamoStore) UpdateAvailabilityPost(ctx context.Context, post models.AvailabilityPost) error {
	return s.putItem(ctx, s.table(models.AvailabilityPostsTable), post)
}

func (s *DynamoStore) DeleteAvailabilityPost(ctx context.Context, id string) error {
	return s.deleteItem(ctx, s.table(models.AvailabilityPostsTable), id)
}

// Matches

func (s *DynamoStore) CreateMatch(ctx context.Context, match models.Match) error {
	return s.putItem(ctx, s.table(models.MatchesTable), match)
}

func (s *DynamoStore) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	found, err := s.getItem(ctx, s.table(models.MatchesTable), id, &match)
	if err != nil || !found {
		return nil, err
	}
	return &match, nil
}

func (s *DynamoStore) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := s.scan(ctx, s.table(models.MatchesTable), "", nil, &matches); err != nil {
		return nil, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].CreatedAt != matches[j].CreatedAt {
			return matches[i].CreatedAt < matches[j].CreatedAt
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func (s *DynamoStore) UpdateMatch(ctx context.Context, match models.Match) error {
	return s.putItem(ctx, s.table(models.MatchesTable), match)
}

// Chat messages

func (s *DynamoStore) CreateChatMessage(ctx context.Context, message models.ChatMessage) error {
	return s.putItem(ctx, s.table(models.ChatMessagesTable), message)
}

func (s *DynamoStore) ListChatMessagesByMatch(ctx context.Context, matchID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.scan(ctx, s.table(models.ChatMessagesTable), "matchId = :matchId", map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}, &messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
