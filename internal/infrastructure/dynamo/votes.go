package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nownpp/wonder-science-hub/internal/domain"
)

// VoteRepo provides typed DynamoDB operations for the notification_votes table.
// PK: notification_id, SK: user_id — one vote per user per announcement.
type VoteRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVoteRepo(client *dynamodb.Client, tableName string) *VoteRepo {
	return &VoteRepo{client: client, tableName: tableName}
}

// Put records a vote, overwriting the user's previous vote on the same row.
func (r *VoteRepo) Put(ctx context.Context, v *domain.NotificationVote) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal vote: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *VoteRepo) ListByNotification(ctx context.Context, notificationID string) ([]domain.NotificationVote, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("notification_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: notificationID},
		},
	})
	if err != nil {
		return nil, err
	}
	var votes []domain.NotificationVote
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}
