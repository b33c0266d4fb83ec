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

// ProgressRepo provides typed DynamoDB operations for the student_progress table.
// PK: user_id, SK: content_key.
type ProgressRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProgressRepo(client *dynamodb.Client, tableName string) *ProgressRepo {
	return &ProgressRepo{client: client, tableName: tableName}
}

func (r *ProgressRepo) Put(ctx context.Context, p *domain.StudentProgress) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProgressRepo) Get(ctx context.Context, userID, contentKey string) (*domain.StudentProgress, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("user_id", userID, "content_key", contentKey),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("progress not found: %w", domain.ErrNotFound)
	}
	var p domain.StudentProgress
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID string) ([]domain.StudentProgress, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	var records []domain.StudentProgress
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}
	return records, nil
}
