package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nownpp/wonder-science-hub/internal/domain"
)

// VideoRepo provides typed DynamoDB operations for the videos table.
type VideoRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVideoRepo(client *dynamodb.Client, tableName string) *VideoRepo {
	return &VideoRepo{client: client, tableName: tableName}
}

func (r *VideoRepo) Put(ctx context.Context, v *domain.Video) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal video: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *VideoRepo) Get(ctx context.Context, videoID string) (*domain.Video, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("video_id", videoID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("video not found: %w", domain.ErrNotFound)
	}
	var v domain.Video
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// List scans the table, optionally filtering by category and/or grade.
// The catalog is small (a few hundred rows) so a filtered scan is fine here.
func (r *VideoRepo) List(ctx context.Context, category, grade string) ([]domain.Video, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applyCatalogFilter(input, category, grade)
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	var videos []domain.Video
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepo) Update(ctx context.Context, videoID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("video_id", videoID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ConditionExpression:       aws.String("attribute_exists(video_id)"),
	})
	return translateConditionErr(err)
}

// IncrementViews bumps views_count by one with a single ADD update.
func (r *VideoRepo) IncrementViews(ctx context.Context, videoID string) error {
	return addCounter(ctx, r.client, r.tableName, strKey("video_id", videoID), "views_count")
}

func (r *VideoRepo) Delete(ctx context.Context, videoID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("video_id", videoID),
	})
	return err
}

// applyCatalogFilter adds category/grade filter expressions shared by the
// catalog tables.
func applyCatalogFilter(input *dynamodb.ScanInput, category, grade string) {
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	expr := ""
	if category != "" {
		expr = "category = :cat"
		values[":cat"] = &types.AttributeValueMemberS{Value: category}
	}
	if grade != "" {
		if expr != "" {
			expr += " AND "
		}
		expr += "#g = :grade"
		names["#g"] = "grade"
		values[":grade"] = &types.AttributeValueMemberS{Value: grade}
	}
	if expr == "" {
		return
	}
	input.FilterExpression = aws.String(expr)
	input.ExpressionAttributeValues = values
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
}

// addCounter performs an atomic ADD of 1 on a numeric attribute, requiring the
// row to exist so bumps can't resurrect deleted content.
func addCounter(ctx context.Context, client *dynamodb.Client, tableName string, key map[string]types.AttributeValue, attr string) error {
	_, err := client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(tableName),
		Key:                      key,
		UpdateExpression:         aws.String("ADD #c :one"),
		ExpressionAttributeNames: map[string]string{"#c": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(%s)", keyName(key))),
	})
	return translateConditionErr(err)
}

func keyName(key map[string]types.AttributeValue) string {
	for k := range key {
		return k
	}
	return ""
}
