package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/nownpp/wonder-science-hub/internal/domain"
)

// StudyFileRepo provides typed DynamoDB operations for the files table.
type StudyFileRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewStudyFileRepo(client *dynamodb.Client, tableName string) *StudyFileRepo {
	return &StudyFileRepo{client: client, tableName: tableName}
}

func (r *StudyFileRepo) Put(ctx context.Context, f *domain.StudyFile) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal study file: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *StudyFileRepo) Get(ctx context.Context, fileID string) (*domain.StudyFile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("file_id", fileID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("study file not found: %w", domain.ErrNotFound)
	}
	var f domain.StudyFile
	if err := attributevalue.UnmarshalMap(out.Item, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *StudyFileRepo) List(ctx context.Context, category, grade string) ([]domain.StudyFile, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applyCatalogFilter(input, category, grade)
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	var files []domain.StudyFile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *StudyFileRepo) Update(ctx context.Context, fileID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("file_id", fileID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ConditionExpression:       aws.String("attribute_exists(file_id)"),
	})
	return translateConditionErr(err)
}

func (r *StudyFileRepo) IncrementDownloads(ctx context.Context, fileID string) error {
	return addCounter(ctx, r.client, r.tableName, strKey("file_id", fileID), "downloads_count")
}

func (r *StudyFileRepo) Delete(ctx context.Context, fileID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("file_id", fileID),
	})
	return err
}
