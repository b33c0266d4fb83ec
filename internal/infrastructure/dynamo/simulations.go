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

// SimulationRepo provides typed DynamoDB operations for the simulations table.
type SimulationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSimulationRepo(client *dynamodb.Client, tableName string) *SimulationRepo {
	return &SimulationRepo{client: client, tableName: tableName}
}

func (r *SimulationRepo) Put(ctx context.Context, s *domain.Simulation) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal simulation: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SimulationRepo) Get(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("simulation_id", simulationID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("simulation not found: %w", domain.ErrNotFound)
	}
	var s domain.Simulation
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SimulationRepo) List(ctx context.Context, category, grade string) ([]domain.Simulation, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applyCatalogFilter(input, category, grade)
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	var sims []domain.Simulation
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &sims); err != nil {
		return nil, err
	}
	return sims, nil
}

func (r *SimulationRepo) Update(ctx context.Context, simulationID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("simulation_id", simulationID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ConditionExpression:       aws.String("attribute_exists(simulation_id)"),
	})
	return translateConditionErr(err)
}

func (r *SimulationRepo) IncrementPlays(ctx context.Context, simulationID string) error {
	return addCounter(ctx, r.client, r.tableName, strKey("simulation_id", simulationID), "plays_count")
}

func (r *SimulationRepo) Delete(ctx context.Context, simulationID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("simulation_id", simulationID),
	})
	return err
}
