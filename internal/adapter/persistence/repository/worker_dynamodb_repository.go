package repository

import (
	"context"
	"errors"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultWorkersTableName = "workers"
	workersUserIDIndex      = "user_id-index"
)

type workerItem struct {
	ID         string                       `dynamodbav:"id"`
	Name       string                       `dynamodbav:"name"`
	DNI        string                       `dynamodbav:"dni,omitempty"`
	Phone      string                       `dynamodbav:"phone,omitempty"`
	Email      string                       `dynamodbav:"email,omitempty"`
	HourlyRate string                       `dynamodbav:"hourly_rate"`
	UnitRates  map[string]string            `dynamodbav:"unit_rates,omitempty"`
	CrossRates map[string]map[string]string `dynamodbav:"cross_rates,omitempty"`
	UserID     string                       `dynamodbav:"user_id"`
	CreatedAt  string                       `dynamodbav:"created_at"`
	UpdatedAt  string                       `dynamodbav:"updated_at"`
}

// WorkerDynamoRepository persists Worker entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type WorkerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkerRepository = (*WorkerDynamoRepository)(nil)

func NewWorkerDynamoRepository(ddb *dynamodb.Client) *WorkerDynamoRepository {
	return &WorkerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKERS_TABLE", defaultWorkersTableName),
	}
}

func (r *WorkerDynamoRepository) Create(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	av, err := attributevalue.MarshalMap(toWorkerItem(w))
	if err != nil {
		return entities.Worker{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Worker, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Worker{}, err
	}
	if len(out.Item) == 0 {
		return entities.Worker{}, nil
	}

	var it workerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Worker{}, err
	}
	return fromWorkerItem(it), nil
}

func (r *WorkerDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Worker, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Worker, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkerItem(it))
	}
	return items, nil
}

func (r *WorkerDynamoRepository) Update(ctx context.Context, w entities.Worker) (entities.Worker, error) {
	av, err := attributevalue.MarshalMap(toWorkerItem(w))
	if err != nil {
		return entities.Worker{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Worker{}, nil
		}
		return entities.Worker{}, err
	}
	return w, nil
}

func (r *WorkerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWorkerItem(w entities.Worker) workerItem {
	var unitRates map[string]string
	if len(w.UnitRates) > 0 {
		unitRates = make(map[string]string, len(w.UnitRates))
		for unitID, rate := range w.UnitRates {
			unitRates[unitID] = decToString(rate)
		}
	}
	var crossRates map[string]map[string]string
	if len(w.CrossRates) > 0 {
		crossRates = make(map[string]map[string]string, len(w.CrossRates))
		for unitID, byType := range w.CrossRates {
			inner := make(map[string]string, len(byType))
			for serviceType, rate := range byType {
				inner[string(serviceType)] = decToString(rate)
			}
			crossRates[unitID] = inner
		}
	}
	return workerItem{
		ID:         w.ID,
		Name:       w.Name,
		DNI:        w.DNI,
		Phone:      w.Phone,
		Email:      w.Email,
		HourlyRate: decToString(w.HourlyRate),
		UnitRates:  unitRates,
		CrossRates: crossRates,
		UserID:     w.UserID,
		CreatedAt:  timeToString(w.CreatedAt),
		UpdatedAt:  timeToString(w.UpdatedAt),
	}
}

func fromWorkerItem(it workerItem) entities.Worker {
	var unitRates map[string]decimal.Decimal
	if len(it.UnitRates) > 0 {
		unitRates = make(map[string]decimal.Decimal, len(it.UnitRates))
		for unitID, rate := range it.UnitRates {
			unitRates[unitID] = decFromString(rate)
		}
	}
	var crossRates map[string]map[entities.ServiceType]decimal.Decimal
	if len(it.CrossRates) > 0 {
		crossRates = make(map[string]map[entities.ServiceType]decimal.Decimal, len(it.CrossRates))
		for unitID, byType := range it.CrossRates {
			inner := make(map[entities.ServiceType]decimal.Decimal, len(byType))
			for serviceType, rate := range byType {
				inner[entities.ServiceType(serviceType)] = decFromString(rate)
			}
			crossRates[unitID] = inner
		}
	}
	return entities.Worker{
		ID:         it.ID,
		Name:       it.Name,
		DNI:        it.DNI,
		Phone:      it.Phone,
		Email:      it.Email,
		HourlyRate: decFromString(it.HourlyRate),
		UnitRates:  unitRates,
		CrossRates: crossRates,
		UserID:     it.UserID,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}
