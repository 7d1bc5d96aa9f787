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
)

const (
	defaultServicesTableName = "services"
	servicesUserIDIndex      = "user_id-index"
)

type serviceExtraItem struct {
	ID            string `dynamodbav:"id,omitempty"`
	Name          string `dynamodbav:"name"`
	Price         string `dynamodbav:"price"`
	WorkerPay     string `dynamodbav:"worker_pay"`
	DurationHours string `dynamodbav:"duration_hours,omitempty"`
}

type servicePaymentItem struct {
	ServiceID string `dynamodbav:"service_id"`
	WorkerID  string `dynamodbav:"worker_id"`
	Amount    string `dynamodbav:"amount"`
	IsPaid    bool   `dynamodbav:"is_paid"`
}

type serviceItem struct {
	ID                  string               `dynamodbav:"id"`
	UnitID              string               `dynamodbav:"unit_id"`
	WorkerIDs           []string             `dynamodbav:"worker_ids"`
	StartDate           string               `dynamodbav:"start_date"`
	ExecutionDate       string               `dynamodbav:"execution_date,omitempty"`
	StartTime           string               `dynamodbav:"start_time"`
	EndTime             string               `dynamodbav:"end_time"`
	PayByHour           bool                 `dynamodbav:"pay_by_hour"`
	Extras              []serviceExtraItem   `dynamodbav:"extras,omitempty"`
	TotalCost           string               `dynamodbav:"total_cost"`
	HistoricalUnitPrice string               `dynamodbav:"historical_unit_price"`
	WorkOrder           string               `dynamodbav:"work_order,omitempty"`
	ServiceType         string               `dynamodbav:"service_type"`
	HasPets             bool                 `dynamodbav:"has_pets"`
	WorkOrderPet        string               `dynamodbav:"work_order_pet,omitempty"`
	DeepCleaning        bool                 `dynamodbav:"deep_cleaning"`
	Payments            []servicePaymentItem `dynamodbav:"payments,omitempty"`
	UserID              string               `dynamodbav:"user_id"`
	CreatedAt           string               `dynamodbav:"created_at"`
	UpdatedAt           string               `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	extras := make([]serviceExtraItem, 0, len(s.Extras))
	for _, e := range s.Extras {
		extras = append(extras, serviceExtraItem{
			ID:            e.ID,
			Name:          e.Name,
			Price:         decToString(e.Price),
			WorkerPay:     decToString(e.WorkerPay),
			DurationHours: decToString(e.DurationHours),
		})
	}
	payments := make([]servicePaymentItem, 0, len(s.Payments))
	for _, p := range s.Payments {
		payments = append(payments, servicePaymentItem{
			ServiceID: p.ServiceID,
			WorkerID:  p.WorkerID,
			Amount:    decToString(p.Amount),
			IsPaid:    p.IsPaid,
		})
	}
	return serviceItem{
		ID:                  s.ID,
		UnitID:              s.UnitID,
		WorkerIDs:           s.WorkerIDs,
		StartDate:           s.StartDate,
		ExecutionDate:       s.ExecutionDate,
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		PayByHour:           s.PayByHour,
		Extras:              extras,
		TotalCost:           decToString(s.TotalCost),
		HistoricalUnitPrice: decToString(s.HistoricalUnitPrice),
		WorkOrder:           s.WorkOrder,
		ServiceType:         string(s.ServiceType),
		HasPets:             s.HasPets,
		WorkOrderPet:        s.WorkOrderPet,
		DeepCleaning:        s.DeepCleaning,
		Payments:            payments,
		UserID:              s.UserID,
		CreatedAt:           timeToString(s.CreatedAt),
		UpdatedAt:           timeToString(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	extras := make([]entities.Extra, 0, len(it.Extras))
	for _, e := range it.Extras {
		extras = append(extras, entities.Extra{
			ID:            e.ID,
			Name:          e.Name,
			Price:         decFromString(e.Price),
			WorkerPay:     decFromString(e.WorkerPay),
			DurationHours: decFromString(e.DurationHours),
		})
	}
	payments := make([]entities.PaymentService, 0, len(it.Payments))
	for _, p := range it.Payments {
		payments = append(payments, entities.PaymentService{
			ServiceID: p.ServiceID,
			WorkerID:  p.WorkerID,
			Amount:    decFromString(p.Amount),
			IsPaid:    p.IsPaid,
		})
	}
	return entities.Service{
		ID:                  it.ID,
		UnitID:              it.UnitID,
		WorkerIDs:           it.WorkerIDs,
		StartDate:           it.StartDate,
		ExecutionDate:       it.ExecutionDate,
		StartTime:           it.StartTime,
		EndTime:             it.EndTime,
		PayByHour:           it.PayByHour,
		Extras:              extras,
		TotalCost:           decFromString(it.TotalCost),
		HistoricalUnitPrice: decFromString(it.HistoricalUnitPrice),
		WorkOrder:           it.WorkOrder,
		ServiceType:         entities.ServiceType(it.ServiceType),
		HasPets:             it.HasPets,
		WorkOrderPet:        it.WorkOrderPet,
		DeepCleaning:        it.DeepCleaning,
		Payments:            payments,
		UserID:              it.UserID,
		CreatedAt:           timeFromString(it.CreatedAt),
		UpdatedAt:           timeFromString(it.UpdatedAt),
	}
}
