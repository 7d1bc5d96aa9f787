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
	defaultUnitsTableName = "units"
	unitsUserIDIndex      = "user_id-index"
)

type unitItem struct {
	ID         string `dynamodbav:"id"`
	UnitTypeID string `dynamodbav:"unit_type_id,omitempty"`
	ClientID   string `dynamodbav:"client_id,omitempty"`
	Name       string `dynamodbav:"name"`
	CodeName   string `dynamodbav:"code_name,omitempty"`
	Address    string `dynamodbav:"address,omitempty"`
	Price      string `dynamodbav:"price"`
	UserID     string `dynamodbav:"user_id"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// UnitDynamoRepository persists Unit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type UnitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitRepository = (*UnitDynamoRepository)(nil)

func NewUnitDynamoRepository(ddb *dynamodb.Client) *UnitDynamoRepository {
	return &UnitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNITS_TABLE", defaultUnitsTableName),
	}
}

func (r *UnitDynamoRepository) Create(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	av, err := attributevalue.MarshalMap(toUnitItem(u))
	if err != nil {
		return entities.Unit{}, err
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
		return entities.Unit{}, err
	}
	return u, nil
}

func (r *UnitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Unit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Unit{}, nil
	}

	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func (r *UnitDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Unit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(unitsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Unit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUnitItem(it))
	}
	return items, nil
}

func (r *UnitDynamoRepository) Update(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	av, err := attributevalue.MarshalMap(toUnitItem(u))
	if err != nil {
		return entities.Unit{}, err
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
			return entities.Unit{}, nil
		}
		return entities.Unit{}, err
	}
	return u, nil
}

func (r *UnitDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toUnitItem(u entities.Unit) unitItem {
	return unitItem{
		ID:         u.ID,
		UnitTypeID: u.UnitTypeID,
		ClientID:   u.ClientID,
		Name:       u.Name,
		CodeName:   u.CodeName,
		Address:    u.Address,
		Price:      decToString(u.Price),
		UserID:     u.UserID,
		CreatedAt:  timeToString(u.CreatedAt),
		UpdatedAt:  timeToString(u.UpdatedAt),
	}
}

func fromUnitItem(it unitItem) entities.Unit {
	return entities.Unit{
		ID:         it.ID,
		UnitTypeID: it.UnitTypeID,
		ClientID:   it.ClientID,
		Name:       it.Name,
		CodeName:   it.CodeName,
		Address:    it.Address,
		Price:      decFromString(it.Price),
		UserID:     it.UserID,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
	}
}
