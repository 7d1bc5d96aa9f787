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
	defaultUnitTypesTableName = "unit_types"
	unitTypesUserIDIndex      = "user_id-index"
)

type unitTypeItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UserID    string `dynamodbav:"user_id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UnitTypeDynamoRepository persists UnitType entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type UnitTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitTypeRepository = (*UnitTypeDynamoRepository)(nil)

func NewUnitTypeDynamoRepository(ddb *dynamodb.Client) *UnitTypeDynamoRepository {
	return &UnitTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNIT_TYPES_TABLE", defaultUnitTypesTableName),
	}
}

func (r *UnitTypeDynamoRepository) Create(ctx context.Context, t entities.UnitType) (entities.UnitType, error) {
	av, err := attributevalue.MarshalMap(toUnitTypeItem(t))
	if err != nil {
		return entities.UnitType{}, err
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
		return entities.UnitType{}, err
	}
	return t, nil
}

func (r *UnitTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.UnitType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UnitType{}, err
	}
	if len(out.Item) == 0 {
		return entities.UnitType{}, nil
	}

	var it unitTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UnitType{}, err
	}
	return fromUnitTypeItem(it), nil
}

func (r *UnitTypeDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.UnitType, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(unitTypesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.UnitType, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitTypeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUnitTypeItem(it))
	}
	return items, nil
}

func (r *UnitTypeDynamoRepository) Update(ctx context.Context, t entities.UnitType) (entities.UnitType, error) {
	av, err := attributevalue.MarshalMap(toUnitTypeItem(t))
	if err != nil {
		return entities.UnitType{}, err
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
			return entities.UnitType{}, nil
		}
		return entities.UnitType{}, err
	}
	return t, nil
}

func (r *UnitTypeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toUnitTypeItem(t entities.UnitType) unitTypeItem {
	return unitTypeItem{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: timeToString(t.CreatedAt),
		UpdatedAt: timeToString(t.UpdatedAt),
	}
}

func fromUnitTypeItem(it unitTypeItem) entities.UnitType {
	return entities.UnitType{
		ID:        it.ID,
		Name:      it.Name,
		UserID:    it.UserID,
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
