package repository

import (
	"context"
	"strconv"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUserConfigTableName = "user_config"

type userConfigItem struct {
	UserID                string `dynamodbav:"user_id"`
	ID                    string `dynamodbav:"id"`
	LastTouchUpNumber     string `dynamodbav:"last_touch_up_number"`
	LastLandscapingNumber string `dynamodbav:"last_landscaping_number"`
	LastTercerosNumber    string `dynamodbav:"last_terceros_number"`
	LastInvoiceNumber     string `dynamodbav:"last_invoice_number"`
	Currency              string `dynamodbav:"currency"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// UserConfigDynamoRepository persists the per-user UserConfig singleton in
// DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// user_id as PK guarantees exactly one config row per user, and Save is a
// plain upsert with no condition.

type UserConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserConfigRepository = (*UserConfigDynamoRepository)(nil)

func NewUserConfigDynamoRepository(ddb *dynamodb.Client) *UserConfigDynamoRepository {
	return &UserConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_CONFIG_TABLE", defaultUserConfigTableName),
	}
}

func (r *UserConfigDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.UserConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserConfig{}, nil
	}

	var it userConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserConfig{}, err
	}
	return fromUserConfigItem(it), nil
}

func (r *UserConfigDynamoRepository) Save(ctx context.Context, c entities.UserConfig) (entities.UserConfig, error) {
	av, err := attributevalue.MarshalMap(toUserConfigItem(c))
	if err != nil {
		return entities.UserConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserConfig{}, err
	}
	return c, nil
}

func toUserConfigItem(c entities.UserConfig) userConfigItem {
	return userConfigItem{
		UserID:                c.UserID,
		ID:                    c.ID,
		LastTouchUpNumber:     strconv.Itoa(c.LastTouchUpNumber),
		LastLandscapingNumber: strconv.Itoa(c.LastLandscapingNumber),
		LastTercerosNumber:    strconv.Itoa(c.LastTercerosNumber),
		LastInvoiceNumber:     strconv.Itoa(c.LastInvoiceNumber),
		Currency:              c.Currency,
		CreatedAt:             timeToString(c.CreatedAt),
		UpdatedAt:             timeToString(c.UpdatedAt),
	}
}

func fromUserConfigItem(it userConfigItem) entities.UserConfig {
	touchUp, _ := strconv.Atoi(it.LastTouchUpNumber)
	landscaping, _ := strconv.Atoi(it.LastLandscapingNumber)
	terceros, _ := strconv.Atoi(it.LastTercerosNumber)
	invoice, _ := strconv.Atoi(it.LastInvoiceNumber)
	return entities.UserConfig{
		UserID:                it.UserID,
		ID:                    it.ID,
		LastTouchUpNumber:     touchUp,
		LastLandscapingNumber: landscaping,
		LastTercerosNumber:    terceros,
		LastInvoiceNumber:     invoice,
		Currency:              it.Currency,
		CreatedAt:             timeFromString(it.CreatedAt),
		UpdatedAt:             timeFromString(it.UpdatedAt),
	}
}
