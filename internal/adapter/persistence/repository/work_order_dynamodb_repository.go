package repository

import (
	"context"
	"fmt"

	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultWorkOrdersTableName = "work_orders"

type workOrderItem struct {
	TakeoffID string `dynamodbav:"takeoff_id"`
	ID        string `dynamodbav:"id"`
	Number    string `dynamodbav:"number"`
	CreatedAt string `dynamodbav:"created_at"`
}

// WorkOrderDynamoRepository persists linked work orders.
//
// Table requirements:
//   - PK: takeoff_id (string)
//
// Keying by takeoff id guarantees one work order per takeoff.
type WorkOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) CreateIfAbsent(ctx context.Context, wo entities.LinkedWorkOrder) (entities.LinkedWorkOrder, bool, error) {
	av, err := attributevalue.MarshalMap(workOrderItem{
		TakeoffID: wo.TakeoffID,
		ID:        wo.ID,
		Number:    wo.Number,
		CreatedAt: formatTime(wo.CreatedAt),
	})
	if err != nil {
		return entities.LinkedWorkOrder{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#takeoff_id)"),
		ExpressionAttributeNames: map[string]string{
			"#takeoff_id": "takeoff_id",
		},
	})
	if err == nil {
		return wo, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.LinkedWorkOrder{}, false, err
	}

	existing, err := r.GetByTakeoffID(ctx, wo.TakeoffID)
	if err != nil {
		return entities.LinkedWorkOrder{}, false, err
	}
	if existing.ID == "" {
		return entities.LinkedWorkOrder{}, false, fmt.Errorf("work order for takeoff %s vanished after conflict", wo.TakeoffID)
	}
	return existing, false, nil
}

func (r *WorkOrderDynamoRepository) GetByTakeoffID(ctx context.Context, takeoffID string) (entities.LinkedWorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("takeoff_id", takeoffID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LinkedWorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.LinkedWorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LinkedWorkOrder{}, err
	}
	return entities.LinkedWorkOrder{
		TakeoffID: it.TakeoffID,
		ID:        it.ID,
		Number:    it.Number,
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}
