package repository

import (
	"context"
	"sort"

	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFabricationRequestsTableName = "fabrication_requests"
	fabricationRequestsTakeoffIDIndex   = "takeoff_id-index"
)

type fabricationRequestItem struct {
	ID                     string `dynamodbav:"id"`
	TakeoffID              string `dynamodbav:"takeoff_id"`
	Destination            string `dynamodbav:"destination"`
	RevisionNumber         int    `dynamodbav:"revision_number"`
	ManufacturingStarted   bool   `dynamodbav:"manufacturing_started"`
	ManufacturingStartedAt string `dynamodbav:"manufacturing_started_at,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
}

// FabricationRequestDynamoRepository persists the build/sign shop requests
// created by submissions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: takeoff_id-index (PK: takeoff_id)

type FabricationRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFabricationRequestRepository = (*FabricationRequestDynamoRepository)(nil)

func NewFabricationRequestDynamoRepository(ddb DynamoAPI, tableName string) *FabricationRequestDynamoRepository {
	return &FabricationRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFabricationRequestsTableName),
	}
}

func (r *FabricationRequestDynamoRepository) Create(ctx context.Context, req entities.FabricationRequest) (entities.FabricationRequest, error) {
	av, err := attributevalue.MarshalMap(toFabricationRequestItem(req))
	if err != nil {
		return entities.FabricationRequest{}, err
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
		return entities.FabricationRequest{}, err
	}
	return req, nil
}

func (r *FabricationRequestDynamoRepository) ListByTakeoffID(ctx context.Context, takeoffID string) ([]entities.FabricationRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(fabricationRequestsTakeoffIDIndex),
		KeyConditionExpression: aws.String("takeoff_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: takeoffID},
		},
	})
	if err != nil {
		return nil, err
	}

	reqs := make([]entities.FabricationRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it fabricationRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		reqs = append(reqs, fromFabricationRequestItem(it))
	}
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].CreatedAt.Before(reqs[j].CreatedAt) })
	return reqs, nil
}

// MarkManufacturingStarted flags the request. Marking twice keeps the first
// start time. A missing request yields the zero value.
func (r *FabricationRequestDynamoRepository) MarkManufacturingStarted(ctx context.Context, id string) (entities.FabricationRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #started = :started, #started_at = if_not_exists(#started_at, :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":started": &types.AttributeValueMemberBOOL{Value: true},
			":now":     &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#started":    "manufacturing_started",
			"#started_at": "manufacturing_started_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FabricationRequest{}, nil
		}
		return entities.FabricationRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FabricationRequest{}, nil
	}
	var it fabricationRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FabricationRequest{}, err
	}
	return fromFabricationRequestItem(it), nil
}

func toFabricationRequestItem(req entities.FabricationRequest) fabricationRequestItem {
	it := fabricationRequestItem{
		ID:                   req.ID,
		TakeoffID:            req.TakeoffID,
		Destination:          string(req.Destination),
		RevisionNumber:       req.RevisionNumber,
		ManufacturingStarted: req.ManufacturingStarted,
		CreatedAt:            formatTime(req.CreatedAt),
	}
	if req.ManufacturingStartedAt != nil {
		it.ManufacturingStartedAt = formatTime(*req.ManufacturingStartedAt)
	}
	return it
}

func fromFabricationRequestItem(it fabricationRequestItem) entities.FabricationRequest {
	req := entities.FabricationRequest{
		ID:                   it.ID,
		TakeoffID:            it.TakeoffID,
		Destination:          entities.Destination(it.Destination),
		RevisionNumber:       it.RevisionNumber,
		ManufacturingStarted: it.ManufacturingStarted,
		CreatedAt:            parseTime(it.CreatedAt),
	}
	if it.ManufacturingStartedAt != "" {
		startedAt := parseTime(it.ManufacturingStartedAt)
		req.ManufacturingStartedAt = &startedAt
	}
	return req
}
