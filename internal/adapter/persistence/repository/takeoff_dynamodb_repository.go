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
	defaultTakeoffsTableName      = "takeoffs"
	defaultCancellationsTableName = "takeoff_cancellations"
	cancellationsTakeoffIDIndex   = "takeoff_id-index"
)

type takeoffItem struct {
	ID                     string `dynamodbav:"id"`
	JobID                  string `dynamodbav:"job_id,omitempty"`
	Title                  string `dynamodbav:"title"`
	WorkType               string `dynamodbav:"work_type"`
	Priority               string `dynamodbav:"priority"`
	WorkOrderNumber        string `dynamodbav:"work_order_number,omitempty"`
	ContractedOrAdditional string `dynamodbav:"contracted_or_additional"`
	InstallDate            string `dynamodbav:"install_date,omitempty"`
	PickupDate             string `dynamodbav:"pickup_date,omitempty"`
	NeededByDate           string `dynamodbav:"needed_by_date,omitempty"`
	FlaggingStart          string `dynamodbav:"flagging_start,omitempty"`
	FlaggingEnd            string `dynamodbav:"flagging_end,omitempty"`
	CrewNotes              string `dynamodbav:"crew_notes,omitempty"`
	ShopNotes              string `dynamodbav:"shop_notes,omitempty"`
	PrivateNotes           string `dynamodbav:"private_notes,omitempty"`
	DefaultMaterial        string `dynamodbav:"default_material"`
	Status                 string `dynamodbav:"status"`
	RevisionNumber         int    `dynamodbav:"revision_number"`
	RevisedFromID          string `dynamodbav:"revised_from_id,omitempty"`
	Items                  []takeoffLineItem `dynamodbav:"items"`
	ItemCount              int               `dynamodbav:"item_count"`
	CreatedAt              string            `dynamodbav:"created_at"`
	UpdatedAt              string            `dynamodbav:"updated_at"`
}

type cancellationItem struct {
	ID             string `dynamodbav:"id"`
	TakeoffID      string `dynamodbav:"takeoff_id"`
	Reason         string `dynamodbav:"reason"`
	Notes          string `dynamodbav:"notes,omitempty"`
	PreviousStatus string `dynamodbav:"previous_status"`
	CanceledAt     string `dynamodbav:"canceled_at"`
}

// TakeoffDynamoRepository persists Takeoff entities and their cancellation
// history in DynamoDB.
//
// Table requirements:
//   - takeoffs: PK id (string)
//   - takeoff_cancellations: PK id (string), GSI takeoff_id-index (PK: takeoff_id)
//
// Items are kept inline as a list of maps; every save replaces them.
type TakeoffDynamoRepository struct {
	ddb                DynamoAPI
	tableName          string
	cancellationsTable string
}

var _ interfaces.ITakeoffRepository = (*TakeoffDynamoRepository)(nil)

func NewTakeoffDynamoRepository(ddb DynamoAPI, tableName, cancellationsTable string) *TakeoffDynamoRepository {
	return &TakeoffDynamoRepository{
		ddb:                ddb,
		tableName:          tableOrDefault(tableName, defaultTakeoffsTableName),
		cancellationsTable: tableOrDefault(cancellationsTable, defaultCancellationsTableName),
	}
}

func (r *TakeoffDynamoRepository) Create(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error) {
	return r.put(ctx, t, "attribute_not_exists(#id)")
}

// Save replaces an existing takeoff. A missing record yields the zero value.
func (r *TakeoffDynamoRepository) Save(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error) {
	saved, err := r.put(ctx, t, "attribute_exists(#id)")
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Takeoff{}, nil
		}
		return entities.Takeoff{}, err
	}
	return saved, nil
}

func (r *TakeoffDynamoRepository) put(ctx context.Context, t entities.Takeoff, condition string) (entities.Takeoff, error) {
	av, err := attributevalue.MarshalMap(toTakeoffItem(t))
	if err != nil {
		return entities.Takeoff{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Takeoff{}, err
	}
	return t, nil
}

func (r *TakeoffDynamoRepository) GetByID(ctx context.Context, id string) (entities.Takeoff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Takeoff{}, err
	}
	if len(out.Item) == 0 {
		return entities.Takeoff{}, nil
	}

	var it takeoffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Takeoff{}, err
	}
	return fromTakeoffItem(it), nil
}

func (r *TakeoffDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TakeoffStatus) (entities.Takeoff, error) {
	now := nowString()
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Takeoff{}, nil
		}
		return entities.Takeoff{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Takeoff{}, nil
	}
	var it takeoffItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Takeoff{}, err
	}
	return fromTakeoffItem(it), nil
}

func (r *TakeoffDynamoRepository) AppendCancellation(ctx context.Context, rec entities.CancellationRecord) error {
	av, err := attributevalue.MarshalMap(cancellationItem{
		ID:             rec.ID,
		TakeoffID:      rec.TakeoffID,
		Reason:         string(rec.Reason),
		Notes:          rec.Notes,
		PreviousStatus: string(rec.PreviousStatus),
		CanceledAt:     formatTime(rec.CanceledAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.cancellationsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListCancellations returns the takeoff's cancellation history, oldest first.
func (r *TakeoffDynamoRepository) ListCancellations(ctx context.Context, takeoffID string) ([]entities.CancellationRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.cancellationsTable),
		IndexName:              aws.String(cancellationsTakeoffIDIndex),
		KeyConditionExpression: aws.String("takeoff_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: takeoffID},
		},
	})
	if err != nil {
		return nil, err
	}

	recs := make([]entities.CancellationRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cancellationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		recs = append(recs, entities.CancellationRecord{
			ID:             it.ID,
			TakeoffID:      it.TakeoffID,
			Reason:         entities.CancellationReason(it.Reason),
			Notes:          it.Notes,
			PreviousStatus: entities.TakeoffStatus(it.PreviousStatus),
			CanceledAt:     parseTime(it.CanceledAt),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].CanceledAt.Before(recs[j].CanceledAt) })
	return recs, nil
}

func toTakeoffItem(t entities.Takeoff) takeoffItem {
	it := takeoffItem{
		ID:                     t.ID,
		JobID:                  t.JobID,
		Title:                  t.Title,
		WorkType:               string(t.WorkType),
		Priority:               string(t.Priority),
		WorkOrderNumber:        t.WorkOrderNumber,
		ContractedOrAdditional: t.ContractedOrAdditional,
		InstallDate:            t.InstallDate,
		PickupDate:             t.PickupDate,
		NeededByDate:           t.NeededByDate,
		CrewNotes:              t.CrewNotes,
		ShopNotes:              t.ShopNotes,
		PrivateNotes:           t.PrivateNotes,
		DefaultMaterial:        string(t.DefaultMaterial),
		Status:                 string(t.Status),
		RevisionNumber:         t.RevisionNumber,
		RevisedFromID:          t.RevisedFromID,
		Items:                  toLineItems(t.Items),
		ItemCount:              len(t.Items),
		CreatedAt:              formatTime(t.CreatedAt),
		UpdatedAt:              formatTime(t.UpdatedAt),
	}
	if t.FlaggingDates != nil {
		it.FlaggingStart = t.FlaggingDates.Start
		it.FlaggingEnd = t.FlaggingDates.End
	}
	return it
}

func fromTakeoffItem(it takeoffItem) entities.Takeoff {
	t := entities.Takeoff{
		ID: it.ID,
		TakeoffFields: entities.TakeoffFields{
			JobID:                  it.JobID,
			Title:                  it.Title,
			WorkType:               entities.WorkType(it.WorkType),
			Priority:               entities.Priority(it.Priority),
			WorkOrderNumber:        it.WorkOrderNumber,
			ContractedOrAdditional: it.ContractedOrAdditional,
			InstallDate:            it.InstallDate,
			PickupDate:             it.PickupDate,
			NeededByDate:           it.NeededByDate,
			CrewNotes:              it.CrewNotes,
			ShopNotes:              it.ShopNotes,
			PrivateNotes:           it.PrivateNotes,
			DefaultMaterial:        entities.SignMaterial(it.DefaultMaterial),
		},
		Status:         entities.TakeoffStatus(it.Status),
		RevisionNumber: it.RevisionNumber,
		RevisedFromID:  it.RevisedFromID,
		Items:          fromLineItems(it.Items),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.FlaggingStart != "" || it.FlaggingEnd != "" {
		t.FlaggingDates = &entities.DateRange{Start: it.FlaggingStart, End: it.FlaggingEnd}
	}
	return t
}
