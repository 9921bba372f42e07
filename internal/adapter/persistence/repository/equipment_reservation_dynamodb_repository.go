package repository

import (
	"context"
	"fmt"
	"strconv"

	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEquipmentReservationsTableName = "equipment_reservations"

type equipmentReservationItem struct {
	ID            string `dynamodbav:"id"`
	TakeoffID     string `dynamodbav:"takeoff_id"`
	EquipmentType string `dynamodbav:"equipment_type"`
	EquipmentID   string `dynamodbav:"equipment_id,omitempty"`
	Quantity      int    `dynamodbav:"quantity"`
	ReservedAt    string `dynamodbav:"reserved_at"`
}

// EquipmentReservationDynamoRepository books rolling stock for a takeoff.
//
// Table requirements:
//   - PK: id (string), "<takeoff id>#<row id>"
//
// Re-reserving the same row is a no-op.
type EquipmentReservationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEquipmentReservation = (*EquipmentReservationDynamoRepository)(nil)

func NewEquipmentReservationDynamoRepository(ddb DynamoAPI, tableName string) *EquipmentReservationDynamoRepository {
	return &EquipmentReservationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEquipmentReservationsTableName),
	}
}

func (r *EquipmentReservationDynamoRepository) Reserve(ctx context.Context, takeoffID string, equipment []entities.TakeoffItem) error {
	now := nowString()
	for i, item := range equipment {
		it := equipmentReservationItem{
			ID:            reservationID(takeoffID, item, i),
			TakeoffID:     takeoffID,
			EquipmentType: item.Name,
			Quantity:      item.Quantity,
			ReservedAt:    now,
		}
		if p := item.Metadata.Plain; p != nil {
			if p.EquipmentType != "" {
				it.EquipmentType = p.EquipmentType
			}
			it.EquipmentID = p.EquipmentID
		}

		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil && !isConditionalCheckFailed(err) {
			return fmt.Errorf("reserve %s for takeoff %s: %w", it.EquipmentType, takeoffID, err)
		}
	}
	return nil
}

func reservationID(takeoffID string, item entities.TakeoffItem, index int) string {
	if p := item.Metadata.Plain; p != nil && p.RowID != "" {
		return takeoffID + "#" + p.RowID
	}
	return takeoffID + "#" + strconv.Itoa(index)
}
