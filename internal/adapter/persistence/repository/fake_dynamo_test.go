package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type record = map[string]types.AttributeValue

// fakeDynamo is an in-memory table store understanding the condition and
// update expressions used by this package.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]record
	puts   int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]record{}}
}

func (f *fakeDynamo) table(name string) map[string]record {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]record{}
		f.tables[name] = t
	}
	return t
}

func keyOf(key record) string {
	for _, v := range key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			return s.Value
		}
	}
	return ""
}

func conditionHolds(expr *string, exists bool) bool {
	cond := aws.ToString(expr)
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists"):
		return !exists
	case strings.HasPrefix(cond, "attribute_exists"):
		return exists
	}
	return true
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))

	// Every table here is keyed by "id" except work orders.
	keyName := "id"
	if _, ok := in.Item["takeoff_id"]; ok && aws.ToString(in.TableName) == defaultWorkOrdersTableName {
		keyName = "takeoff_id"
	}
	key := in.Item[keyName].(*types.AttributeValueMemberS).Value
	_, exists := t[key]
	if !conditionHolds(in.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	t[key] = in.Item
	f.puts++
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	key := keyOf(in.Key)
	current, exists := t[key]
	if !conditionHolds(in.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}

	next := record{}
	for k, v := range current {
		next[k] = v
	}
	for _, clause := range strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ", ") {
		parts := strings.SplitN(clause, " = ", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unsupported update clause %q", clause)
		}
		name := in.ExpressionAttributeNames[parts[0]]
		value := parts[1]
		if strings.HasPrefix(value, "if_not_exists(") {
			if _, ok := next[name]; ok {
				continue
			}
			value = strings.TrimSuffix(value[strings.Index(value, ", ")+2:], ")")
		}
		next[name] = in.ExpressionAttributeValues[value]
	}
	t[key] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := in.ExpressionAttributeValues[":tid"].(*types.AttributeValueMemberS).Value
	var items []record
	for _, it := range f.table(aws.ToString(in.TableName)) {
		if s, ok := it["takeoff_id"].(*types.AttributeValueMemberS); ok && s.Value == want {
			items = append(items, it)
		}
	}
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}
