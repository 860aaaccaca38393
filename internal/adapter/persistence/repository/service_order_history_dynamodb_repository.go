package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHistoryTableName = "service_order_history"

// changedAtLayout is fixed width so the sort key orders like the timestamp.
const changedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type statusChangeItem struct {
	OrderID   int64  `dynamodbav:"order_id"`
	ChangedAt string `dynamodbav:"changed_at"`
	From      string `dynamodbav:"from_status,omitempty"`
	To        string `dynamodbav:"to_status"`
	ChangedBy string `dynamodbav:"changed_by,omitempty"`
}

// dynamoAPI is the subset of *dynamodb.Client the history repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ServiceOrderHistoryDynamoRepository keeps the status timeline of every
// service order in DynamoDB.
//
// Table requirements:
//   - PK: order_id (number)
//   - SK: changed_at (string, UTC, nanoseconds always nine digits)
//
// The sort key makes Query return changes in chronological order.
type ServiceOrderHistoryDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderHistoryRepository = (*ServiceOrderHistoryDynamoRepository)(nil)

func NewServiceOrderHistoryDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceOrderHistoryDynamoRepository {
	if tableName == "" {
		tableName = defaultHistoryTableName
	}
	return &ServiceOrderHistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderHistoryDynamoRepository) Append(ctx context.Context, change entities.StatusChange) error {
	av, err := attributevalue.MarshalMap(toStatusChangeItem(change))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id) AND attribute_not_exists(#changed_at)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id":   "order_id",
			"#changed_at": "changed_at",
		},
	})
	return err
}

func (r *ServiceOrderHistoryDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.StatusChange, error) {
	changes := make([]entities.StatusChange, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#order_id = :order_id"),
			ExpressionAttributeNames: map[string]string{
				"#order_id": "order_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":order_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(orderID, 10)},
			},
			ScanIndexForward:  aws.Bool(true),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []statusChangeItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			change, err := fromStatusChangeItem(it)
			if err != nil {
				return nil, err
			}
			changes = append(changes, change)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return changes, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toStatusChangeItem(c entities.StatusChange) statusChangeItem {
	return statusChangeItem{
		OrderID:   c.OrderID,
		ChangedAt: c.ChangedAt.UTC().Format(changedAtLayout),
		From:      string(c.From),
		To:        string(c.To),
		ChangedBy: c.ChangedBy,
	}
}

func fromStatusChangeItem(it statusChangeItem) (entities.StatusChange, error) {
	changedAt, err := time.Parse(time.RFC3339Nano, it.ChangedAt)
	if err != nil {
		return entities.StatusChange{}, fmt.Errorf("parse changed_at of order %d: %w", it.OrderID, err)
	}
	return entities.StatusChange{
		OrderID:   it.OrderID,
		From:      entities.ServiceOrderStatus(it.From),
		To:        entities.ServiceOrderStatus(it.To),
		ChangedAt: changedAt,
		ChangedBy: it.ChangedBy,
	}, nil
}

// NoopHistoryRepository is used when DynamoDB is not configured.
type NoopHistoryRepository struct{}

var _ interfaces.IServiceOrderHistoryRepository = NoopHistoryRepository{}

func (NoopHistoryRepository) Append(context.Context, entities.StatusChange) error { return nil }

func (NoopHistoryRepository) ListByOrderID(context.Context, int64) ([]entities.StatusChange, error) {
	return []entities.StatusChange{}, nil
}
