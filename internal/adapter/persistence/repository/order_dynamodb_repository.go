package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Items           string `dynamodbav:"items"`
	Subtotal        string `dynamodbav:"subtotal"`
	Discount        string `dynamodbav:"discount"`
	CouponCode      string `dynamodbav:"coupon_code,omitempty"`
	Shipping        string `dynamodbav:"shipping"`
	ShippingAddress string `dynamodbav:"shipping_address"`
	Total           string `dynamodbav:"total"`
	Status          string `dynamodbav:"status"`
	PaymentID       string `dynamodbav:"payment_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Item lists, shipping and address are stored as JSON documents inside the
// item; they are read back whole and never queried field-by-field.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentID string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if paymentID != "" {
		expr += ", #payment_id = :payment_id"
		vals[":payment_id"] = &types.AttributeValueMemberS{Value: paymentID}
		names["#payment_id"] = "payment_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	items := make([]entities.Order, 0, len(raw))
	for _, m := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		o, err := fromOrderItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, nil
}

func toOrderItem(o entities.Order) (orderItem, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return orderItem{}, err
	}
	shippingJSON, err := json.Marshal(o.Shipping)
	if err != nil {
		return orderItem{}, err
	}
	addressJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return orderItem{}, err
	}

	return orderItem{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           string(itemsJSON),
		Subtotal:        floatToString(o.Subtotal),
		Discount:        floatToString(o.Discount),
		CouponCode:      o.CouponCode,
		Shipping:        string(shippingJSON),
		ShippingAddress: string(addressJSON),
		Total:           floatToString(o.Total),
		Status:          string(o.Status),
		PaymentID:       o.PaymentID,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var items []entities.OrderItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Order{}, err
		}
	}
	var shipping entities.ShippingSelection
	if it.Shipping != "" {
		if err := json.Unmarshal([]byte(it.Shipping), &shipping); err != nil {
			return entities.Order{}, err
		}
	}
	var address entities.Address
	if it.ShippingAddress != "" {
		if err := json.Unmarshal([]byte(it.ShippingAddress), &address); err != nil {
			return entities.Order{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	return entities.Order{
		ID:              it.ID,
		UserID:          it.UserID,
		Items:           items,
		Subtotal:        subtotal,
		Discount:        discount,
		CouponCode:      it.CouponCode,
		Shipping:        shipping,
		ShippingAddress: address,
		Total:           total,
		Status:          entities.OrderStatus(it.Status),
		PaymentID:       it.PaymentID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
