package repository

import (
	"context"
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
	defaultCouponsTableName = "coupons"
	couponsCodeIndex        = "code-index"
)

type couponItem struct {
	ID            string `dynamodbav:"id"`
	Code          string `dynamodbav:"code"`
	DiscountType  string `dynamodbav:"discount_type"`
	DiscountValue string `dynamodbav:"discount_value"`
	Active        bool   `dynamodbav:"active"`
	ExpiresAt     string `dynamodbav:"expires_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)

type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Coupon, 0, len(out.Items))
	for _, m := range out.Items {
		var it couponItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCouponItem(it))
	}
	return items, nil
}

func (r *CouponDynamoRepository) GetByID(ctx context.Context, id string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(couponsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Items) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
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
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
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
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCouponItem(c entities.Coupon) couponItem {
	it := couponItem{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: floatToString(c.DiscountValue),
		Active:        c.Active,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.ExpiresAt != nil {
		it.ExpiresAt = c.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromCouponItem(it couponItem) entities.Coupon {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	value, _ := strconv.ParseFloat(it.DiscountValue, 64)

	c := entities.Coupon{
		ID:            it.ID,
		Code:          it.Code,
		DiscountType:  entities.DiscountType(it.DiscountType),
		DiscountValue: value,
		Active:        it.Active,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.ExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			c.ExpiresAt = &t
		}
	}
	return c
}
