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
	defaultProductsTableName = "products"
	productsCategoryIndex    = "category-index"
)

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Category    string `dynamodbav:"category,omitempty"`
	Stock       int    `dynamodbav:"stock"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Featured    bool   `dynamodbav:"featured"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: category-index (PK: category)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

func (r *ProductDynamoRepository) ListByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsCategoryIndex),
		KeyConditionExpression: aws.String("category = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: category},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalProducts(raw []map[string]types.AttributeValue) ([]entities.Product, error) {
	items := make([]entities.Product, 0, len(raw))
	for _, m := range raw {
		var it productItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProductItem(it))
	}
	return items, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       floatToString(p.Price),
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Category:    it.Category,
		Stock:       it.Stock,
		ImageURL:    it.ImageURL,
		Featured:    it.Featured,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
