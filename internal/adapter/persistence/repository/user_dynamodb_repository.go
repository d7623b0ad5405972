package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"imperium_store/internal/domain/entities"
	"imperium_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID              string `dynamodbav:"id"`
	Email           string `dynamodbav:"email"`
	Name            string `dynamodbav:"name,omitempty"`
	Role            string `dynamodbav:"role"`
	Cart            string `dynamodbav:"cart,omitempty"`
	ShippingAddress string `dynamodbav:"shipping_address,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists customer profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string, identity-provider subject)
//   - GSI: email-index (PK: email)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it)
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it)
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.User, 0, len(out.Items))
	for _, m := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		u, err := fromUserItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, nil
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	it, err := toUserItem(u)
	if err != nil {
		return entities.User{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) UpdateProfile(ctx context.Context, id, name string, addr *entities.Address) (entities.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	if name != "" {
		expr += ", #name = :name"
		vals[":name"] = &types.AttributeValueMemberS{Value: name}
		names["#name"] = "name"
	}
	if addr != nil {
		addrJSON, err := json.Marshal(addr)
		if err != nil {
			return entities.User{}, err
		}
		expr += ", #shipping_address = :shipping_address"
		vals[":shipping_address"] = &types.AttributeValueMemberS{Value: string(addrJSON)}
		names["#shipping_address"] = "shipping_address"
	}

	return r.update(ctx, id, expr, vals, names)
}

func (r *UserDynamoRepository) UpdateCart(ctx context.Context, id string, items []entities.CartItem) (entities.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	cartJSON := ""
	if len(items) > 0 {
		b, err := json.Marshal(items)
		if err != nil {
			return entities.User{}, err
		}
		cartJSON = string(b)
	}

	expr := "SET #cart = :cart, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":cart":       &types.AttributeValueMemberS{Value: cartJSON},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#cart":       "cart",
		"#updated_at": "updated_at",
	}

	return r.update(ctx, id, expr, vals, names)
}

func (r *UserDynamoRepository) update(
	ctx context.Context,
	id, expr string,
	vals map[string]types.AttributeValue,
	names map[string]string,
) (entities.User, error) {
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
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it)
}

func toUserItem(u entities.User) (userItem, error) {
	it := userItem{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(u.Cart) > 0 {
		b, err := json.Marshal(u.Cart)
		if err != nil {
			return userItem{}, err
		}
		it.Cart = string(b)
	}
	if u.ShippingAddress != nil {
		b, err := json.Marshal(u.ShippingAddress)
		if err != nil {
			return userItem{}, err
		}
		it.ShippingAddress = string(b)
	}
	return it, nil
}

func fromUserItem(it userItem) (entities.User, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	u := entities.User{
		ID:        it.ID,
		Email:     it.Email,
		Name:      it.Name,
		Role:      it.Role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.Cart != "" {
		if err := json.Unmarshal([]byte(it.Cart), &u.Cart); err != nil {
			return entities.User{}, err
		}
	}
	if it.ShippingAddress != "" {
		var addr entities.Address
		if err := json.Unmarshal([]byte(it.ShippingAddress), &addr); err != nil {
			return entities.User{}, err
		}
		u.ShippingAddress = &addr
	}
	return u, nil
}
