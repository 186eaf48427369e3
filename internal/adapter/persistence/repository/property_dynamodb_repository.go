package repository

import (
	"context"
	"errors"
	"strconv"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID               string `dynamodbav:"id"`
	GroupNumber      int    `dynamodbav:"group_number"`
	BlockLetter      string `dynamodbav:"block_letter"`
	Floor            int    `dynamodbav:"floor"`
	UnitNumber       int    `dynamodbav:"unit_number"`
	FloorPlan        string `dynamodbav:"floor_plan"`
	UsableArea       string `dynamodbav:"usable_area"`
	GarageSlots      int    `dynamodbav:"garage_slots"`
	GarageType       string `dynamodbav:"garage_type"`
	Price            string `dynamodbav:"price"`
	AdvertisedStatus string `dynamodbav:"advertised_status"`
	LinkedContractID string `dynamodbav:"linked_contract_id,omitempty"`
	StatusChangedAt  string `dynamodbav:"status_changed_at"`
	Version          int64  `dynamodbav:"version"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The version attribute is the optimistic-concurrency token used by the
// reconciler's conditional status write.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	it := toPropertyItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Property{}, err
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
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Property{}, err
	}
	if len(out.Item) == 0 {
		return entities.Property{}, nil
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) List(ctx context.Context, limit int) ([]entities.Property, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	var result []entities.Property
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it propertyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			result = append(result, fromPropertyItem(it))
			if limit > 0 && len(result) >= limit {
				return result, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *PropertyDynamoRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	it := toPropertyItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Property{}, err
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
			return entities.Property{}, nil
		}
		return entities.Property{}, err
	}
	return p, nil
}

// UpdateAdvertisedStatus is the reconciler's write path: conditional on the
// expected version, it sets the status and the driving contract link (nil
// clears it), stamps status_changed_at/updated_at and bumps the version.
func (r *PropertyDynamoRepository) UpdateAdvertisedStatus(ctx context.Context, id string, status entities.PropertyStatus, linkedContractID *string, expectedVersion int64) (entities.Property, error) {
	now := formatTime(nowUTC())

	expr := "SET #advertised_status = :status, #status_changed_at = :now, #updated_at = :now, #version = :next"
	vals := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: string(status)},
		":now":      &types.AttributeValueMemberS{Value: now},
		":next":     &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	names := map[string]string{
		"#advertised_status": "advertised_status",
		"#status_changed_at": "status_changed_at",
		"#updated_at":        "updated_at",
		"#version":           "version",
		"#linked":            "linked_contract_id",
	}
	if linkedContractID != nil {
		expr += ", #linked = :linked"
		vals[":linked"] = &types.AttributeValueMemberS{Value: *linkedContractID}
	} else {
		expr += " REMOVE #linked"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The condition covers both existence and version; disambiguate.
			current, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Property{}, getErr
			}
			if current.ID == "" {
				return entities.Property{}, nil
			}
			return entities.Property{}, interfaces.ErrPropertyVersionConflict
		}
		return entities.Property{}, err
	}

	var it propertyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPropertyItem(p entities.Property) propertyItem {
	linked := ""
	if p.LinkedContractID != nil {
		linked = *p.LinkedContractID
	}
	return propertyItem{
		ID:               p.ID,
		GroupNumber:      p.GroupNumber,
		BlockLetter:      p.BlockLetter,
		Floor:            p.Floor,
		UnitNumber:       p.UnitNumber,
		FloorPlan:        string(p.FloorPlan),
		UsableArea:       floatToString(p.UsableArea),
		GarageSlots:      p.GarageSlots,
		GarageType:       string(p.GarageType),
		Price:            floatToString(p.Price),
		AdvertisedStatus: string(p.AdvertisedStatus),
		LinkedContractID: linked,
		StatusChangedAt:  formatTime(p.StatusChangedAt),
		Version:          p.Version,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	var linked *string
	if it.LinkedContractID != "" {
		v := it.LinkedContractID
		linked = &v
	}
	return entities.Property{
		ID:               it.ID,
		GroupNumber:      it.GroupNumber,
		BlockLetter:      it.BlockLetter,
		Floor:            it.Floor,
		UnitNumber:       it.UnitNumber,
		FloorPlan:        entities.FloorPlan(it.FloorPlan),
		UsableArea:       stringToFloat(it.UsableArea),
		GarageSlots:      it.GarageSlots,
		GarageType:       entities.GarageType(it.GarageType),
		Price:            stringToFloat(it.Price),
		AdvertisedStatus: entities.PropertyStatus(it.AdvertisedStatus),
		LinkedContractID: linked,
		StatusChangedAt:  parseTime(it.StatusChangedAt),
		Version:          it.Version,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
