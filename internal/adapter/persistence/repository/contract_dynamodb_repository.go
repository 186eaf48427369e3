package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	contractsCodeIndex        = "code-index"
	contractsPropertyIDIndex  = "property_id-index"
)

type adjustmentItem struct {
	Date          string `dynamodbav:"date"`
	Kind          string `dynamodbav:"kind"`
	PreviousValue string `dynamodbav:"previous_value"`
	NewValue      string `dynamodbav:"new_value"`
	Reason        string `dynamodbav:"reason,omitempty"`
}

type contractItem struct {
	ID                  string           `dynamodbav:"id"`
	Code                string           `dynamodbav:"code"`
	TenantID            string           `dynamodbav:"tenant_id"`
	PropertyID          string           `dynamodbav:"property_id"`
	Type                string           `dynamodbav:"type"`
	Status              string           `dynamodbav:"status"`
	StartDate           string           `dynamodbav:"start_date,omitempty"`
	EndDate             string           `dynamodbav:"end_date,omitempty"`
	DurationMonths      int              `dynamodbav:"duration_months"`
	Amount              string           `dynamodbav:"amount"`
	DueDay              int              `dynamodbav:"due_day"`
	NextDueDate         string           `dynamodbav:"next_due_date,omitempty"`
	LastAdjustmentAt    string           `dynamodbav:"last_adjustment_at,omitempty"`
	AnnualAdjustmentPct string           `dynamodbav:"annual_adjustment_pct"`
	AdjustmentIndex     string           `dynamodbav:"adjustment_index"`
	Notes               string           `dynamodbav:"notes,omitempty"`
	Adjustments         []adjustmentItem `dynamodbav:"adjustments,omitempty"`
	CreatedAt           string           `dynamodbav:"created_at"`
	UpdatedAt           string           `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//   - GSI: property_id-index (PK: property_id)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsCodeIndex),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var result []entities.Contract
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			result = append(result, fromContractItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// ListByPropertyID queries the property_id-index. When statuses are given the
// result is narrowed with a filter expression (the reconciler's sibling
// query passes Active).
func (r *ContractDynamoRepository) ListByPropertyID(ctx context.Context, propertyID string, statuses ...entities.ContractStatus) ([]entities.Contract, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsPropertyIDIndex),
		KeyConditionExpression: aws.String("#property_id = :property_id"),
		ExpressionAttributeNames: map[string]string{
			"#property_id": "property_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":property_id": &types.AttributeValueMemberS{Value: propertyID},
		},
	}
	if len(statuses) > 0 {
		placeholders := make([]string, 0, len(statuses))
		in.ExpressionAttributeNames["#status"] = "status"
		for i, s := range statuses {
			ph := fmt.Sprintf(":status%d", i)
			placeholders = append(placeholders, ph)
			in.ExpressionAttributeValues[ph] = &types.AttributeValueMemberS{Value: string(s)}
		}
		in.FilterExpression = aws.String("#status IN (" + strings.Join(placeholders, ", ") + ")")
	}

	var result []entities.Contract
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			result = append(result, fromContractItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
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
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error) {
	now := formatTime(nowUTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ContractDynamoRepository) Count(ctx context.Context) (int, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	}

	total := 0
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toContractItem(c entities.Contract) contractItem {
	var adjustments []adjustmentItem
	for _, a := range c.Adjustments {
		adjustments = append(adjustments, adjustmentItem{
			Date:          formatTime(a.Date),
			Kind:          a.Kind,
			PreviousValue: floatToString(a.PreviousValue),
			NewValue:      floatToString(a.NewValue),
			Reason:        a.Reason,
		})
	}
	return contractItem{
		ID:                  c.ID,
		Code:                c.Code,
		TenantID:            c.TenantID,
		PropertyID:          c.PropertyID,
		Type:                string(c.Type),
		Status:              string(c.Status),
		StartDate:           formatTime(c.StartDate),
		EndDate:             formatTime(c.EndDate),
		DurationMonths:      c.DurationMonths,
		Amount:              floatToString(c.Amount),
		DueDay:              c.DueDay,
		NextDueDate:         formatTime(c.NextDueDate),
		LastAdjustmentAt:    formatTime(c.LastAdjustmentAt),
		AnnualAdjustmentPct: floatToString(c.AnnualAdjustmentPct),
		AdjustmentIndex:     string(c.AdjustmentIndex),
		Notes:               c.Notes,
		Adjustments:         adjustments,
		CreatedAt:           formatTime(c.CreatedAt),
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	var adjustments []entities.Adjustment
	for _, a := range it.Adjustments {
		adjustments = append(adjustments, entities.Adjustment{
			Date:          parseTime(a.Date),
			Kind:          a.Kind,
			PreviousValue: stringToFloat(a.PreviousValue),
			NewValue:      stringToFloat(a.NewValue),
			Reason:        a.Reason,
		})
	}
	return entities.Contract{
		ID:                  it.ID,
		Code:                it.Code,
		TenantID:            it.TenantID,
		PropertyID:          it.PropertyID,
		Type:                entities.ContractType(it.Type),
		Status:              entities.ContractStatus(it.Status),
		StartDate:           parseTime(it.StartDate),
		EndDate:             parseTime(it.EndDate),
		DurationMonths:      it.DurationMonths,
		Amount:              stringToFloat(it.Amount),
		DueDay:              it.DueDay,
		NextDueDate:         parseTime(it.NextDueDate),
		LastAdjustmentAt:    parseTime(it.LastAdjustmentAt),
		AnnualAdjustmentPct: stringToFloat(it.AnnualAdjustmentPct),
		AdjustmentIndex:     entities.AdjustmentIndex(it.AdjustmentIndex),
		Notes:               it.Notes,
		Adjustments:         adjustments,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
