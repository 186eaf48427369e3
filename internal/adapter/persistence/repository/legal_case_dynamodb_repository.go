package repository

import (
	"context"
	"errors"
	"time"

	"gestao_imobiliaria/internal/domain/entities"
	"gestao_imobiliaria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLegalCasesTableName = "legal_cases"
	legalCasesContractIDIndex  = "contract_id-index"
)

type legalCaseItem struct {
	ID            string `dynamodbav:"id"`
	CaseNumber    string `dynamodbav:"case_number"`
	ContractID    string `dynamodbav:"contract_id,omitempty"`
	TenantID      string `dynamodbav:"tenant_id,omitempty"`
	Type          string `dynamodbav:"type"`
	Status        string `dynamodbav:"status"`
	Court         string `dynamodbav:"court,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	OpenedAt      string `dynamodbav:"opened_at"`
	NextHearingAt string `dynamodbav:"next_hearing_at,omitempty"`
	ClosedAt      string `dynamodbav:"closed_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// LegalCaseDynamoRepository persists LegalCase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)

type LegalCaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILegalCaseRepository = (*LegalCaseDynamoRepository)(nil)

func NewLegalCaseDynamoRepository(ddb *dynamodb.Client) *LegalCaseDynamoRepository {
	return &LegalCaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEGAL_CASES_TABLE", defaultLegalCasesTableName),
	}
}

func (r *LegalCaseDynamoRepository) Create(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
	it := toLegalCaseItem(lc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.LegalCase{}, err
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
		return entities.LegalCase{}, err
	}
	return lc, nil
}

func (r *LegalCaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.LegalCase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LegalCase{}, err
	}
	if len(out.Item) == 0 {
		return entities.LegalCase{}, nil
	}

	var it legalCaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LegalCase{}, err
	}
	return fromLegalCaseItem(it), nil
}

func (r *LegalCaseDynamoRepository) List(ctx context.Context) ([]entities.LegalCase, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var result []entities.LegalCase
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it legalCaseItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			result = append(result, fromLegalCaseItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *LegalCaseDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.LegalCase, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(legalCasesContractIDIndex),
		KeyConditionExpression: aws.String("#contract_id = :contract_id"),
		ExpressionAttributeNames: map[string]string{
			"#contract_id": "contract_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contract_id": &types.AttributeValueMemberS{Value: contractID},
		},
	}

	var result []entities.LegalCase
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it legalCaseItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			result = append(result, fromLegalCaseItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *LegalCaseDynamoRepository) Update(ctx context.Context, lc entities.LegalCase) (entities.LegalCase, error) {
	it := toLegalCaseItem(lc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.LegalCase{}, err
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
			return entities.LegalCase{}, nil
		}
		return entities.LegalCase{}, err
	}
	return lc, nil
}

func (r *LegalCaseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toLegalCaseItem(lc entities.LegalCase) legalCaseItem {
	next := ""
	if lc.NextHearingAt != nil {
		next = formatTime(*lc.NextHearingAt)
	}
	closed := ""
	if lc.ClosedAt != nil {
		closed = formatTime(*lc.ClosedAt)
	}
	return legalCaseItem{
		ID:            lc.ID,
		CaseNumber:    lc.CaseNumber,
		ContractID:    lc.ContractID,
		TenantID:      lc.TenantID,
		Type:          string(lc.Type),
		Status:        string(lc.Status),
		Court:         lc.Court,
		Notes:         lc.Notes,
		OpenedAt:      formatTime(lc.OpenedAt),
		NextHearingAt: next,
		ClosedAt:      closed,
		CreatedAt:     formatTime(lc.CreatedAt),
		UpdatedAt:     formatTime(lc.UpdatedAt),
	}
}

func fromLegalCaseItem(it legalCaseItem) entities.LegalCase {
	var next, closed *time.Time
	if it.NextHearingAt != "" {
		v := parseTime(it.NextHearingAt)
		next = &v
	}
	if it.ClosedAt != "" {
		v := parseTime(it.ClosedAt)
		closed = &v
	}
	return entities.LegalCase{
		ID:            it.ID,
		CaseNumber:    it.CaseNumber,
		ContractID:    it.ContractID,
		TenantID:      it.TenantID,
		Type:          entities.LegalCaseType(it.Type),
		Status:        entities.LegalCaseStatus(it.Status),
		Court:         it.Court,
		Notes:         it.Notes,
		OpenedAt:      parseTime(it.OpenedAt),
		NextHearingAt: next,
		ClosedAt:      closed,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
