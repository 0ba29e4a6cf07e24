package repository

import (
	"context"
	"errors"
	"time"

	"catermate/internal/domain/entities"
	"catermate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalLineItemRecord struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
	Category    string  `dynamodbav:"category"`
}

type proposalItem struct {
	ID          string                   `dynamodbav:"id"`
	EventID     string                   `dynamodbav:"event_id,omitempty"`
	CreatedByID string                   `dynamodbav:"created_by_id"`
	Status      string                   `dynamodbav:"status"`
	TotalAmount float64                  `dynamodbav:"total_amount"`
	ValidUntil  string                   `dynamodbav:"valid_until"`
	Notes       string                   `dynamodbav:"notes,omitempty"`
	LineItems   []proposalLineItemRecord `dynamodbav:"line_items"`
	CreatedAt   string                   `dynamodbav:"created_at"`
}

// ProposalDynamoRepository writes proposals produced from estimates.
//
// Promotion is a single TransactWriteItems: the proposal Put and the
// estimate status flip commit together or not at all, and the conditional
// update on the estimate serializes concurrent conversions of the same id.

type ProposalDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	estimatesTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		estimatesTable: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *ProposalDynamoRepository) PromoteFromEstimate(ctx context.Context, estimateID string, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.estimatesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: estimateID},
					},
					UpdateExpression:    aws.String("SET #status = :converted, #updated_at = :now"),
					ConditionExpression: aws.String("#status = :draft"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":converted": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusConverted)},
						":draft":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusDraft)},
						":now":       &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		if transactionLostRace(err) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

// transactionLostRace reports whether the transaction was cancelled by a
// failed condition check, meaning another request converted the estimate
// first.
func transactionLostRace(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toProposalItem(p entities.Proposal) proposalItem {
	lines := make([]proposalLineItemRecord, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		lines = append(lines, proposalLineItemRecord{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
			Category:    li.Category,
		})
	}
	return proposalItem{
		ID:          p.ID,
		EventID:     p.EventID,
		CreatedByID: p.CreatedByID,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount,
		ValidUntil:  p.ValidUntil.UTC().Format(time.RFC3339Nano),
		Notes:       p.Notes,
		LineItems:   lines,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
