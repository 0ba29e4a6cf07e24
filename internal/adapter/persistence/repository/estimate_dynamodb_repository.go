package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"catermate/internal/domain/entities"
	"catermate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	EventID    string `dynamodbav:"event_id,omitempty"`
	PackageID  string `dynamodbav:"package_id,omitempty"`
	GuestCount int    `dynamodbav:"guest_count"`

	OverheadPercent     float64 `dynamodbav:"overhead_percent"`
	ProfitMarginPercent float64 `dynamodbav:"profit_margin_percent"`
	TaxRatePercent      float64 `dynamodbav:"tax_rate_percent"`
	LaborRate           float64 `dynamodbav:"labor_rate"`

	FoodCost        float64 `dynamodbav:"food_cost"`
	LaborCost       float64 `dynamodbav:"labor_cost"`
	EquipmentCost   float64 `dynamodbav:"equipment_cost"`
	AdditionalCosts float64 `dynamodbav:"additional_costs"`
	DirectCosts     float64 `dynamodbav:"direct_costs"`
	OverheadAmount  float64 `dynamodbav:"overhead_amount"`
	Subtotal        float64 `dynamodbav:"subtotal"`
	ProfitAmount    float64 `dynamodbav:"profit_amount"`
	PreTaxTotal     float64 `dynamodbav:"pre_tax_total"`
	TaxAmount       float64 `dynamodbav:"tax_amount"`
	Total           float64 `dynamodbav:"total"`
	PricePerPerson  float64 `dynamodbav:"price_per_person"`

	StaffDetail          string `dynamodbav:"staff_detail,omitempty"`
	AdditionalCostDetail string `dynamodbav:"additional_cost_detail,omitempty"`
	Notes                string `dynamodbav:"notes,omitempty"`
	Status               string `dynamodbav:"status"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List uses a full Scan and sorts in memory; the estimate table for a
// single catering business stays small enough that a created_at GSI is not
// worth carrying.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var items []estimateItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	estimates := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		estimates = append(estimates, fromEstimateItem(it))
	}
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

// Update replaces the whole item. The conditional put doubles as the
// existence check; a missing row comes back as a zero value, not an error.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                   e.ID,
		Name:                 e.Name,
		EventID:              e.EventID,
		PackageID:            e.PackageID,
		GuestCount:           e.GuestCount,
		OverheadPercent:      e.OverheadPercent,
		ProfitMarginPercent:  e.ProfitMarginPercent,
		TaxRatePercent:       e.TaxRatePercent,
		LaborRate:            e.LaborRate,
		FoodCost:             e.FoodCost,
		LaborCost:            e.LaborCost,
		EquipmentCost:        e.EquipmentCost,
		AdditionalCosts:      e.AdditionalCosts,
		DirectCosts:          e.DirectCosts,
		OverheadAmount:       e.OverheadAmount,
		Subtotal:             e.Subtotal,
		ProfitAmount:         e.ProfitAmount,
		PreTaxTotal:          e.PreTaxTotal,
		TaxAmount:            e.TaxAmount,
		Total:                e.Total,
		PricePerPerson:       e.PricePerPerson,
		StaffDetail:          e.StaffDetail,
		AdditionalCostDetail: e.AdditionalCostDetail,
		Notes:                e.Notes,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:                   it.ID,
		Name:                 it.Name,
		EventID:              it.EventID,
		PackageID:            it.PackageID,
		GuestCount:           it.GuestCount,
		OverheadPercent:      it.OverheadPercent,
		ProfitMarginPercent:  it.ProfitMarginPercent,
		TaxRatePercent:       it.TaxRatePercent,
		LaborRate:            it.LaborRate,
		FoodCost:             it.FoodCost,
		LaborCost:            it.LaborCost,
		EquipmentCost:        it.EquipmentCost,
		AdditionalCosts:      it.AdditionalCosts,
		DirectCosts:          it.DirectCosts,
		OverheadAmount:       it.OverheadAmount,
		Subtotal:             it.Subtotal,
		ProfitAmount:         it.ProfitAmount,
		PreTaxTotal:          it.PreTaxTotal,
		TaxAmount:            it.TaxAmount,
		Total:                it.Total,
		PricePerPerson:       it.PricePerPerson,
		StaffDetail:          it.StaffDetail,
		AdditionalCostDetail: it.AdditionalCostDetail,
		Notes:                it.Notes,
		Status:               entities.EstimateStatus(it.Status),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}
