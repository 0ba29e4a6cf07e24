package repository

import (
	"context"

	"catermate/internal/domain/entities"
	"catermate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTableName       = "events"
	defaultMenuPackagesTableName = "menu_packages"
	defaultEquipmentTableName    = "equipment"
)

type menuPackageItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	PricePerPerson float64 `dynamodbav:"price_per_person"`
	CostPerPerson  float64 `dynamodbav:"cost_per_person"`
}

type equipmentRecord struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
}

type orderRecord struct {
	PackageID string `dynamodbav:"package_id"`
}

type invoiceRecord struct {
	Status string  `dynamodbav:"status"`
	Total  float64 `dynamodbav:"total"`
}

type eventItem struct {
	ID         string          `dynamodbav:"id"`
	Name       string          `dynamodbav:"name"`
	ClientID   string          `dynamodbav:"client_id"`
	GuestCount int             `dynamodbav:"guest_count"`
	Orders     []orderRecord   `dynamodbav:"orders"`
	Invoices   []invoiceRecord `dynamodbav:"invoices"`
}

// CatalogDynamoRepository reads the event, menu package and equipment tables
// owned by the platform's CRUD services. All reads are eventually consistent;
// catalog data changes rarely and an estimate is recomputable anyway.

type CatalogDynamoRepository struct {
	ddb            *dynamodb.Client
	eventsTable    string
	packagesTable  string
	equipmentTable string
}

var _ interfaces.ICateringCatalog = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:            ddb,
		eventsTable:    getenvDefault("EVENTS_TABLE", defaultEventsTableName),
		packagesTable:  getenvDefault("MENU_PACKAGES_TABLE", defaultMenuPackagesTableName),
		equipmentTable: getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *CatalogDynamoRepository) GetMenuPackage(ctx context.Context, id string) (entities.MenuPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.packagesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.MenuPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.MenuPackage{}, nil
	}

	var it menuPackageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MenuPackage{}, err
	}
	return entities.MenuPackage{
		ID:             it.ID,
		Name:           it.Name,
		PricePerPerson: it.PricePerPerson,
		CostPerPerson:  it.CostPerPerson,
	}, nil
}

// GetEquipmentByIDs resolves equipment references in one BatchGetItem. Ids
// that do not exist are silently dropped; callers treat the result as the
// set of references that resolved.
func (r *CatalogDynamoRepository) GetEquipmentByIDs(ctx context.Context, ids []string) ([]entities.EquipmentItem, error) {
	if len(ids) == 0 {
		return []entities.EquipmentItem{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	items := make([]entities.EquipmentItem, 0, len(keys))
	for len(keys) > 0 {
		out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.equipmentTable: {Keys: keys},
			},
		})
		if err != nil {
			return nil, err
		}

		var page []equipmentRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.equipmentTable], &page); err != nil {
			return nil, err
		}
		for _, rec := range page {
			items = append(items, entities.EquipmentItem{
				ID:       rec.ID,
				Name:     rec.Name,
				Quantity: rec.Quantity,
			})
		}

		keys = nil
		if unprocessed, ok := out.UnprocessedKeys[r.equipmentTable]; ok {
			keys = unprocessed.Keys
		}
	}
	return items, nil
}

func (r *CatalogDynamoRepository) GetEvent(ctx context.Context, id string) (entities.Event, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.eventsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Event{}, err
	}
	if len(out.Item) == 0 {
		return entities.Event{}, nil
	}

	var it eventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Event{}, err
	}

	orders := make([]entities.OrderRef, 0, len(it.Orders))
	for _, o := range it.Orders {
		orders = append(orders, entities.OrderRef{PackageID: o.PackageID})
	}
	invoices := make([]entities.InvoiceRef, 0, len(it.Invoices))
	for _, inv := range it.Invoices {
		invoices = append(invoices, entities.InvoiceRef{Status: inv.Status, Total: inv.Total})
	}
	return entities.Event{
		ID:         it.ID,
		Name:       it.Name,
		ClientID:   it.ClientID,
		GuestCount: it.GuestCount,
		Orders:     orders,
		Invoices:   invoices,
	}, nil
}
