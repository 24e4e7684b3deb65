package repository

import (
	"context"

	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogTableName = "catalog"
	catalogDomainIndex      = "domain-index"

	// DynamoDB caps BatchGetItem at 100 keys per call.
	maxBatchGetKeys = 100
)

type componentItem struct {
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
}

type catalogItem struct {
	ID         string            `dynamodbav:"id"`
	Domain     string            `dynamodbav:"domain"`
	Name       string            `dynamodbav:"name"`
	Type       string            `dynamodbav:"type"`
	BasePrice  string            `dynamodbav:"base_price,omitempty"`
	PriceTiers map[string]string `dynamodbav:"price_tiers,omitempty"`
	Categories []string          `dynamodbav:"categories,omitempty"`
	Components []componentItem   `dynamodbav:"components,omitempty"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: domain-index (PK: domain)
//
// Bundle composition lives on the bundle's own catalog item, so this
// repository also serves the bundle-contents lookups used by aggregation.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)
var _ interfaces.IBundleContentsRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) ListByDomain(ctx context.Context, domain entities.SaleDomain) ([]entities.CatalogItem, error) {
	items := make([]entities.CatalogItem, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(catalogDomainIndex),
			KeyConditionExpression: aws.String("#domain = :domain"),
			ExpressionAttributeNames: map[string]string{
				"#domain": "domain",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":domain": &types.AttributeValueMemberS{Value: string(domain)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCatalogItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it), nil
}

// GetByBundleIDs fetches the composition of the named bundles. Bundle IDs
// without a catalog item, or whose item has no components, are simply absent
// from the result.
func (r *CatalogDynamoRepository) GetByBundleIDs(ctx context.Context, bundleIDs []string) (map[string]entities.BundleContents, error) {
	contents := make(map[string]entities.BundleContents, len(bundleIDs))

	for start := 0; start < len(bundleIDs); start += maxBatchGetKeys {
		end := start + maxBatchGetKeys
		if end > len(bundleIDs) {
			end = len(bundleIDs)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range bundleIDs[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		unprocessed := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for len(unprocessed[r.tableName].Keys) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: unprocessed,
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it catalogItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				if len(it.Components) == 0 {
					continue
				}
				item := fromCatalogItem(it)
				contents[item.ID] = *item.Contents
			}
			unprocessed = out.UnprocessedKeys
		}
	}
	return contents, nil
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	e := entities.CatalogItem{
		ID:         it.ID,
		Domain:     entities.SaleDomain(it.Domain),
		Name:       it.Name,
		Type:       entities.CatalogItemType(it.Type),
		BasePrice:  entities.FlexPrice(it.BasePrice),
		Categories: it.Categories,
	}
	if len(it.PriceTiers) > 0 {
		e.PriceTiers = make(entities.PriceTierTable, len(it.PriceTiers))
		for identity, price := range it.PriceTiers {
			e.PriceTiers[entities.Identity(identity)] = entities.FlexPrice(price)
		}
	}
	if len(it.Components) > 0 {
		components := make([]entities.BundleComponent, 0, len(it.Components))
		for _, comp := range it.Components {
			components = append(components, entities.BundleComponent{Name: comp.Name, Quantity: comp.Quantity})
		}
		e.Contents = &entities.BundleContents{BundleID: it.ID, Components: components}
	}
	return e
}
