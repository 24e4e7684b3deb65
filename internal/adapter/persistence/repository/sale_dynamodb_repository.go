package repository

import (
	"context"
	"time"

	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalesTableName = "sales"
	salesDomainIndex      = "domain-index"

	// DynamoDB caps BatchWriteItem at 25 requests per call.
	maxBatchWriteItems = 25
)

type bundleRefItem struct {
	ID       string `dynamodbav:"id,omitempty"`
	Name     string `dynamodbav:"name,omitempty"`
	Quantity int    `dynamodbav:"quantity,omitempty"`
	Total    string `dynamodbav:"total,omitempty"`
	Note     string `dynamodbav:"note,omitempty"`
}

type saleItem struct {
	ID            string         `dynamodbav:"id"`
	Domain        string         `dynamodbav:"domain"`
	OrderRef      string         `dynamodbav:"order_ref,omitempty"`
	CatalogItemID string         `dynamodbav:"catalog_item_id,omitempty"`
	BundleRef     *bundleRefItem `dynamodbav:"bundle_ref,omitempty"`

	ItemName       string `dynamodbav:"item_name"`
	Quantity       int    `dynamodbav:"quantity"`
	UnitPrice      string `dynamodbav:"unit_price,omitempty"`
	DiscountAmount string `dynamodbav:"discount_amount,omitempty"`
	FinalPrice     string `dynamodbav:"final_price,omitempty"`
	Note           string `dynamodbav:"note,omitempty"`

	Buyer         string `dynamodbav:"buyer,omitempty"`
	SoldAt        string `dynamodbav:"sold_at"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	StaffName     string `dynamodbav:"staff_name,omitempty"`
}

// SaleDynamoRepository persists SaleLineItem rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: domain-index (PK: domain)
//
// Prices are stored as raw string tokens so that legacy rows with empty or
// free-text price fields survive a read/write cycle unchanged.

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) ListByDomain(ctx context.Context, domain entities.SaleDomain) ([]entities.SaleLineItem, error) {
	items := make([]entities.SaleLineItem, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(salesDomainIndex),
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
			var it saleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSaleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *SaleDynamoRepository) CreateBatch(ctx context.Context, rows []entities.SaleLineItem) error {
	for start := 0; start < len(rows); start += maxBatchWriteItems {
		end := start + maxBatchWriteItems
		if end > len(rows) {
			end = len(rows)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, row := range rows[start:end] {
			av, err := attributevalue.MarshalMap(toSaleItem(row))
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		unprocessed := map[string][]types.WriteRequest{r.tableName: requests}
		for len(unprocessed[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: unprocessed,
			})
			if err != nil {
				return err
			}
			unprocessed = out.UnprocessedItems
		}
	}
	return nil
}

func toSaleItem(e entities.SaleLineItem) saleItem {
	it := saleItem{
		ID:             e.ID,
		Domain:         string(e.Domain),
		OrderRef:       e.OrderRef,
		CatalogItemID:  e.CatalogItemID,
		ItemName:       e.ItemName,
		Quantity:       e.Quantity,
		UnitPrice:      string(e.UnitPrice),
		DiscountAmount: string(e.DiscountAmount),
		FinalPrice:     string(e.FinalPrice),
		Note:           e.Note,
		Buyer:          e.Buyer,
		SoldAt:         e.SoldAt.UTC().Format(time.RFC3339Nano),
		PaymentMethod:  e.PaymentMethod,
		StaffName:      e.StaffName,
	}
	if e.BundleRef != nil {
		it.BundleRef = &bundleRefItem{
			ID:       e.BundleRef.ID,
			Name:     e.BundleRef.Name,
			Quantity: e.BundleRef.Quantity,
			Total:    string(e.BundleRef.Total),
			Note:     e.BundleRef.Note,
		}
	}
	return it
}

func fromSaleItem(it saleItem) entities.SaleLineItem {
	soldAt, _ := time.Parse(time.RFC3339Nano, it.SoldAt)
	e := entities.SaleLineItem{
		ID:             it.ID,
		Domain:         entities.SaleDomain(it.Domain),
		OrderRef:       it.OrderRef,
		CatalogItemID:  it.CatalogItemID,
		ItemName:       it.ItemName,
		Quantity:       it.Quantity,
		UnitPrice:      entities.FlexPrice(it.UnitPrice),
		DiscountAmount: entities.FlexPrice(it.DiscountAmount),
		FinalPrice:     entities.FlexPrice(it.FinalPrice),
		Note:           it.Note,
		Buyer:          it.Buyer,
		SoldAt:         soldAt,
		PaymentMethod:  it.PaymentMethod,
		StaffName:      it.StaffName,
	}
	if it.BundleRef != nil {
		e.BundleRef = &entities.BundleDescriptor{
			ID:       it.BundleRef.ID,
			Name:     it.BundleRef.Name,
			Quantity: it.BundleRef.Quantity,
			Total:    entities.FlexPrice(it.BundleRef.Total),
			Note:     it.BundleRef.Note,
		}
	}
	return e
}
