package repository

import (
	"context"
	"encoding/json"
	"time"

	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "drafts"

type draftItem struct {
	Key        string `dynamodbav:"key"`
	Selections string `dynamodbav:"selections"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists in-progress till selections in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Selections are stored as one JSON blob: drafts are saved and loaded
// verbatim, never queried by content.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Save(ctx context.Context, key string, selections []entities.Selection) error {
	blob, err := json.Marshal(selections)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(draftItem{
		Key:        key,
		Selections: string(blob),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Load(ctx context.Context, key string) ([]entities.Selection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	var selections []entities.Selection
	if err := json.Unmarshal([]byte(it.Selections), &selections); err != nil {
		return nil, err
	}
	return selections, nil
}
