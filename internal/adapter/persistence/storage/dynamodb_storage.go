package storage

import (
	"context"
	"strings"
	"time"

	"mecanica_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultCollectionsTableName = "ledger_collections"

// DynamoDBAPI is the subset of *dynamodb.Client used by DynamoStorage.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type collectionItem struct {
	Key       string `dynamodbav:"key"`
	Items     string `dynamodbav:"items"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStorage persists every collection as a single DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
//
// An item holds at most 400KB, which bounds the size of a collection.
type DynamoStorage struct {
	ddb       DynamoDBAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.ICollectionStorage = (*DynamoStorage)(nil)

// NewDynamoStorage uses DefaultCollectionsTableName when tableName is blank.
func NewDynamoStorage(ddb DynamoDBAPI, tableName string, log *zap.Logger) *DynamoStorage {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultCollectionsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DynamoStorage{
		ddb:       ddb,
		tableName: tableName,
		log:       log.Named("dynamodb.storage"),
	}
}

func (s *DynamoStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		// Same as a malformed blob: the record store reads it as empty.
		s.log.Warn("malformed collection item; reading as empty",
			zap.String("table", s.tableName),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, true, nil
	}
	return []byte(it.Items), true, nil
}

func (s *DynamoStorage) Save(ctx context.Context, key string, data []byte) error {
	av, err := attributevalue.MarshalMap(toCollectionItem(key, data))
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

// SaveBatch writes all collections with TransactWriteItems, so either every
// collection changes or none does.
func (s *DynamoStorage) SaveBatch(ctx context.Context, blobs []interfaces.CollectionBlob) error {
	if len(blobs) == 0 {
		return nil
	}

	writes := make([]types.TransactWriteItem, 0, len(blobs))
	for _, b := range blobs {
		av, err := attributevalue.MarshalMap(toCollectionItem(b.Key, b.Data))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(s.tableName),
				Item:      av,
			},
		})
	}

	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func toCollectionItem(key string, data []byte) collectionItem {
	return collectionItem{
		Key:       key,
		Items:     string(data),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
