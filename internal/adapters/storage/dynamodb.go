package storage

import (
	"context"
	"fmt"

	"entries-api/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoDBStore
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoDBStore stores entries in a DynamoDB table whose partition key is "id"
type DynamoDBStore struct {
	db        DynamoDBAPI
	tableName string
	logger    logrus.FieldLogger
}

// NewDynamoDBStore creates a store for tableName using the given client
func NewDynamoDBStore(db DynamoDBAPI, tableName string, logger logrus.FieldLogger) *DynamoDBStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &DynamoDBStore{
		db:        db,
		tableName: tableName,
		logger:    logger.WithField("table", tableName),
	}
}

// TableName returns the table the store writes to
func (s *DynamoDBStore) TableName() string {
	return s.tableName
}

// Save implements Saver.Save with a single unconditional PutItem
func (s *DynamoDBStore) Save(ctx context.Context, id string) error {
	item, err := attributevalue.MarshalMap(models.NewEntry(id))
	if err != nil {
		return NewBackendError("Save", id, fmt.Errorf("failed to marshal entry: %w", err))
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return NewBackendError("Save", id, err)
	}

	s.logger.WithField("entry_id", id).Debug("Entry written")
	return nil
}

// Get implements Getter.Get with a single GetItem
func (s *DynamoDBStore) Get(ctx context.Context, id string) (*models.Entry, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, NewBackendError("Get", id, err)
	}

	if len(out.Item) == 0 {
		return nil, NewNotFoundError("Get", id)
	}

	var entry models.Entry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		return nil, NewBackendError("Get", id, fmt.Errorf("%w: %v", ErrInvalidItem, err))
	}

	return &entry, nil
}

// Close implements EntryStore.Close
func (s *DynamoDBStore) Close() error {
	return nil
}
