package storage

import (
	"context"
	"fmt"
	"strings"

	"entries-api/internal/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// StorageType represents the type of storage implementation
type StorageType string

const (
	StorageTypeDynamoDB StorageType = "dynamodb"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeMemory   StorageType = "memory"
)

// Factory creates EntryStore instances based on configuration
type Factory struct {
	logger logrus.FieldLogger
}

// NewFactory creates a new storage factory
func NewFactory(logger logrus.FieldLogger) *Factory {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Factory{
		logger: logger,
	}
}

// Create creates an EntryStore instance based on the provided configuration
func (f *Factory) Create(ctx context.Context, config *StorageConfig) (EntryStore, error) {
	if config == nil {
		return nil, fmt.Errorf("storage config is required")
	}
	if config.TableName == "" {
		return nil, fmt.Errorf("table name is required")
	}

	storageType := StorageType(strings.ToLower(config.Type))

	var store EntryStore
	var err error

	switch storageType {
	case StorageTypeDynamoDB:
		store, err = f.createDynamoDBStore(ctx, config)
	case StorageTypeSQLite:
		store, err = f.createSQLiteStore(config)
	case StorageTypeMemory:
		store = NewMemoryStore(config.TableName)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s storage: %w", config.Type, err)
	}

	f.logger.WithFields(logrus.Fields{
		"storage_type": storageType,
		"table":        config.TableName,
	}).Info("Entry store initialized")

	return store, nil
}

func (f *Factory) createDynamoDBStore(ctx context.Context, config *StorageConfig) (EntryStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if config.Region != "" {
		opts = append(opts, awsconfig.WithRegion(config.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	return NewDynamoDBStore(client, config.TableName, f.logger), nil
}

func (f *Factory) createSQLiteStore(config *StorageConfig) (EntryStore, error) {
	path := config.Path
	if path == "" {
		path = "./data/entries.db" // Default path
	}

	db, err := database.Open(path, f.logger)
	if err != nil {
		return nil, err
	}

	return NewSQLiteStore(db, config.TableName, f.logger), nil
}
