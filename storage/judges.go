package storage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/linikers/rocketstar/logging"
)

type JudgeStorage interface {
	Get(ctx context.Context, id string) (*Judge, error)
	GetAll(ctx context.Context) ([]*Judge, error)
	Create(ctx context.Context, judge *Judge) error
	Delete(ctx context.Context, id string) error
}

type DynamoJudgeStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoJudgeStorage) Get(ctx context.Context, id string) (*Judge, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("JUDGE: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var judge Judge
	if err := attributevalue.UnmarshalMap(out.Item, &judge); err != nil {
		logging.Log.Errorf("JUDGE: failed to unmarshal result: %v", err)
		return nil, err
	}
	return &judge, nil
}

func (s *DynamoJudgeStorage) GetAll(ctx context.Context) ([]*Judge, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("JUDGE: scan failed: %v", err)
		return nil, err
	}

	var judges []*Judge
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &judges); err != nil {
		logging.Log.Errorf("JUDGE: failed to unmarshal list: %v", err)
		return nil, err
	}
	return judges, nil
}

func (s *DynamoJudgeStorage) Create(ctx context.Context, judge *Judge) error {
	item, err := attributevalue.MarshalMap(judge)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to marshal judge: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("JUDGE: judge %s already exists", judge.ID)
			return ErrAlreadyExists
		}
		logging.Log.Errorf("JUDGE: failed to create judge: %v", err)
		return err
	}
	return nil
}

func (s *DynamoJudgeStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to delete judge %s: %v", id, err)
		return err
	}
	return nil
}
