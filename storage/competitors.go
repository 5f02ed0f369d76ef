package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/linikers/rocketstar/logging"
)

type CompetitorStorage interface {
	Get(ctx context.Context, id string) (*Competitor, error)
	GetAll(ctx context.Context) ([]*Competitor, error)
	Create(ctx context.Context, competitor *Competitor) error
	// Update persists the full competitor conditioned on the version that was
	// read. Returns ErrConflict when another write got there first.
	Update(ctx context.Context, competitor *Competitor) error
	Delete(ctx context.Context, id string) error
}

type DynamoCompetitorStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoCompetitorStorage) Get(ctx context.Context, id string) (*Competitor, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("COMPETITOR: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("COMPETITOR: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var competitor Competitor
	if err := attributevalue.UnmarshalMap(out.Item, &competitor); err != nil {
		logging.Log.Errorf("COMPETITOR: failed to unmarshal result: %v", err)
		return nil, err
	}
	return &competitor, nil
}

func (s *DynamoCompetitorStorage) GetAll(ctx context.Context) ([]*Competitor, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("COMPETITOR: scan failed: %v", err)
		return nil, err
	}

	var competitors []*Competitor
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &competitors); err != nil {
		logging.Log.Errorf("COMPETITOR: failed to unmarshal list: %v", err)
		return nil, err
	}
	return competitors, nil
}

func (s *DynamoCompetitorStorage) Create(ctx context.Context, competitor *Competitor) error {
	competitor.Version = 1
	if competitor.Votes == nil {
		competitor.Votes = []VoteEntry{}
	}
	item, err := attributevalue.MarshalMap(competitor)
	if err != nil {
		logging.Log.Errorf("COMPETITOR: failed to marshal competitor: %v", err)
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
			logging.Log.Warnf("COMPETITOR: competitor %s already exists", competitor.ID)
			return ErrAlreadyExists
		}
		logging.Log.Errorf("COMPETITOR: failed to create competitor: %v", err)
		return err
	}
	return nil
}

// Update is the compare-and-swap half of the vote flow: the put only lands when
// the stored Version still equals the one the caller read. On success the
// competitor's Version is bumped in place so the caller holds the fresh record.
func (s *DynamoCompetitorStorage) Update(ctx context.Context, competitor *Competitor) error {
	readVersion := competitor.Version
	competitor.Version = readVersion + 1

	item, err := attributevalue.MarshalMap(competitor)
	if err != nil {
		competitor.Version = readVersion
		logging.Log.Errorf("COMPETITOR: failed to marshal competitor: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK) AND Version = :readVersion"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":readVersion": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		},
	})
	if err != nil {
		competitor.Version = readVersion
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			// Lost the race, or the competitor vanished. Distinguish so the
			// caller retries only on a genuine version clash.
			if _, getErr := s.Get(ctx, competitor.ID); errors.Is(getErr, ErrNotFound) {
				return ErrNotFound
			}
			return ErrConflict
		}
		logging.Log.Errorf("COMPETITOR: failed to update competitor %s: %v", competitor.ID, err)
		return err
	}
	return nil
}

func (s *DynamoCompetitorStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("COMPETITOR: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("COMPETITOR: failed to delete competitor %s: %v", id, err)
		return err
	}
	logging.Log.Infof("COMPETITOR: deleted competitor %s", id)
	return nil
}
