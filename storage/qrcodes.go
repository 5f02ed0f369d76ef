package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/linikers/rocketstar/logging"
)

type QRCodeStorage interface {
	Get(ctx context.Context, code string) (*QRCode, error)
	GetAll(ctx context.Context) ([]*QRCode, error)
	Put(ctx context.Context, qrCode *QRCode) error
	// Consume atomically flips IsUsed to true, guarded on the code being
	// unused and unexpired at write time. Returns ErrNotFound, ErrAlreadyUsed
	// or ErrExpired when the guard fails.
	Consume(ctx context.Context, code string, usedAt time.Time) error
	Delete(ctx context.Context, code string) error
}

type DynamoQRCodeStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoQRCodeStorage) Get(ctx context.Context, code string) (*QRCode, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("QR: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("QR: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var qrCode QRCode
	if err := attributevalue.UnmarshalMap(out.Item, &qrCode); err != nil {
		logging.Log.Errorf("QR: failed to unmarshal result: %v", err)
		return nil, err
	}
	return &qrCode, nil
}

func (s *DynamoQRCodeStorage) GetAll(ctx context.Context) ([]*QRCode, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("QR: scan failed: %v", err)
		return nil, err
	}

	var qrCodes []*QRCode
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &qrCodes); err != nil {
		logging.Log.Errorf("QR: failed to unmarshal list: %v", err)
		return nil, err
	}
	return qrCodes, nil
}

func (s *DynamoQRCodeStorage) Put(ctx context.Context, qrCode *QRCode) error {
	item, err := attributevalue.MarshalMap(qrCode)
	if err != nil {
		logging.Log.Errorf("QR: failed to marshal code: %v", err)
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
			logging.Log.Warnf("QR: code %s already exists", qrCode.Code)
			return ErrAlreadyExists
		}
		logging.Log.Errorf("QR: failed to store code: %v", err)
		return err
	}
	return nil
}

// Consume is the single authored transition of the code state machine. The
// condition re-checks IsUsed and ExpiresAt inside the write so two concurrent
// validators can never both succeed, and an expired code can never flip to used.
func (s *DynamoQRCodeStorage) Consume(ctx context.Context, code string, usedAt time.Time) error {
	usedAtAttr, err := attributevalue.Marshal(usedAt)
	if err != nil {
		logging.Log.Errorf("QR: failed to marshal usedAt: %v", err)
		return err
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: code},
		},
		UpdateExpression:    aws.String("SET IsUsed = :used, UsedAt = :usedAt"),
		ConditionExpression: aws.String("attribute_exists(PK) AND IsUsed = :unused AND ExpiresAt >= :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used":   &types.AttributeValueMemberBOOL{Value: true},
			":usedAt": usedAtAttr,
			":unused": &types.AttributeValueMemberBOOL{Value: false},
			":now":    &types.AttributeValueMemberN{Value: strconv.FormatInt(usedAt.Unix(), 10)},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return s.classifyConsumeFailure(ctx, code, usedAt)
		}
		logging.Log.Errorf("QR: failed to consume code %s: %v", code, err)
		return err
	}
	return nil
}

// classifyConsumeFailure re-reads the code after a failed conditional write to
// report which guard rejected it.
func (s *DynamoQRCodeStorage) classifyConsumeFailure(ctx context.Context, code string, now time.Time) error {
	qrCode, err := s.Get(ctx, code)
	if err != nil {
		return err
	}
	if qrCode.IsUsed {
		return ErrAlreadyUsed
	}
	if now.After(qrCode.ExpiresAt) {
		return ErrExpired
	}
	return ErrConflict
}

func (s *DynamoQRCodeStorage) Delete(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("QR: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("QR: failed to delete code %s: %v", code, err)
		return err
	}
	return nil
}
