package repository

import (
	"context"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsRefIDIndex = "ref_id-index"

type paymentReceiptItem struct {
	ID                 string         `dynamodbav:"id"`
	RefID              string         `dynamodbav:"ref_id"`
	Stage              string         `dynamodbav:"stage"`
	Amount             string         `dynamodbav:"amount"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentReceiptDynamoRepository persists gateway receipts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ref_id-index (PK: ref_id)

type PaymentReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentReceiptRepository = (*PaymentReceiptDynamoRepository)(nil)

func NewPaymentReceiptDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentReceiptDynamoRepository {
	return &PaymentReceiptDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, "PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentReceiptDynamoRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toPaymentReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentReceipt{}, nil
	}

	var it paymentReceiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentReceipt{}, err
	}
	return fromPaymentReceiptItem(it), nil
}

func (r *PaymentReceiptDynamoRepository) ListByRefID(ctx context.Context, refID string) ([]entities.PaymentReceipt, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRefIDIndex),
		KeyConditionExpression: aws.String("ref_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: refID},
		},
	})

	items := []entities.PaymentReceipt{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentReceiptItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentReceiptItem(it))
		}
	}
	return items, nil
}

func toPaymentReceiptItem(p entities.PaymentReceipt) paymentReceiptItem {
	return paymentReceiptItem{
		ID:                 p.ID,
		RefID:              p.RefID,
		Stage:              string(p.Stage),
		Amount:             p.Amount.String(),
		Date:               formatTimestamp(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentReceiptItem(it paymentReceiptItem) entities.PaymentReceipt {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := entities.ParseMoney(it.Amount)
	return entities.PaymentReceipt{
		ID:                 it.ID,
		RefID:              it.RefID,
		Stage:              entities.PaymentStage(it.Stage),
		Amount:             amount,
		Date:               dt,
		Status:             entities.ReceiptStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
