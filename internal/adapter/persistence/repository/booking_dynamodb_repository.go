package repository

import (
	"context"
	"errors"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type clientItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type eventItem struct {
	Date         string `dynamodbav:"date,omitempty"`
	StartTime    string `dynamodbav:"start_time,omitempty"`
	EndTime      string `dynamodbav:"end_time,omitempty"`
	Type         string `dynamodbav:"type"`
	Venue        string `dynamodbav:"venue,omitempty"`
	Guests       uint   `dynamodbav:"guests"`
	ServiceStyle string `dynamodbav:"service_style,omitempty"`
}

type billingItem struct {
	TotalCost          string `dynamodbav:"total_cost"`
	ReservationFee     string `dynamodbav:"reservation_fee"`
	AmountPaid         string `dynamodbav:"amount_paid"`
	OperationalCost    string `dynamodbav:"operational_cost"`
	ReservationStatus  string `dynamodbav:"reservation_status"`
	FiftyPercentStatus string `dynamodbav:"fifty_percent_status"`
	FullPaymentStatus  string `dynamodbav:"full_payment_status"`
}

type addOnItem struct {
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type timelineItem struct {
	Date   string `dynamodbav:"date"`
	Actor  string `dynamodbav:"actor"`
	Action string `dynamodbav:"action"`
}

type bookingItem struct {
	RefID           string         `dynamodbav:"ref_id"`
	Client          clientItem     `dynamodbav:"client"`
	Event           eventItem      `dynamodbav:"event"`
	Billing         billingItem    `dynamodbav:"billing"`
	Status          string         `dynamodbav:"status"`
	AddOns          []addOnItem    `dynamodbav:"add_ons,omitempty"`
	Packages        []string       `dynamodbav:"packages,omitempty"`
	Notes           string         `dynamodbav:"notes,omitempty"`
	RejectionReason string         `dynamodbav:"rejection_reason,omitempty"`
	Timeline        []timelineItem `dynamodbav:"timeline,omitempty"`
	CreatedAt       string         `dynamodbav:"created_at,omitempty"`
	UpdatedAt       string         `dynamodbav:"updated_at,omitempty"`
}

// BookingDynamoRepository persists bookings in DynamoDB.
//
// Table requirements:
//   - PK: ref_id (string)
//
// Amounts are stored as decimal strings so nothing is lost to float
// rounding. Documents written by older intake forms may use a flat
// camelCase layout; they are returned as-is and rewritten in the nested
// layout on their next update.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrDefault(tableName, "BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref_id)"),
		ExpressionAttributeNames: map[string]string{
			"#ref_id": "ref_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRecord{}, interfaces.ErrBookingAlreadyExists
		}
		return entities.BookingRecord{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByRefID(ctx context.Context, refID string) (entities.RawBookingDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"ref_id": &types.AttributeValueMemberS{Value: refID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return toRawDocument(out.Item)
}

// List scans the whole table. The ledger folds over every booking, so there
// is no narrower query to run.
func (r *BookingDynamoRepository) List(ctx context.Context) ([]entities.RawBookingDocument, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var docs []entities.RawBookingDocument
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			doc, err := toRawDocument(raw)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Update overwrites the booking if nobody else wrote it since it was read.
// A missing booking yields a zero record.
func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.BookingRecord, prevUpdatedAt time.Time) (entities.BookingRecord, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRecord{}, err
	}

	cond := "attribute_exists(#ref_id) AND attribute_not_exists(#updated_at)"
	var values map[string]types.AttributeValue
	if !prevUpdatedAt.IsZero() {
		cond = "attribute_exists(#ref_id) AND (attribute_not_exists(#updated_at) OR #updated_at = :prev)"
		values = map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberS{Value: formatTimestamp(prevUpdatedAt)},
		}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#ref_id":     "ref_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.BookingRecord{}, nil
			}
			return entities.BookingRecord{}, interfaces.ErrBookingVersionConflict
		}
		return entities.BookingRecord{}, err
	}
	return b, nil
}

func toBookingItem(b entities.BookingRecord) bookingItem {
	it := bookingItem{
		RefID: b.RefID,
		Client: clientItem{
			Name:  b.Client.Name,
			Email: b.Client.Email,
			Phone: b.Client.Phone,
		},
		Event: eventItem{
			StartTime:    b.Event.StartTime,
			EndTime:      b.Event.EndTime,
			Type:         string(b.Event.Type),
			Venue:        b.Event.Venue,
			Guests:       b.Event.Guests,
			ServiceStyle: b.Event.ServiceStyle,
		},
		Billing: billingItem{
			TotalCost:          b.Billing.TotalCost.String(),
			ReservationFee:     b.Billing.ReservationFee.String(),
			AmountPaid:         b.Billing.AmountPaid.String(),
			OperationalCost:    b.Billing.OperationalCost.String(),
			ReservationStatus:  string(b.Billing.ReservationStatus),
			FiftyPercentStatus: string(b.Billing.FiftyPercentStatus),
			FullPaymentStatus:  string(b.Billing.FullPaymentStatus),
		},
		Status:          string(b.Status),
		Packages:        b.Packages,
		Notes:           b.Notes,
		RejectionReason: b.RejectionReason,
		CreatedAt:       formatTimestamp(b.CreatedAt),
		UpdatedAt:       formatTimestamp(b.UpdatedAt),
	}
	if !b.Event.Date.IsZero() {
		it.Event.Date = b.Event.Date.String()
	}
	for _, a := range b.AddOns {
		it.AddOns = append(it.AddOns, addOnItem{Name: a.Name, Price: a.Price.String()})
	}
	for _, e := range b.Timeline {
		it.Timeline = append(it.Timeline, timelineItem{Date: formatTimestamp(e.Date), Actor: e.Actor, Action: e.Action})
	}
	return it
}

// toRawDocument keeps the stored attribute types (strings, float64 numbers,
// nested maps and lists) and leaves interpretation to the ledger.
func toRawDocument(item map[string]types.AttributeValue) (entities.RawBookingDocument, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, err
	}
	return entities.RawBookingDocument(doc), nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
