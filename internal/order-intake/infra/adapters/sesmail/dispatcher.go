// Package sesmail implements the NotificationDispatcher port on top of
// Amazon SESv2. Each accepted order produces two sends: the owner notice
// and the customer confirmation.
package sesmail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
)

const defaultTimeout = 10 * time.Second

// SESAPI is the slice of the SESv2 client the dispatcher needs, kept
// narrow so tests can substitute a fake.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Dispatcher struct {
	client        SESAPI
	businessEmail string
	noReplyEmail  string
	supportEmail  string
	timeout       time.Duration
}

// NewDispatcher wires the SES client with the fixed addresses from
// configuration: sender, business inbox, and the support address shown in
// the customer footer.
func NewDispatcher(client SESAPI, businessEmail, noReplyEmail, supportEmail string) *Dispatcher {
	return &Dispatcher{
		client:        client,
		businessEmail: businessEmail,
		noReplyEmail:  noReplyEmail,
		supportEmail:  supportEmail,
		timeout:       defaultTimeout,
	}
}

// Dispatch renders and sends both emails sequentially. Either send
// failing fails the whole dispatch; the caller reports a server error so
// the client can retry the request.
func (d *Dispatcher) Dispatch(ctx context.Context, order *entity.OrderRequest, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ownerBody, err := renderOwnerEmail(order, orderID)
	if err != nil {
		return err
	}
	customerBody, err := renderCustomerEmail(order, orderID, d.supportEmail)
	if err != nil {
		return err
	}

	if err := d.send(ctx, d.businessEmail, "New Order Received - "+orderID, ownerBody); err != nil {
		return fmt.Errorf("send owner notice: %w", err)
	}
	if err := d.send(ctx, strings.ToLower(order.Email), "Order Confirmation - "+orderID, customerBody); err != nil {
		return fmt.Errorf("send customer confirmation: %w", err)
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, to, subject, body string) error {
	_, err := d.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(d.noReplyEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	return err
}
