package paytrail

import (
	"context"
	"net/http"

	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
)

// Refund refunds a paid payment, fully or by items.
func (c *Client) Refund(ctx context.Context, req *request.RefundRequest, transactionID string) (*response.RefundResponse, error) {
	if req == nil {
		return nil, emptyRequest("RefundRequest")
	}
	return c.refund(ctx, call{
		operation: "Refund",
		uri:       paymentURI(transactionID, "/refund"),
		body:      req,
		validate:  req,
	}, transactionID)
}

// EmailRefund refunds a payment that cannot be refunded to the original
// method. The customer receives instructions by email.
func (c *Client) EmailRefund(ctx context.Context, req *request.EmailRefundRequest, transactionID string) (*response.RefundResponse, error) {
	if req == nil {
		return nil, emptyRequest("EmailRefundRequest")
	}
	return c.refund(ctx, call{
		operation: "EmailRefund",
		uri:       paymentURI(transactionID, "/refund/email"),
		body:      req,
		validate:  req,
	}, transactionID)
}

func (c *Client) refund(ctx context.Context, in call, transactionID string) (*response.RefundResponse, error) {
	if err := in.validate.Validate(); err != nil {
		return nil, err
	}
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	in.method = http.MethodPost
	in.transactionID = transactionID
	in.validate = nil

	out := &response.RefundResponse{}
	if err := c.do(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
