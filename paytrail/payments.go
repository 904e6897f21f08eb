package paytrail

import (
	"context"
	"net/http"

	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
)

// CreatePayment opens a payment. It is not idempotent: a retry needs a
// fresh stamp.
func (c *Client) CreatePayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("PaymentRequest")
	}
	return c.createPayment(ctx, "CreatePayment", req, req)
}

// CreateShopInShopPayment opens an aggregated marketplace payment whose
// items each belong to a sub-merchant.
func (c *Client) CreateShopInShopPayment(ctx context.Context, req *request.ShopInShopPaymentRequest) (*response.PaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("ShopInShopPaymentRequest")
	}
	return c.createPayment(ctx, "CreateShopInShopPayment", req, req)
}

func (c *Client) createPayment(ctx context.Context, operation string, v validation.Validatable, body wire.Encoder) (*response.PaymentResponse, error) {
	out := &response.PaymentResponse{}
	err := c.do(ctx, call{
		operation: operation,
		method:    http.MethodPost,
		uri:       "/payments",
		body:      body,
		validate:  v,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePaymentAndAddCard opens a payment that also tokenizes the card.
func (c *Client) CreatePaymentAndAddCard(ctx context.Context, req *request.PaymentRequest) (*response.AddCardPaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("PaymentRequest")
	}

	out := &response.AddCardPaymentResponse{}
	err := c.do(ctx, call{
		operation: "CreatePaymentAndAddCard",
		method:    http.MethodPost,
		uri:       "/tokenization/pay-and-add-card",
		body:      req,
		validate:  req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PaymentStatus(ctx context.Context, req *request.PaymentStatusRequest) (*response.PaymentStatusResponse, error) {
	if req == nil {
		return nil, emptyRequest("PaymentStatusRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := &response.PaymentStatusResponse{}
	err := c.do(ctx, call{
		operation:     "PaymentStatus",
		method:        http.MethodGet,
		uri:           paymentURI(req.TransactionID, ""),
		transactionID: req.TransactionID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActivateInvoice activates an invoice payment created with manual
// activation. The request has no body.
func (c *Client) ActivateInvoice(ctx context.Context, transactionID string) (*response.InvoiceActivationResponse, error) {
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	out := &response.InvoiceActivationResponse{}
	err := c.do(ctx, call{
		operation:     "ActivateInvoice",
		method:        http.MethodPost,
		uri:           paymentURI(transactionID, "/activate-invoice"),
		transactionID: transactionID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
