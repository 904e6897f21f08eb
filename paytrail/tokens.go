package paytrail

import (
	"context"
	"net/http"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
	"github.com/alapierre/go-paytrail-client/paytrail/signature"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

// CreateAddCardForm posts the hosted card form. The form is signed over its
// own checkout- fields and carries the signature in the body, so no signed
// headers are sent and the answer (normally a redirect to the form) is not
// verified. Empty account, algorithm, method, nonce and timestamp are filled
// in by the client; req itself is not modified.
func (c *Client) CreateAddCardForm(ctx context.Context, req *request.AddCardFormRequest) (*response.AddCardFormResponse, error) {
	if req == nil {
		return nil, emptyRequest("AddCardFormRequest")
	}

	form := *req
	if form.CheckoutAccount == 0 {
		form.CheckoutAccount = c.merchantID
	}
	if form.CheckoutAlgorithm == "" {
		form.CheckoutAlgorithm = signature.Algorithm
	}
	if form.CheckoutMethod == "" {
		form.CheckoutMethod = http.MethodPost
	}
	if form.CheckoutNonce == "" {
		form.CheckoutNonce = c.nonce()
	}
	if form.CheckoutTimestamp == "" {
		form.CheckoutTimestamp = c.timestamp()
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	form.Signature = signature.Calculate(form.SignedFields(), "", c.secretKey)

	resp, err := c.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		URI:     "/tokenization/addcard-form",
		Headers: map[string]string{"content-type": contentType},
		Body:    wire.Marshal(&form),
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(logrus.Fields{"operation": "CreateAddCardForm", "status": resp.StatusCode})
	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("request rejected")
		return nil, api.NewClientError(resp)
	}

	location := resp.Header.Get("Location")
	if resp.StatusCode >= http.StatusMultipleChoices && location == "" {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "redirect %d without location", resp.StatusCode)
	}
	log.Debug("add card form opened")

	return &response.AddCardFormResponse{
		StatusCode:  resp.StatusCode,
		RedirectURL: location,
		Body:        resp.Body,
	}, nil
}

// GetToken exchanges the tokenization id received on the add-card redirect
// for a card token.
func (c *Client) GetToken(ctx context.Context, req *request.GetTokenRequest) (*response.GetTokenResponse, error) {
	if req == nil {
		return nil, emptyRequest("GetTokenRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := &response.GetTokenResponse{}
	err := c.do(ctx, call{
		operation:      "GetToken",
		method:         http.MethodPost,
		uri:            tokenizationURI(req.CheckoutTokenizationID),
		body:           req,
		tokenizationID: req.CheckoutTokenizationID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CitPaymentCharge charges a card token with the customer present. A 403
// answer carrying a threeDSecureUrl is returned as a result: the customer
// must be redirected there to finish the payment.
func (c *Client) CitPaymentCharge(ctx context.Context, req *request.CitPaymentRequest) (*response.CitPaymentResponse, error) {
	return c.citPayment(ctx, "CitPaymentCharge", "/payments/token/cit/charge", req)
}

// CitPaymentAuthorizationHold reserves funds on a card token with the
// customer present. 403 is handled as in CitPaymentCharge.
func (c *Client) CitPaymentAuthorizationHold(ctx context.Context, req *request.CitPaymentRequest) (*response.CitPaymentResponse, error) {
	return c.citPayment(ctx, "CitPaymentAuthorizationHold", "/payments/token/cit/authorization-hold", req)
}

func (c *Client) citPayment(ctx context.Context, operation, uri string, req *request.CitPaymentRequest) (*response.CitPaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("CitPaymentRequest")
	}

	out := &response.CitPaymentResponse{}
	err := c.do(ctx, call{
		operation:       operation,
		method:          http.MethodPost,
		uri:             uri,
		body:            req,
		validate:        req,
		acceptForbidden: true,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MitPaymentCharge(ctx context.Context, req *request.MitPaymentRequest) (*response.MitPaymentResponse, error) {
	return c.mitPayment(ctx, "MitPaymentCharge", "/payments/token/mit/charge", req)
}

func (c *Client) MitPaymentAuthorizationHold(ctx context.Context, req *request.MitPaymentRequest) (*response.MitPaymentResponse, error) {
	return c.mitPayment(ctx, "MitPaymentAuthorizationHold", "/payments/token/mit/authorization-hold", req)
}

// CitPaymentCommit captures an authorization hold made with a CIT request.
func (c *Client) CitPaymentCommit(ctx context.Context, req *request.CitPaymentRequest, transactionID string) (*response.CitPaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("CitPaymentRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	out := &response.CitPaymentResponse{}
	err := c.do(ctx, call{
		operation:     "CitPaymentCommit",
		method:        http.MethodPost,
		uri:           paymentURI(transactionID, "/token/commit"),
		body:          req,
		transactionID: transactionID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MitPaymentCommit captures an authorization hold made with a MIT request.
func (c *Client) MitPaymentCommit(ctx context.Context, req *request.MitPaymentRequest, transactionID string) (*response.MitPaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("MitPaymentRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	out := &response.MitPaymentResponse{}
	err := c.do(ctx, call{
		operation:     "MitPaymentCommit",
		method:        http.MethodPost,
		uri:           paymentURI(transactionID, "/token/commit"),
		body:          req,
		transactionID: transactionID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) mitPayment(ctx context.Context, operation, uri string, req *request.MitPaymentRequest) (*response.MitPaymentResponse, error) {
	if req == nil {
		return nil, emptyRequest("MitPaymentRequest")
	}

	out := &response.MitPaymentResponse{}
	err := c.do(ctx, call{
		operation: operation,
		method:    http.MethodPost,
		uri:       uri,
		body:      req,
		validate:  req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RevertPaymentAuthorizationHold releases funds reserved by an
// authorization hold.
func (c *Client) RevertPaymentAuthorizationHold(ctx context.Context, req *request.RevertPaymentAuthHoldRequest) (*response.RevertPaymentAuthHoldResponse, error) {
	if req == nil {
		return nil, emptyRequest("RevertPaymentAuthHoldRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := &response.RevertPaymentAuthHoldResponse{}
	err := c.do(ctx, call{
		operation:     "RevertPaymentAuthorizationHold",
		method:        http.MethodPost,
		uri:           paymentURI(req.TransactionID, "/token/revert"),
		body:          req,
		transactionID: req.TransactionID,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
