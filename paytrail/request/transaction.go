package request

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
)

type PaymentStatusRequest struct {
	TransactionID string
}

func (r *PaymentStatusRequest) Validate() error {
	return validation.Run(transactionIDRule(r.TransactionID))
}

// RevertPaymentAuthHoldRequest releases an authorization hold.
type RevertPaymentAuthHoldRequest struct {
	TransactionID string
}

func (r *RevertPaymentAuthHoldRequest) Validate() error {
	return validation.Run(transactionIDRule(r.TransactionID))
}

func (r *RevertPaymentAuthHoldRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("transactionId", r.TransactionID)
}

// GetTokenRequest exchanges a tokenization id from the add-card redirect
// for a reusable card token.
type GetTokenRequest struct {
	CheckoutTokenizationID string
}

func (r *GetTokenRequest) Validate() error {
	return validation.Run(
		validation.NotEmpty(r.CheckoutTokenizationID, "checkoutTokenizationId", "checkout-tokenization id is empty"),
	)
}

func (r *GetTokenRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("checkoutTokenizationId", r.CheckoutTokenizationID)
}

func transactionIDRule(id string) validation.Rule {
	return validation.NotEmpty(id, "transactionId", "Transaction id is empty")
}
