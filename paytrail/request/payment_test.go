package request

import (
	"math"
	"testing"

	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(price, units int) model.Item {
	return model.Item{
		UnitPrice:     model.Ptr(price),
		Units:         model.Ptr(units),
		VatPercentage: model.Ptr(24.0),
		ProductCode:   "pr1",
		DeliveryDate:  model.Ptr("2023-01-01"),
	}
}

func validPayment() *PaymentRequest {
	return &PaymentRequest{
		Stamp:     "RequestTest-1",
		Reference: "5",
		Amount:    500,
		Currency:  CurrencyEUR,
		Language:  LanguageFI,
		Items:     []model.Item{item(100, 1), item(200, 2)},
		Customer:  &model.Customer{Email: "customer@example.com"},
		RedirectUrls: &model.CallbackUrl{
			Success: "https://somedomain.com/success",
			Cancel:  "https://somedomain.com/cancel",
		},
	}
}

func TestPaymentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *PaymentRequest)
		message string
	}{
		{"valid", func(r *PaymentRequest) {}, ""},
		{"valid without items", func(r *PaymentRequest) { r.Items = nil }, ""},
		{"amount empty", func(r *PaymentRequest) { r.Amount = 0 }, "Amount is empty"},
		{"amount negative", func(r *PaymentRequest) { r.Amount = -100; r.Items = nil }, "Amount is empty"},
		{"amount mismatch", func(r *PaymentRequest) { r.Amount = 499 }, "Amount doesnt match ItemsTotal"},
		{"items total wraps around", func(r *PaymentRequest) {
			r.Amount = 4
			r.Items = []model.Item{item(4, math.MaxInt/4+2)}
		}, "Amount doesnt match ItemsTotal"},
		{"stamp empty", func(r *PaymentRequest) { r.Stamp = "" }, "Stamp is empty"},
		{"reference empty", func(r *PaymentRequest) { r.Reference = "" }, "Reference is empty"},
		{"currency empty", func(r *PaymentRequest) { r.Currency = "" }, "Currency is empty"},
		{"currency unsupported", func(r *PaymentRequest) { r.Currency = "USD" }, "Unsupported currency chosen"},
		{"language unsupported", func(r *PaymentRequest) { r.Language = "DE" }, "Unsupported language chosen"},
		{"language empty", func(r *PaymentRequest) { r.Language = "" }, "Unsupported language chosen"},
		{"customer missing", func(r *PaymentRequest) { r.Customer = nil }, "Customer is empty"},
		{"redirect urls missing", func(r *PaymentRequest) { r.RedirectUrls = nil }, "RedirectUrls is empty"},
		{"invalid item", func(r *PaymentRequest) { r.Items[1].ProductCode = "" }, "productCode is empty"},
		{"item without price skips total", func(r *PaymentRequest) { r.Items[0].UnitPrice = nil }, "Item unitPrice is empty"},
		{"invalid customer", func(r *PaymentRequest) { r.Customer.Email = "nope" }, "Email is not a valid email address"},
		{"invalid delivery address", func(r *PaymentRequest) { r.DeliveryAddress = &model.Address{} }, "streetAddress is empty"},
		{"invalid invoicing address", func(r *PaymentRequest) {
			r.InvoicingAddress = &model.Address{StreetAddress: "s", PostalCode: "p", City: "c"}
		}, "country is empty"},
		{"invalid redirect url", func(r *PaymentRequest) { r.RedirectUrls.Success = "nope" }, "Success is not a valid URL"},
		{"invalid callback url", func(r *PaymentRequest) { r.CallbackUrls = &model.CallbackUrl{Success: "https://a.example.com"} }, "Cancel is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validPayment()
			tt.mutate(r)
			err := r.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestShopInShopPaymentRequest_Validate(t *testing.T) {
	r := &ShopInShopPaymentRequest{PaymentRequest: *validPayment()}
	assert.EqualError(t, r.Validate(), "merchant is empty")

	for i := range r.Items {
		r.Items[i].Merchant = model.Ptr("695861")
		r.Items[i].Commission = &model.Commission{Merchant: "695874", Amount: model.Ptr(10)}
	}
	assert.NoError(t, r.Validate())

	r.Amount = 0
	assert.EqualError(t, r.Validate(), "Amount is empty")
}

func TestCitMitPaymentRequest_TokenFirst(t *testing.T) {
	cit := &CitPaymentRequest{}
	assert.EqualError(t, cit.Validate(), "Token is empty")

	cit.Token = "c7441208-c2a1-4a10-8eb6-458bd8eaa65e"
	assert.EqualError(t, cit.Validate(), "Amount is empty")

	cit.PaymentRequest = *validPayment()
	assert.NoError(t, cit.Validate())

	mit := &MitPaymentRequest{PaymentRequest: *validPayment()}
	assert.EqualError(t, mit.Validate(), "Token is empty")
	mit.Token = "token"
	assert.NoError(t, mit.Validate())
}

func TestPaymentRequest_WireOmitsNulls(t *testing.T) {
	r := &PaymentRequest{
		Stamp:     "s",
		Reference: "r",
		Amount:    100,
		Currency:  CurrencyEUR,
		Language:  LanguageEN,
		Customer:  &model.Customer{Email: "a@example.com"},
		RedirectUrls: &model.CallbackUrl{
			Success: "https://a.example.com/s",
			Cancel:  "https://a.example.com/c",
		},
	}

	assert.Equal(t,
		`{"stamp":"s","reference":"r","amount":100,"currency":"EUR","language":"EN","customer":{"email":"a@example.com"},"redirectUrls":{"success":"https://a.example.com/s","cancel":"https://a.example.com/c"}}`,
		string(wire.Marshal(r)))
}

func TestPaymentRequest_RoundTrip(t *testing.T) {
	in := validPayment()
	in.DeliveryAddress = &model.Address{StreetAddress: "s", PostalCode: "p", City: "c", Country: "FI"}
	in.CallbackUrls = &model.CallbackUrl{Success: "https://a.example.com/s", Cancel: "https://a.example.com/c"}
	in.CallbackDelay = model.Ptr(30)
	in.Groups = []string{"bank", "mobile"}

	var out PaymentRequest
	require.NoError(t, wire.Unmarshal(wire.Marshal(in), &out))
	assert.Equal(t, *in, out)
}

func TestCitPaymentRequest_RoundTrip(t *testing.T) {
	in := &CitPaymentRequest{PaymentRequest: *validPayment(), Token: "tok"}

	var out CitPaymentRequest
	require.NoError(t, wire.Unmarshal(wire.Marshal(in), &out))
	assert.Equal(t, *in, out)

	var mit MitPaymentRequest
	require.NoError(t, wire.Unmarshal(wire.Marshal(&MitPaymentRequest{PaymentRequest: *validPayment(), Token: "tok"}), &mit))
	assert.Equal(t, "tok", mit.Token)
}
