package paytrail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
	"github.com/alapierre/go-paytrail-client/paytrail/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCit() *request.CitPaymentRequest {
	return &request.CitPaymentRequest{PaymentRequest: *testPayment(), Token: "c7441208-c2a1-4a10-8eb6-458bd8eaa64f"}
}

func testMit() *request.MitPaymentRequest {
	return &request.MitPaymentRequest{PaymentRequest: *testPayment(), Token: "c7441208-c2a1-4a10-8eb6-458bd8eaa64f"}
}

func TestClient_CitPaymentCharge(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusCreated, `{"transactionId":"tx-cit"}`)
	c := newTestClient(t, srv.URL)

	res, err := c.CitPaymentCharge(context.Background(), testCit())
	require.NoError(t, err)
	assert.Equal(t, "tx-cit", res.TransactionID)
	assert.False(t, res.RequiresThreeDSecure())

	ex := f.last()
	assert.Equal(t, "/payments/token/cit/charge", ex.Path)
	assert.Contains(t, ex.Body, `"token":"c7441208-c2a1-4a10-8eb6-458bd8eaa64f"`)
}

func TestClient_CitForbiddenWithThreeDSecure(t *testing.T) {
	for name, call := range map[string]func(*Client) (interface{}, error){
		"charge": func(c *Client) (interface{}, error) {
			return c.CitPaymentCharge(context.Background(), testCit())
		},
		"authorization hold": func(c *Client) (interface{}, error) {
			return c.CitPaymentAuthorizationHold(context.Background(), testCit())
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, srv := newFakeAPI(t, http.StatusForbidden, `{"transactionId":"tx-3ds","threeDSecureUrl":"https://3ds.example/verify"}`)
			c := newTestClient(t, srv.URL)

			v, err := call(c)
			require.NoError(t, err)

			res := v.(*response.CitPaymentResponse)
			assert.Equal(t, "tx-3ds", res.TransactionID)
			require.NotNil(t, res.ThreeDSecureURL)
			assert.Equal(t, "https://3ds.example/verify", *res.ThreeDSecureURL)
			assert.True(t, res.RequiresThreeDSecure())
		})
	}
}

func TestClient_CitForbiddenMustBeSigned(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusForbidden, `{"transactionId":"tx-3ds","threeDSecureUrl":"https://evil.example"}`)
	f.secret = "not the merchant secret"
	c := newTestClient(t, srv.URL)

	res, err := c.CitPaymentCharge(context.Background(), testCit())
	assert.Nil(t, res)

	var he *signature.HmacError
	assert.ErrorAs(t, err, &he)
}

func TestClient_CitForbiddenWithPlainBody(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusForbidden, `Forbidden`)
	c := newTestClient(t, srv.URL)

	res, err := c.CitPaymentCharge(context.Background(), testCit())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Empty(t, res.TransactionID)
	assert.Nil(t, res.ThreeDSecureURL)
	assert.False(t, res.RequiresThreeDSecure())
}

func TestClient_DecodeErrorOnSuccess(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusCreated, `not json`)
	c := newTestClient(t, srv.URL)

	res, err := c.CitPaymentCharge(context.Background(), testCit())
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestClient_CitForbiddenWithoutBody(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusForbidden, ``)
	c := newTestClient(t, srv.URL)

	_, err := c.CitPaymentCharge(context.Background(), testCit())

	var ce *api.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusForbidden, ce.StatusCode)
}

func TestClient_MitForbiddenIsClientError(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusForbidden, `{"transactionId":"tx-mit","threeDSecureUrl":"https://3ds.example"}`)
	c := newTestClient(t, srv.URL)

	_, err := c.MitPaymentCharge(context.Background(), testMit())

	var ce *api.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusForbidden, ce.StatusCode)
}

func TestClient_MitPayments(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusCreated, `{"transactionId":"tx-mit"}`)
	c := newTestClient(t, srv.URL)

	res, err := c.MitPaymentCharge(context.Background(), testMit())
	require.NoError(t, err)
	assert.Equal(t, "tx-mit", res.TransactionID)
	assert.Equal(t, "/payments/token/mit/charge", f.last().Path)

	_, err = c.MitPaymentAuthorizationHold(context.Background(), testMit())
	require.NoError(t, err)
	assert.Equal(t, "/payments/token/mit/authorization-hold", f.last().Path)

	_, err = c.MitPaymentCommit(context.Background(), testMit(), "tx-mit")
	require.NoError(t, err)
	ex := f.last()
	assert.Equal(t, "/payments/tx-mit/token/commit", ex.Path)
	assert.Equal(t, "tx-mit", ex.Header["checkout-transaction-id"])
}

func TestClient_TokenRequiredFirst(t *testing.T) {
	c, calls := countingClient(t)

	req := testMit()
	req.Token = ""
	req.Amount = 0
	_, err := c.MitPaymentCharge(context.Background(), req)
	assert.EqualError(t, err, "Token is empty")

	cit := testCit()
	cit.Token = ""
	_, err = c.CitPaymentCommit(context.Background(), cit, "tx-1")
	assert.EqualError(t, err, "Token is empty")

	_, err = c.CitPaymentCommit(context.Background(), testCit(), "")
	assert.ErrorIs(t, err, ErrMissingTransactionID)

	assert.Zero(t, *calls)
}

func TestClient_CitPaymentCommit(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusCreated, `{"transactionId":"tx-cit"}`)
	c := newTestClient(t, srv.URL)

	res, err := c.CitPaymentCommit(context.Background(), testCit(), "tx-cit")
	require.NoError(t, err)
	assert.Equal(t, "tx-cit", res.TransactionID)
	assert.Equal(t, "/payments/tx-cit/token/commit", f.last().Path)
}

func TestClient_RevertPaymentAuthorizationHold(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusOK, `{"transactionId":"tx-1"}`)
	c := newTestClient(t, srv.URL)

	res, err := c.RevertPaymentAuthorizationHold(context.Background(), &request.RevertPaymentAuthHoldRequest{TransactionID: "tx-1"})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", res.TransactionID)

	ex := f.last()
	assert.Equal(t, "/payments/tx-1/token/revert", ex.Path)
	assert.JSONEq(t, `{"transactionId":"tx-1"}`, ex.Body)

	_, err = c.RevertPaymentAuthorizationHold(context.Background(), &request.RevertPaymentAuthHoldRequest{})
	assert.EqualError(t, err, "Transaction id is empty")
	assert.Equal(t, 1, f.calls())
}

func TestClient_GetToken(t *testing.T) {
	f, srv := newFakeAPI(t, http.StatusOK, `{
		"token":"c7441208-c2a1-4a10-8eb6-458bd8eaa64f",
		"card":{"type":"Visa","bin":"415301","partial_pan":"0024","expire_year":"2023","expire_month":"11","cvc_required":"no","funding":"debit","category":"unknown","country_code":"FI","pan_fingerprint":"693a68deec6d6fa363c72108f8d656d4fd0b6765f5457dd1c139523f4daaafce","card_fingerprint":"c34cdd1952deb81734c012fbb11eabc56c4d61d198f28b448327ccf13f45417f"},
		"customer":{"network_address":"93.174.192.154","country_code":"FI"}
	}`)
	c := newTestClient(t, srv.URL)

	res, err := c.GetToken(context.Background(), &request.GetTokenRequest{CheckoutTokenizationID: "tok-1"})
	require.NoError(t, err)

	assert.Equal(t, "c7441208-c2a1-4a10-8eb6-458bd8eaa64f", res.Token)
	require.NotNil(t, res.Card)
	assert.Equal(t, "0024", res.Card.PartialPan)
	require.NotNil(t, res.Customer)
	assert.Equal(t, "93.174.192.154", res.Customer.NetworkAddress)
	assert.Nil(t, res.NetworkToken)

	ex := f.last()
	assert.Equal(t, "/tokenization/tok-1", ex.Path)
	assert.Equal(t, "tok-1", ex.Header["checkout-tokenization-id"])
	assert.JSONEq(t, `{"checkoutTokenizationId":"tok-1"}`, ex.Body)
}

func TestClient_CreateAddCardForm(t *testing.T) {
	var (
		header http.Header
		raw    map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Header().Set("Location", "https://services.paytrail.com/pay/add-card/abc")
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	req := &request.AddCardFormRequest{
		CheckoutRedirectSuccessUrl: "https://somedomain.com/success",
		CheckoutRedirectCancelUrl:  "https://somedomain.com/cancel",
		Language:                   request.LanguageEN,
	}

	res, err := c.CreateAddCardForm(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://services.paytrail.com/pay/add-card/abc", res.RedirectURL)
	assert.Empty(t, req.Signature)

	body := make(map[string]string, len(raw))
	for k, v := range raw {
		body[k] = fmt.Sprint(v)
	}
	assert.Equal(t, "375917", body["checkout-account"])
	assert.Equal(t, "sha256", body["checkout-algorithm"])
	assert.Equal(t, "POST", body["checkout-method"])
	assert.Equal(t, testNonce, body["checkout-nonce"])
	assert.Equal(t, "2023-05-30T12:01:02.345678Z", body["checkout-timestamp"])
	assert.Equal(t, "EN", body["language"])

	claimed := body["signature"]
	delete(body, "signature")
	assert.NoError(t, signature.Validate(body, "", claimed, testSecret))

	assert.Empty(t, header.Get("checkout-account"))
	assert.Empty(t, header.Get("signature"))
}

func TestClient_CreateAddCardFormInvalid(t *testing.T) {
	c, calls := countingClient(t)

	_, err := c.CreateAddCardForm(context.Background(), &request.AddCardFormRequest{
		CheckoutMethod:             "PUT",
		CheckoutRedirectSuccessUrl: "https://somedomain.com/success",
		CheckoutRedirectCancelUrl:  "https://somedomain.com/cancel",
		Language:                   request.LanguageEN,
	})
	assert.EqualError(t, err, "Unsupported method chosen")
	assert.Zero(t, *calls)
}
