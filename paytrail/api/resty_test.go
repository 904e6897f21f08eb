package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyTransport_Do(t *testing.T) {

	var (
		gotMethod string
		gotPath   string
		gotQuery  url.Values
		gotHeader http.Header
		gotBody   []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Signature", "abc")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"transactionId":"t-1"}`))
	}))
	defer srv.Close()

	tr, err := NewRestyTransport(srv.URL)
	require.NoError(t, err)

	resp, err := tr.Do(context.Background(), &Request{
		Method:  http.MethodPost,
		URI:     "/payments",
		Query:   url.Values{"amount": {"100"}},
		Headers: map[string]string{"checkout-account": "375917"},
		Body:    []byte(`{"a":1}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "abc", resp.Header.Get("signature"))
	assert.JSONEq(t, `{"transactionId":"t-1"}`, string(resp.Body))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/payments", gotPath)
	assert.Equal(t, "100", gotQuery.Get("amount"))
	assert.Equal(t, "375917", gotHeader.Get("checkout-account"))
	assert.Equal(t, `{"a":1}`, string(gotBody))
}

func TestRestyTransport_DoesNotFollowRedirects(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/elsewhere" {
			t.Error("redirect was followed")
		}
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer srv.Close()

	tr, err := NewRestyTransport(srv.URL)
	require.NoError(t, err)

	resp, err := tr.Do(context.Background(), &Request{Method: http.MethodPost, URI: "/tokenization/addcard-form", Body: []byte(`{}`)})
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/elsewhere", resp.Header.Get("Location"))
}

func TestRestyTransport_ErrorStatusIsNotAnError(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"bad"}`))
	}))
	defer srv.Close()

	tr, err := NewRestyTransport(srv.URL)
	require.NoError(t, err)

	resp, err := tr.Do(context.Background(), &Request{Method: http.MethodGet, URI: "/merchants/payment-providers"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	ce := NewClientError(resp)
	assert.Equal(t, "paytrail returns http status 400: bad", ce.Error())
	assert.Equal(t, "error", ce.ErrorDetails["status"])
}

func TestRestyTransport_RequestError(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	tr, err := NewRestyTransport(addr)
	require.NoError(t, err)

	_, err = tr.Do(context.Background(), &Request{Method: http.MethodGet, URI: "/payments/x"})
	require.Error(t, err)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "/payments/x", re.URI)
	assert.NotNil(t, re.Unwrap())
}

func TestNewRestyTransport_RequiresBaseURL(t *testing.T) {
	_, err := NewRestyTransport("")
	assert.Error(t, err)
}

func TestNewClientError_PlainBody(t *testing.T) {
	ce := NewClientError(&Response{StatusCode: 500, Body: []byte("boom")})
	assert.Equal(t, "paytrail returns http status 500: boom", ce.Error())
	assert.Nil(t, ce.ErrorDetails)
}
