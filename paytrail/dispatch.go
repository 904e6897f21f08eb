package paytrail

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/alapierre/go-paytrail-client/paytrail/signature"
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/alapierre/go-paytrail-client/paytrail"

// call describes one signed exchange with the API.
type call struct {
	operation      string
	method         string
	uri            string
	query          url.Values
	body           wire.Encoder
	transactionID  string
	tokenizationID string
	validate       validation.Validatable

	// acceptForbidden decodes a signed non-empty 403 body as a regular
	// result, best effort.
	acceptForbidden bool
}

// do runs validate, sign, transmit, verify and decode. out may be nil when
// the response body is not needed.
func (c *Client) do(ctx context.Context, in call, out wire.Decoder) (err error) {

	ctx, span := otel.Tracer(tracerName).Start(ctx, "Client."+in.operation,
		trace.WithAttributes(
			attribute.String("paytrail.operation", in.operation),
			attribute.String("http.method", in.method),
			attribute.String("http.uri", in.uri),
		))
	defer func() { endSpan(span, err) }()

	if in.validate != nil {
		if err := in.validate.Validate(); err != nil {
			return err
		}
	}

	var body []byte
	if in.body != nil {
		body = wire.Marshal(in.body)
	}

	headers := c.headers(in.method, in.transactionID, in.tokenizationID)
	headers[signature.Header] = signature.Calculate(headers, string(body), c.secretKey)

	resp, err := c.transport.Do(ctx, &api.Request{
		Method:  in.method,
		URI:     in.uri,
		Query:   in.query,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	log := logger.WithFields(logrus.Fields{
		"operation": in.operation,
		"method":    in.method,
		"uri":       in.uri,
		"status":    resp.StatusCode,
	})

	forbidden := false
	if resp.StatusCode >= http.StatusBadRequest {
		if !(in.acceptForbidden && resp.StatusCode == http.StatusForbidden && len(resp.Body) > 0) {
			log.Debug("request rejected")
			return api.NewClientError(resp)
		}
		forbidden = true
		log.Warn("forbidden response carries a result, decoding it")
	}

	if err := c.verify(resp); err != nil {
		log.Warn("response signature rejected")
		return err
	}

	log.Debug("request completed")

	if out == nil {
		return nil
	}
	if err := wire.Unmarshal(resp.Body, out); err != nil {
		// The forbidden body is decoded best effort: whatever was read is kept.
		if forbidden {
			log.WithError(err).Warn("forbidden response body is not a result")
			return nil
		}
		return err
	}
	return nil
}

// verify checks the response signature against its own checkout- headers.
func (c *Client) verify(resp *api.Response) error {
	headers := signature.ReduceHeaders(resp.Header)
	claimed, ok := headers[signature.Header]
	if !ok || claimed == "" {
		return errors.Wrapf(ErrMissingSignature, "http status %d", resp.StatusCode)
	}
	return signature.Validate(headers, string(resp.Body), claimed, c.secretKey)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// requireTransactionID rejects an empty path identifier before any request
// is built.
func requireTransactionID(id string) error {
	if id == "" {
		return validation.Wrap(ErrMissingTransactionID, "transactionId", "Transaction id is empty")
	}
	return nil
}

func emptyRequest(name string) error {
	return validation.New(name, name+" is empty")
}
