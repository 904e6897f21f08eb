package paytrail

import (
	"context"
	"net/http"

	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
)

// RequestSettlements lists settlements matching the filters. Invalid dates
// are rejected before anything is sent.
func (c *Client) RequestSettlements(ctx context.Context, req *request.SettlementRequest) (*response.SettlementResponse, error) {
	if req == nil {
		req = &request.SettlementRequest{}
	}

	out := &response.SettlementResponse{}
	err := c.do(ctx, call{
		operation: "RequestSettlements",
		method:    http.MethodGet,
		uri:       "/settlements",
		query:     req.Query(),
		validate:  req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RequestPaymentReport asks for a payment report. The report itself is
// delivered asynchronously to the callback URL.
func (c *Client) RequestPaymentReport(ctx context.Context, req *request.ReportRequest) (*response.ReportRequestResponse, error) {
	if req == nil {
		return nil, emptyRequest("ReportRequest")
	}

	out := &response.ReportRequestResponse{}
	err := c.do(ctx, call{
		operation: "RequestPaymentReport",
		method:    http.MethodPost,
		uri:       "/payments/report",
		body:      req,
		validate:  req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RequestPaymentReportBySettlement(ctx context.Context, req *request.ReportBySettlementRequest, settlementID string) (*response.ReportRequestResponse, error) {
	if req == nil {
		return nil, emptyRequest("ReportBySettlementRequest")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if settlementID == "" {
		return nil, validation.New("settlementId", "Settlement id is empty")
	}

	out := &response.ReportRequestResponse{}
	err := c.do(ctx, call{
		operation: "RequestPaymentReportBySettlement",
		method:    http.MethodPost,
		uri:       settlementURI(settlementID, "/payments/report"),
		body:      req,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
