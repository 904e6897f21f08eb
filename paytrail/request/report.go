package request

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

const (
	ReportTypeJSON = "json"
	ReportTypeCSV  = "csv"

	maxReportLimit = 50000
)

var (
	reportTypes     = []string{ReportTypeJSON, ReportTypeCSV}
	paymentStatuses = []string{"default", "paid", "all", "settled"}
)

// ReportRequest asks for a payment report delivered to CallbackUrl.
type ReportRequest struct {
	RequestType   string
	CallbackUrl   string
	PaymentStatus *string
	StartDate     string
	EndDate       string
	Limit         *int
	ReportFields  []string
	SubMerchant   *int
}

func (r *ReportRequest) Validate() error {
	rules := append(reportTargetRules(r.RequestType, r.CallbackUrl),
		validation.When(r.PaymentStatus != nil, validation.Lazy(func() validation.Rule {
			return validation.OneOf(*r.PaymentStatus, paymentStatuses, "paymentStatus", "Invalid paymentStatus value")
		})),
		validation.When(r.Limit != nil,
			validation.Lazy(func() validation.Rule {
				return validation.Max(int64(*r.Limit), maxReportLimit, "limit", "Limit exceeds maximum value of 50000")
			}),
			validation.Lazy(func() validation.Rule {
				return validation.Min(int64(*r.Limit), 0, "limit", "Limit must have a minimum value of 0")
			}),
		),
	)
	return validation.Run(append(rules, dateRangeRules(r.StartDate, r.EndDate)...)...)
}

func reportTargetRules(requestType, callbackURL string) []validation.Rule {
	return []validation.Rule{
		validation.NotEmpty(requestType, "requestType", "RequestType can not be empty"),
		validation.OneOf(requestType, reportTypes, "requestType", `RequestType must be either "json" or "csv"`),
		validation.NotEmpty(callbackURL, "callbackUrl", "CallbackUrl can not be empty"),
	}
}

func (r *ReportRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Camel).
		Str("requestType", r.RequestType).
		Str("callbackUrl", r.CallbackUrl).
		OptStr("paymentStatus", r.PaymentStatus)
	if r.StartDate != "" {
		o.Str("startDate", r.StartDate)
	}
	if r.EndDate != "" {
		o.Str("endDate", r.EndDate)
	}
	return o.
		OptInt("limit", nonZero(r.Limit)).
		Strings("reportFields", r.ReportFields).
		OptInt("subMerchant", nonZero(r.SubMerchant))
}

// nonZero drops zero filters, which the API treats as unset.
func nonZero(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func (r *ReportRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "requesttype":
			r.RequestType, err = wire.Str(d)
		case "callbackurl":
			r.CallbackUrl, err = wire.Str(d)
		case "paymentstatus":
			r.PaymentStatus, err = wire.OptStr(d)
		case "startdate":
			r.StartDate, err = wire.Str(d)
		case "enddate":
			r.EndDate, err = wire.Str(d)
		case "limit":
			r.Limit, err = wire.OptInt(d)
		case "reportfields":
			r.ReportFields, err = wire.Strings(d)
		case "submerchant":
			r.SubMerchant, err = wire.OptInt(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// ReportBySettlementRequest asks for the payments of one settlement.
type ReportBySettlementRequest struct {
	RequestType  string
	CallbackUrl  string
	ReportFields []string
	SubMerchant  *int
}

func (r *ReportBySettlementRequest) Validate() error {
	return validation.Run(reportTargetRules(r.RequestType, r.CallbackUrl)...)
}

func (r *ReportBySettlementRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("requestType", r.RequestType).
		Str("callbackUrl", r.CallbackUrl).
		Strings("reportFields", r.ReportFields).
		OptInt("subMerchant", nonZero(r.SubMerchant))
}
