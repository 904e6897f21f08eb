package request

import (
	"net/url"
	"strconv"
	"time"

	"github.com/alapierre/go-paytrail-client/paytrail/validation"
)

// SettlementRequest filters the settlement listing. Dates use Y-m-d.
type SettlementRequest struct {
	StartDate   string
	EndDate     string
	Reference   string
	Limit       *int
	SubMerchant *int
}

func (r *SettlementRequest) Validate() error {
	return validation.Run(append(dateRangeRules(r.StartDate, r.EndDate),
		validation.When(r.Limit != nil, validation.Lazy(func() validation.Rule {
			return validation.Min(int64(*r.Limit), 0, "limit", "Limit must have a minimum value of 0")
		})),
	)...)
}

// Query renders the non-empty filters as URL parameters.
func (r *SettlementRequest) Query() url.Values {
	q := url.Values{}
	setIf(q, "startDate", r.StartDate)
	setIf(q, "endDate", r.EndDate)
	setIf(q, "reference", r.Reference)
	if r.Limit != nil && *r.Limit != 0 {
		q.Set("limit", strconv.Itoa(*r.Limit))
	}
	if r.SubMerchant != nil && *r.SubMerchant != 0 {
		q.Set("subMerchant", strconv.Itoa(*r.SubMerchant))
	}
	return q
}

func setIf(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func dateRangeRules(start, end string) []validation.Rule {
	return []validation.Rule{
		validation.When(start != "", validation.Date(start, "startDate", "startDate must be in Y-m-d format")),
		validation.When(end != "", validation.Date(end, "endDate", "endDate must be in Y-m-d format")),
		validation.When(start != "" && end != "", validation.Lazy(func() validation.Rule {
			s, _ := time.Parse(validation.DateLayout, start)
			e, _ := time.Parse(validation.DateLayout, end)
			return validation.Check(!s.After(e), "startDate", "startDate cannot be lower than endDate")
		})),
	}
}
