package paytrail

import "net/url"

func paymentURI(transactionID, suffix string) string {
	return "/payments/" + url.PathEscape(transactionID) + suffix
}

func settlementURI(settlementID, suffix string) string {
	return "/settlements/" + url.PathEscape(settlementID) + suffix
}

func tokenizationURI(tokenizationID string) string {
	return "/tokenization/" + url.PathEscape(tokenizationID)
}
