// Package paytrail is a client for the Paytrail payment service provider
// API. Every call is validated locally, signed with the merchant secret and
// the response signature is verified before anything is decoded.
package paytrail

import (
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "paytrail")

const (
	DefaultBaseURL      = "https://services.paytrail.com"
	DefaultPlatformName = "paytrail-go"
)

var (
	ErrMissingTransactionID = errors.New("paytrail transaction id is empty")
	ErrMissingSignature     = errors.New("paytrail response is not signed")
	ErrUnexpectedStatus     = errors.New("paytrail unexpected http status")
)
