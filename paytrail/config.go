package paytrail

import "github.com/alapierre/go-paytrail-client/paytrail/config"

// NewClientFromConfig builds a client from loaded configuration. opts are
// applied after the configured base URL and timeout.
func NewClientFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	base := []Option{WithBaseURL(cfg.BaseURL), WithTimeout(cfg.Timeout)}
	return NewClient(cfg.MerchantID, cfg.SecretKey, cfg.PlatformName, append(base, opts...)...)
}
