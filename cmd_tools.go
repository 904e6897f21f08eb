package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/alapierre/go-paytrail-client/paytrail/signature"
	"github.com/alapierre/go-paytrail-client/png"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

var (
	headers []string
	body    string
	qrOut   string
	qrSize  int
)

func newSignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Compute a signature offline",
		Long: `Compute the HMAC signature of checkout- headers and a body with the
configured secret. Useful when debugging signature mismatches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			params := make(map[string]string, len(headers))
			for _, h := range headers {
				k, v, ok := strings.Cut(h, "=")
				if !ok {
					return errors.Errorf("header %q is not name=value", h)
				}
				params[strings.ToLower(k)] = v
			}

			if verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), signature.Message(params, body))
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature.Calculate(params, body, cfg.SecretKey))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Signed header as name=value, repeatable")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Request or response body")

	return cmd
}

func newVerifyCallbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-callback <url>",
		Short: "Verify the signature of a redirect or callback URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.VerifyCallback(u.Query()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signature ok, status %s\n", u.Query().Get("checkout-status"))
			return nil
		},
	}
}

func newQrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr <href>",
		Short: "Render a payment link as a PNG QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := png.PaymentLink(args[0], qrSize)
			if err != nil {
				return err
			}
			if err := os.WriteFile(qrOut, data, 0644); err != nil {
				return err
			}
			logger.WithField("file", qrOut).Debug("qr code written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&qrOut, "out", "o", "payment.png", "Output file")
	cmd.Flags().IntVar(&qrSize, "size", png.DefaultSize, "Image size in pixels")

	return cmd
}
