package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/spf13/cobra"
)

var (
	startDate string
	endDate   string
	reference string
	limit     int
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <transactionId>",
		Short: "Show payment status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.PaymentStatus(cmd.Context(), &request.PaymentStatusRequest{TransactionID: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "transaction: %s\n", res.TransactionID)
			fmt.Fprintf(out, "status:      %s\n", res.Status)
			if res.Amount != nil {
				fmt.Fprintf(out, "amount:      %s %s\n", model.FormatAmount(*res.Amount), res.Currency)
			}
			fmt.Fprintf(out, "stamp:       %s\n", res.Stamp)
			fmt.Fprintf(out, "reference:   %s\n", res.Reference)
			if res.Provider != nil {
				fmt.Fprintf(out, "provider:    %s\n", *res.Provider)
			}
			if res.PaidAt != nil {
				fmt.Fprintf(out, "paid at:     %s\n", *res.PaidAt)
			}
			return nil
		},
	}
}

func newSettlementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "List settlements",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &request.SettlementRequest{StartDate: startDate, EndDate: endDate, Reference: reference}
			if cmd.Flags().Changed("limit") {
				req.Limit = &limit
			}
			if err := req.Validate(); err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.RequestSettlements(cmd.Context(), req)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSETTLED AT\tREFERENCE\tAMOUNT")
			for _, s := range res.Settlements {
				a := "-"
				if s.Amount != nil {
					a = model.FormatAmount(*s.Amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.SettledAt, s.Reference, a)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "First settlement date, YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Last settlement date, YYYY-MM-DD")
	cmd.Flags().StringVar(&reference, "reference", "", "Bank reference")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of settlements")

	return cmd
}

func newActivateInvoiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate-invoice <transactionId>",
		Short: "Activate a manually activated invoice payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.ActivateInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Status)
			return nil
		},
	}
}
