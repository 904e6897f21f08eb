package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

var (
	amount   string
	language string
	groups   []string
)

func amountFlag() (*int, error) {
	if amount == "" {
		return nil, nil
	}
	v, err := model.ParseAmount(amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", amount)
	}
	return &v, nil
}

func newProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List payment providers",
		Long:  `List the payment providers enabled for the merchant, optionally only those accepting an amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountFlag()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			providers, err := client.PaymentProviders(cmd.Context(), a)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tGROUP\tNAME")
			for _, p := range providers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Group, p.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Purchase amount in EUR, e.g. 15.25")

	return cmd
}

func newGroupedProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grouped-providers",
		Short: "List payment providers grouped by payment method",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountFlag()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.GroupedPaymentProviders(cmd.Context(), a, language, groups)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Terms)
			for _, g := range res.Groups {
				fmt.Fprintf(out, "%s (%s)\n", g.Name, g.ID)
				for _, p := range g.Providers {
					fmt.Fprintf(out, "  %s\t%s\n", p.ID, p.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Purchase amount in EUR, e.g. 15.25")
	cmd.Flags().StringVarP(&language, "language", "l", "FI", "Language of the terms: FI, SV or EN")
	cmd.Flags().StringSliceVarP(&groups, "groups", "g", nil, "Payment method groups to include, e.g. bank,mobile")

	return cmd
}
