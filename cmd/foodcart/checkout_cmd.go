package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/nikolayk812/foodcart-demo/internal/checkout"
	"github.com/nikolayk812/foodcart-demo/internal/config"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(cfg *config.Config) *cobra.Command {
	var details domain.DeliveryDetails

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Confirm the order with delivery details",
		Args:  cobra.NoArgs,
		RunE: runWithApp(cfg, func(cmd *cobra.Command, _ []string, a *app) error {
			out := cmd.OutOrStdout()

			order, err := a.checkout.Confirm(cmd.Context(), details)

			var validationErr *checkout.ValidationError
			switch {
			case errors.As(err, &validationErr):
				printValidation(out, validationErr)
				return err
			case errors.Is(err, checkout.ErrEmptyCart):
				fmt.Fprintln(out, "Your cart is empty")
				return err
			case err != nil:
				return err
			}

			fmt.Fprintln(out, "Order Confirmed!")
			return printOrder(out, order)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&details.Name, "name", "", "full name")
	flags.StringVar(&details.Email, "email", "", "email")
	flags.StringVar(&details.Phone, "phone", "", "phone")
	flags.StringVar(&details.Address, "address", "", "delivery address")
	flags.StringVar(&details.Instructions, "instructions", "", "gate code, floor number, etc.")

	return cmd
}

func newOrderCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Show the last confirmed order",
		Args:  cobra.NoArgs,
		RunE: runWithApp(cfg, func(cmd *cobra.Command, _ []string, a *app) error {
			order, ok, err := a.checkout.CurrentOrder(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders found")
				return nil
			}

			return printOrder(cmd.OutOrStdout(), order)
		}),
	}
}

func printValidation(out io.Writer, err *checkout.ValidationError) {
	fields := make([]string, 0, len(err.Fields))
	for field := range err.Fields {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	for _, field := range fields {
		fmt.Fprintf(out, "%s: %s\n", field, err.Fields[field])
	}
}

func printOrder(out io.Writer, order domain.Order) error {
	fmt.Fprintf(out, "Order %s placed %s\n", order.ID, order.OrderDate.Format("January 2, 2006 15:04"))
	fmt.Fprintf(out, "Deliver to %s, %s\n", order.Name, order.Address)
	if err := printCart(out, domain.Cart{Items: order.Items}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Total %s %s\n", domain.StoreCurrency, order.Total)
	return err
}
