package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
	"github.com/nikolayk812/foodcart-demo/internal/config"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/pricing"
	"github.com/spf13/cobra"
)

func newAddCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <restaurantID> <itemID> [quantity]",
		Short: "Add a menu item to the cart",
		Args:  cobra.RangeArgs(2, 3),
		RunE: runWithApp(cfg, func(cmd *cobra.Command, args []string, a *app) error {
			r, ok := catalog.Restaurant(args[0])
			if !ok {
				return fmt.Errorf("restaurant[%s] not found", args[0])
			}

			item, ok := r.MenuItem(args[1])
			if !ok {
				return fmt.Errorf("item[%s] not on the menu of %s", args[1], r.Name)
			}

			quantity := 1
			if len(args) == 3 {
				q, err := parseQuantity(args[2])
				if err != nil {
					return err
				}
				quantity = q
			}

			a.store.AddToCart(r.CartItem(item, quantity))

			return printCart(cmd.OutOrStdout(), a.store.Cart())
		}),
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newRemoveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <itemID>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(cfg, func(cmd *cobra.Command, args []string, a *app) error {
			a.store.RemoveFromCart(args[0])

			return printCart(cmd.OutOrStdout(), a.store.Cart())
		}),
	}
}

func newUpdateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <itemID> <quantity>",
		Short: "Set the quantity of a line, zero or less removes it",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(cfg, func(cmd *cobra.Command, args []string, a *app) error {
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			a.store.UpdateQuantity(args[0], quantity)

			return printCart(cmd.OutOrStdout(), a.store.Cart())
		}),
	}
	// negative quantities are arguments, not shorthand flags
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newAdjustCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust <itemID> <quantity>",
		Short: "Change a quantity from the order summary",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(cfg, func(cmd *cobra.Command, args []string, a *app) error {
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			a.checkout.AdjustQuantity(args[0], quantity)

			cart, totals := a.checkout.Summary()
			if err := printCart(cmd.OutOrStdout(), cart); err != nil {
				return err
			}
			return printTotals(cmd.OutOrStdout(), totals)
		}),
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newClearCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: runWithApp(cfg, func(cmd *cobra.Command, _ []string, a *app) error {
			a.store.ClearCart()

			return printCart(cmd.OutOrStdout(), a.store.Cart())
		}),
	}
}

func newCartCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart with subtotal, delivery fee, tax and total",
		Args:  cobra.NoArgs,
		RunE: runWithApp(cfg, func(cmd *cobra.Command, _ []string, a *app) error {
			cart, totals := a.checkout.Summary()
			if err := printCart(cmd.OutOrStdout(), cart); err != nil {
				return err
			}
			if cart.IsEmpty() {
				return nil
			}
			return printTotals(cmd.OutOrStdout(), totals)
		}),
	}
}

func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("quantity[%s] is not a number", s)
	}
	return q, nil
}

func printCart(out io.Writer, cart domain.Cart) error {
	if cart.IsEmpty() {
		_, err := fmt.Fprintln(out, "Your cart is empty")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tITEM\tRESTAURANT\tQTY\tPRICE")
	for _, item := range cart.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", item.ID, item.Name, item.RestaurantName, item.Quantity, pricing.LineTotal(item).Amount.StringFixed(2))
	}
	return w.Flush()
}

func printTotals(out io.Writer, totals domain.Totals) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Subtotal\t%s\n", totals.Subtotal)
	fmt.Fprintf(w, "Delivery fee\t%s\n", totals.DeliveryFee)
	fmt.Fprintf(w, "Tax\t%s\n", totals.Tax)
	fmt.Fprintf(w, "Total\t%s\n", totals.Total)
	return w.Flush()
}
