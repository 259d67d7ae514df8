package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/spf13/cobra"
)

func newRestaurantsCmd() *cobra.Command {
	var cuisine string

	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			restaurants := catalog.Restaurants(cuisine)
			if len(restaurants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No restaurants found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCUISINE\tRATING\tDELIVERY\tPRICE")
			for _, r := range restaurants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%s\n", r.ID, r.Name, r.Cuisine, r.Rating, r.DeliveryTime, r.PriceLevel)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&cuisine, "cuisine", "", "only list restaurants of this cuisine")

	return cmd
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu <restaurantID>",
		Short: "Show a restaurant and its menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := catalog.Restaurant(args[0])
			if !ok {
				return fmt.Errorf("restaurant[%s] not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s) %.1f, %s, min order %s\n", r.Name, r.Cuisine, r.Rating, r.DeliveryTime, domain.NewMoney(r.MinOrder))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tDIETARY")
			for _, item := range r.Menu {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Category, item.Price.StringFixed(2), strings.Join(item.Dietary, ","))
			}
			return w.Flush()
		},
	}
}
