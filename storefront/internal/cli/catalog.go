package cli

import (
	"fmt"
	"strconv"

	"crawingo-delivery/storefront/internal/model"

	"github.com/spf13/cobra"
)

func restaurantsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			restaurants, err := client.Restaurants(cmd.Context())
			if err != nil {
				return err
			}
			w := table(cmd.OutOrStdout())
			row(w, "ID", "NAME", "CUISINE", "RATING", "PRICE", "LOCATION")
			for _, r := range restaurants {
				row(w, r.ID, r.Name, r.Cuisine, r.Rating.StringFixed(1), r.PriceRange, r.Location)
			}
			return w.Flush()
		},
	}
}

func menuCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <restaurant-id>",
		Short: "Show a restaurant and its dishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			detail, err := client.Restaurant(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\n%s\n\n", detail.Name, detail.Cuisine, detail.Location, detail.Description)
			w := table(out)
			row(w, "ID", "DISH", "CATEGORY", "SPICE", "PRICE")
			for _, d := range detail.Dishes {
				row(w, d.ID, d.Name, d.Category, d.SpiceLevel, model.FormatINR(d.Price))
			}
			return w.Flush()
		},
	}
}

func dishCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "dish <dish-id>",
		Short: "Show a dish with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			detail, err := client.Dish(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", detail.Name, model.FormatINR(detail.Price))
			fmt.Fprintf(out, "from %s\n", detail.Restaurant.Name)
			fmt.Fprintf(out, "%s\n", detail.Description)
			fmt.Fprintf(out, "rating %s from %d reviews\n", detail.AverageRating.StringFixed(1), len(detail.Reviews))
			for _, r := range detail.Reviews {
				fmt.Fprintf(out, "  %d/5  %s\n", r.Rating, r.Comment)
			}
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
