package cli

import (
	"fmt"

	"crawingo-delivery/storefront/internal/notify"
	"crawingo-delivery/storefront/internal/review"

	"github.com/spf13/cobra"
)

func reviewCmd(g *globals) *cobra.Command {
	var (
		rating  int
		comment string
	)
	cmd := &cobra.Command{
		Use:   "review <dish-id>",
		Short: "Review a dish",
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
			flow := review.NewFlow(client, &notify.Writer{W: cmd.OutOrStdout()}, g.logger(cmd))
			flow.SetRating(rating)
			flow.SetComment(comment)
			saved, err := flow.Submit(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Review #%d saved\n", saved.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&rating, "rating", review.DefaultRating, "Rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "Review text")
	return cmd
}
