package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"crawingo-delivery/storefront/internal/model"
	"crawingo-delivery/storefront/internal/notify"
	"crawingo-delivery/storefront/internal/progress"
	"crawingo-delivery/storefront/internal/session"

	"github.com/spf13/cobra"
)

// lineItem is a --item value of the form <dish-id>[:<quantity>].
type lineItem struct {
	dishID   int
	quantity int
}

func parseLineItem(s string) (lineItem, error) {
	idPart, qtyPart, hasQty := strings.Cut(s, ":")
	id, err := parseID(idPart)
	if err != nil {
		return lineItem{}, err
	}
	item := lineItem{dishID: id, quantity: 1}
	if hasQty {
		q, err := strconv.Atoi(qtyPart)
		if err != nil || q < 1 {
			return lineItem{}, fmt.Errorf("invalid quantity in %q", s)
		}
		item.quantity = q
	}
	return item, nil
}

// statusPrinter echoes each reported stage before passing it on.
type statusPrinter struct {
	next   session.StatusReporter
	notify notify.Notifier
}

func (p statusPrinter) ReportStatus(ctx context.Context, orderID int, code string) error {
	if s, ok := progress.StatusFromCode(code); ok {
		p.notify.Notify(notify.Notification{Title: fmt.Sprintf("Order #%d", orderID), Message: s.String()})
	}
	return p.next.ReportStatus(ctx, orderID, code)
}

func orderCmd(g *globals, defaultInterval time.Duration) *cobra.Command {
	var (
		items    []string
		payment  string
		interval time.Duration
		grace    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order and follow it until delivery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := model.ParsePaymentMethod(payment)
			if err != nil {
				return err
			}
			lines := make([]lineItem, 0, len(items))
			for _, raw := range items {
				line, err := parseLineItem(raw)
				if err != nil {
					return err
				}
				lines = append(lines, line)
			}

			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := &notify.Writer{W: cmd.OutOrStdout()}
			done := make(chan struct{})
			sess := session.New(session.Options{
				Placer:    client,
				Reporter:  statusPrinter{next: client, notify: out},
				Notifier:  out,
				Scheduler: progress.TimerScheduler{},
				Interval:  interval,
				Grace:     grace,
				Log:       g.logger(cmd),
				OnReset:   func() { close(done) },
			})
			defer sess.Close()

			for _, line := range lines {
				detail, err := client.Dish(ctx, line.dishID)
				if err != nil {
					return err
				}
				if err := sess.AddItem(detail.Dish); err != nil {
					return err
				}
				if line.quantity > 1 {
					if err := sess.UpdateQuantity(line.dishID, line.quantity); err != nil {
						return err
					}
				}
			}
			if err := sess.SelectPayment(method); err != nil {
				return err
			}
			if err := sess.OpenCheckout(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Total %s via %s: %s\n", model.FormatINR(sess.Total()), method.Label(), sess.ConfirmLabel())
			order, err := sess.Checkout(ctx)
			if err != nil {
				return err
			}
			if order.TrackingURL != "" {
				fmt.Fprintf(out, "Tracking: %s\n", order.TrackingURL)
			}

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "Dish to order as <dish-id>[:<quantity>], repeatable")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment method (upi, card, gpay, paypal, cod)")
	cmd.Flags().DurationVar(&interval, "interval", defaultInterval, "Time between delivery updates")
	cmd.Flags().DurationVar(&grace, "grace", progress.DefaultGrace, "Pause after delivery before the cart clears")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func ordersCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client(cmd)
			if err != nil {
				return err
			}
			orders, err := client.Orders(cmd.Context())
			if err != nil {
				return err
			}
			w := table(cmd.OutOrStdout())
			row(w, "ID", "RESTAURANT", "ITEMS", "TOTAL", "STATUS", "PLACED")
			for _, o := range orders {
				row(w, o.ID, o.RestaurantID, len(o.Items), model.FormatINR(o.Total), o.Status, o.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}

func qrcodeCmd(g *globals) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "qrcode <order-id>",
		Short: "Save an order's tracking QR code as PNG",
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
			png, err := client.QRCode(cmd.Context(), id)
			if err != nil {
				return err
			}
			if path == "" {
				path = fmt.Sprintf("order-%d.png", id)
			}
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "", "Output file (default order-<id>.png)")
	return cmd
}
