package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"cafe-admin-api/listing"
	"cafe-admin-api/logger"
	"cafe-admin-api/models"
	"cafe-admin-api/output"
	"cafe-admin-api/statemachine"
	"cafe-admin-api/stats"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard statistics",
		Long: `Refresh every collection once and print the dashboard.

Examples:
  cafe-admin stats            # headline cards, revenue and recent orders
  cafe-admin stats --json     # the full dashboard as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return runStats(cmd, asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runStats(cmd *cobra.Command, asJSON bool) error {
	a, err := buildApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if v, _ := cmd.Flags().GetBool("verbose"); !v {
		a.log.SetLevel(logger.LevelWarn)
	}

	if err := a.store.Refresh(cmd.Context()); err != nil {
		return err
	}
	d := a.store.Dashboard()

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	printDashboard(output.New(cmd.OutOrStdout()), d, a.store.Orders())
	return nil
}

func printDashboard(p *output.Printer, d stats.Dashboard, orders []models.Order) {
	s := d.Stats
	p.Section("Orders")
	p.Field("Total orders", s.TotalOrders)
	p.Field("Pending", s.PendingOrders)
	p.Field("Completed", fmt.Sprintf("%d (%.1f%%)", s.CompletedOrders, s.CompletionRate))
	p.Field("Revenue", fmt.Sprintf("%.2f", s.TotalRevenue))
	p.Field("Average order", fmt.Sprintf("%.2f", s.AvgOrderValue))

	p.Section("Today")
	p.Field("Revenue", fmt.Sprintf("%.2f (%+.1f%% vs yesterday)", d.Revenue.TodayRevenue, d.Revenue.RevenueChange))
	p.Field("Daily target", fmt.Sprintf("%.1f%% of %.2f", d.Revenue.TargetProgress, d.Revenue.DailyTarget))
	p.Field("Weekly growth", fmt.Sprintf("%+.1f%%", d.Revenue.WeeklyGrowth))

	p.Section("Support & feedback")
	p.Field("Tickets", fmt.Sprintf("%d (%d pending, %d urgent)", s.TotalSupportTickets, s.PendingSupportTickets, s.UrgentTickets))
	p.Field("Average rating", fmt.Sprintf("%.1f from %d reviews", s.AverageRating, s.TotalFeedbacks))
	p.Field("Would recommend", fmt.Sprintf("%.1f%%", s.RecommendationRate))
	p.Field("Reservations", fmt.Sprintf("%d (%d pending)", d.Reservations.TotalReservations, d.Reservations.PendingReservations))

	recent := listing.Recent(orders, listing.OrdersNewest, listing.RecentLimit)
	p.Section("Recent orders")
	if len(recent) == 0 {
		p.Muted("No orders yet")
		return
	}
	for _, o := range recent {
		p.Line("%s %-10s table %-4s %-20s %8.2f",
			output.StatusIcon(string(o.Status)), o.Status, o.TableNumber, o.CustomerName, o.TotalAmount)
	}
}

func newTransitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions",
		Short: "Print the order lifecycle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := output.New(cmd.OutOrStdout())
			p.Section("Order lifecycle")
			for _, s := range models.OrderStatuses {
				next := statemachine.ValidTransitionsFrom(s)
				if len(next) == 0 {
					p.Muted("%s %s (terminal)", output.StatusIcon(string(s)), s)
					continue
				}
				p.Info("%s → %v", s, next)
			}
		},
	}
}
