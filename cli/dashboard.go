package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func dashboardCommand(cfg *Config) *cobra.Command {
	var start, end, output string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard figures",
		Long: heredoc.Doc(`
			Show headline figures, daily revenue, product sales and the member grade mix.

			Revenue defaults to the last 30 days.
		`),
		Example: heredoc.Doc(`
			$ backoffice dashboard
			$ backoffice dashboard --start 2024-11-01 --end 2024-11-07
			$ backoffice dashboard -o json
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := newServices(cfg).Dashboard

			spinner := printer.Spin("")
			defer spinner.Stop()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			revenue, err := svc.DailyRevenue(ctx, dashboard.Range{StartDate: start, EndDate: end})
			if err != nil {
				return err
			}
			sales, err := svc.ProductSales(ctx)
			if err != nil {
				return err
			}
			grades, err := svc.MemberGrades(ctx)
			if err != nil {
				return err
			}
			spinner.Stop()

			if output == outputJSON {
				fmt.Println(prettyPrint(map[string]interface{}{
					"stats":        stats,
					"revenue":      revenue,
					"productSales": sales,
					"memberGrades": grades,
				}))
				return nil
			}

			fmt.Println(term.Bluef("Revenue %s (%+.1f%%)  Orders %d (%+.1f%%)  Members %d (%+.1f%%)  Products %d (%+.1f%%)",
				won(stats.TotalRevenue), stats.RevenueChange,
				stats.TotalOrders, stats.OrdersChange,
				stats.TotalMembers, stats.MembersChange,
				stats.ActiveProducts, stats.ProductsChange,
			))
			fmt.Println()

			report := [][]string{{"DATE", "REVENUE", "ORDERS"}}
			for _, d := range revenue {
				report = append(report, []string{d.Date, won(d.Revenue), strconv.Itoa(d.Orders)})
			}
			printer.Table(os.Stdout, report)
			fmt.Println()

			report = [][]string{{"PRODUCT", "SALES", "REVENUE", "SHARE"}}
			for _, s := range sales {
				report = append(report, []string{s.ProductName, strconv.Itoa(s.Sales), won(s.Revenue), fmt.Sprintf("%.1f%%", s.Percentage)})
			}
			printer.Table(os.Stdout, report)
			fmt.Println()

			report = [][]string{{"GRADE", "MEMBERS", "SHARE"}}
			for _, g := range grades {
				report = append(report, []string{string(g.Grade), strconv.Itoa(g.Count), fmt.Sprintf("%.1f%%", g.Percentage)})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the revenue series (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day of the revenue series (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "output format, table or json")

	return cmd
}
