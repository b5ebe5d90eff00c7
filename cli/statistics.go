package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/salt/printer"
	"github.com/spf13/cobra"
)

func statisticsCommand(cfg *Config) *cobra.Command {
	var unit, start, end, output string

	cmd := &cobra.Command{
		Use:     "statistics",
		Aliases: []string{"stats"},
		Short:   "Show sales, member and visitor statistics",
		Long: heredoc.Doc(`
			Show sales and member series per period together with payment type
			and product rankings.

			Units are year, month, day, weekday and hour. Day, weekday and hour
			series default to the last 30 days, months to the current year and
			years to the last five.
		`),
		Example: heredoc.Doc(`
			$ backoffice statistics
			$ backoffice statistics --unit month
			$ backoffice statistics --unit weekday --start 2024-11-01 --end 2024-11-30 -o json
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := newServices(cfg).Statistics
			q := statistics.Query{Unit: statistics.Unit(unit), StartDate: start, EndDate: end}

			spinner := printer.Spin("")
			defer spinner.Stop()

			sales, err := svc.Sales(ctx, q)
			if err != nil {
				return err
			}
			members, err := svc.Members(ctx, q)
			if err != nil {
				return err
			}
			visitors, err := svc.Visitors(ctx, q)
			if err != nil {
				return err
			}
			payments, err := svc.PaymentTypes(ctx, q)
			if err != nil {
				return err
			}
			products, err := svc.Products(ctx, q)
			if err != nil {
				return err
			}
			spinner.Stop()

			if output == outputJSON {
				fmt.Println(prettyPrint(map[string]interface{}{
					"sales":        sales,
					"members":      members,
					"visitors":     visitors,
					"paymentTypes": payments,
					"products":     products,
				}))
				return nil
			}

			report := [][]string{{"PERIOD", "SALES", "ORDERS", "PRODUCTS", "SIGNUPS", "WITHDRAWALS", "VISITORS"}}
			for i, p := range sales.Periods {
				m, v := members.Periods[i], visitors.Periods[i]
				report = append(report, []string{
					p.Period, won(p.Sales), strconv.Itoa(p.Orders), strconv.Itoa(p.Products),
					strconv.Itoa(m.SignupCount), strconv.Itoa(m.WithdrawalCount), strconv.Itoa(v.VisitorCount),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println()

			report = [][]string{{"RANK", "PAYMENT", "SALES", "SHARE"}}
			for _, p := range payments {
				report = append(report, []string{strconv.Itoa(p.Rank), p.PaymentType, won(p.Sales), fmt.Sprintf("%.1f%%", p.SharePercent)})
			}
			printer.Table(os.Stdout, report)
			fmt.Println()

			report = [][]string{{"RANK", "CODE", "PRODUCT", "COUNT", "TOTAL"}}
			for _, p := range products {
				report = append(report, []string{strconv.Itoa(p.Rank), p.ProductCode, p.ProductName, strconv.Itoa(p.SalesCount), won(p.SalesTotal)})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", string(statistics.UnitDay), "period unit: year, month, day, weekday or hour")
	cmd.Flags().StringVar(&start, "start", "", "first day covered (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day covered (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "output format, table or json")

	return cmd
}
