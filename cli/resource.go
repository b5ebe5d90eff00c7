package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/internal/backoffice"
	"github.com/goto/backoffice/internal/server"
	"github.com/goto/salt/log"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const outputJSON = "json"

// resourceCmd describes the list/view/edit/delete commands of one resource.
type resourceCmd[T any] struct {
	use     string
	aliases []string
	short   string
	service func(*backoffice.Services) server.ResourceService[T]
	headers []string
	row     func(T) []string
	extra   []func(cfg *Config) *cobra.Command
}

func resourceCommands(cfg *Config) []*cobra.Command {
	return []*cobra.Command{
		resourceCmd[reservation.Reservation]{
			use:     "reservation",
			aliases: []string{"reservations"},
			short:   "Manage reservations",
			service: func(s *backoffice.Services) server.ResourceService[reservation.Reservation] { return s.Reservations },
			headers: []string{"ID", "NUMBER", "STATUS", "PRODUCT", "CUSTOMER", "DATE", "PRICE"},
			row: func(r reservation.Reservation) []string {
				return []string{r.Key(), r.ReservationNumber, string(r.Status), r.ProductName, r.CustomerName, r.ReservationDate, won(r.PriceKRW)}
			},
			extra: []func(*Config) *cobra.Command{reservationStatsCommand},
		}.command(cfg),
		resourceCmd[settlement.Settlement]{
			use:     "settlement",
			aliases: []string{"settlements"},
			short:   "Manage settlements",
			service: func(s *backoffice.Services) server.ResourceService[settlement.Settlement] { return s.Settlements },
			headers: []string{"ID", "NUMBER", "STATUS", "PRODUCT", "SALES", "PROFIT", "DATE"},
			row: func(st settlement.Settlement) []string {
				return []string{st.Key(), st.ReservationNumber, string(st.SettlementStatus), st.ProductName, won(st.PriceKRW), won(st.Profit()), st.ReservationDate}
			},
			extra: []func(*Config) *cobra.Command{settlementStatsCommand},
		}.command(cfg),
		resourceCmd[member.Member]{
			use:     "member",
			aliases: []string{"members"},
			short:   "Manage members",
			service: func(s *backoffice.Services) server.ResourceService[member.Member] { return s.Members },
			headers: []string{"ID", "NAME", "EMAIL", "GRADE", "STATUS", "ORDERS", "AMOUNT"},
			row: func(m member.Member) []string {
				return []string{m.ID, m.Name, m.Email, string(m.Grade), string(m.Status), strconv.Itoa(m.TotalOrders), won(m.TotalAmount)}
			},
		}.command(cfg),
		resourceCmd[product.Product]{
			use:     "product",
			aliases: []string{"products"},
			short:   "Manage products",
			service: func(s *backoffice.Services) server.ResourceService[product.Product] { return s.Products },
			headers: []string{"ID", "NAME", "CATEGORY", "REGION", "STATUS", "PRICE", "STOCK"},
			row: func(p product.Product) []string {
				return []string{p.ID, p.Name, p.Category, p.Region, string(p.Status), won(p.Price), strconv.Itoa(p.Stock)}
			},
		}.command(cfg),
		resourceCmd[event.Event]{
			use:     "event",
			aliases: []string{"events"},
			short:   "Manage event board posts",
			service: func(s *backoffice.Services) server.ResourceService[event.Event] { return s.Events },
			headers: []string{"ID", "TITLE", "AUTHOR", "START", "END", "VIEWS"},
			row: func(e event.Event) []string {
				return []string{e.ID, e.Title, e.Author, e.StartDate, e.EndDate, strconv.Itoa(e.Views)}
			},
		}.command(cfg),
		resourceCmd[admin.Admin]{
			use:     "admin",
			aliases: []string{"admins"},
			short:   "Manage back-office administrators",
			service: func(s *backoffice.Services) server.ResourceService[admin.Admin] { return s.Admins },
			headers: []string{"ID", "USER", "NAME", "STATUS", "PERMISSIONS"},
			row: func(a admin.Admin) []string {
				return []string{a.Key(), a.UserID, a.Name, string(a.Status), strings.Join(a.Permissions, ", ")}
			},
		}.command(cfg),
		resourceCmd[policy.Policy]{
			use:     "policy",
			aliases: []string{"policies"},
			short:   "Manage policies",
			service: func(s *backoffice.Services) server.ResourceService[policy.Policy] { return s.Policies },
			headers: []string{"ID", "TITLE", "PRIORITY", "UPDATED"},
			row: func(p policy.Policy) []string {
				return []string{p.Key(), p.Title, strconv.Itoa(p.Priority), p.UpdatedAt}
			},
		}.command(cfg),
		resourceCmd[notice.Notice]{
			use:     "notice",
			aliases: []string{"notices"},
			short:   "Manage notices board posts",
			service: func(s *backoffice.Services) server.ResourceService[notice.Notice] { return s.Notices },
			headers: []string{"ID", "TITLE", "AUTHOR", "DATE", "VIEWS", "IMPORTANT"},
			row: func(n notice.Notice) []string {
				return []string{n.ID, n.Title, n.Author, n.CreatedAt, strconv.Itoa(n.Views), strconv.FormatBool(n.Important)}
			},
		}.command(cfg),
	}
}

func (rc resourceCmd[T]) command(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     rc.use,
		Aliases: rc.aliases,
		Short:   rc.short,
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Docf(`
			$ backoffice %[1]s list
			$ backoffice %[1]s view <id>
			$ backoffice %[1]s edit <id> --set key=value
			$ backoffice %[1]s delete <id>
		`, rc.use),
	}

	cmd.AddCommand(rc.listCommand(cfg), rc.viewCommand(cfg), rc.editCommand(cfg), rc.deleteCommand(cfg))
	for _, extra := range rc.extra {
		cmd.AddCommand(extra(cfg))
	}
	return cmd
}

func (rc resourceCmd[T]) listCommand(cfg *Config) *cobra.Command {
	var page, limit int
	var filters []string
	var search, searchType, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + rc.aliases[0],
		Example: heredoc.Docf(`
			$ backoffice %[1]s list --page 2 --limit 50
			$ backoffice %[1]s list -f status=결제완료 -f status=예약확정
			$ backoffice %[1]s list -q 김 --search-type customerName -o json
		`, rc.use),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := rc.service(newServices(cfg))

			q, err := filterValues(filters)
			if err != nil {
				return err
			}
			q.Set("page", strconv.Itoa(page))
			q.Set("limit", strconv.Itoa(limit))
			if search != "" {
				q.Set("q", search)
				q.Set(query.ScopeParam, searchType)
			}

			p, err := query.ParseParams(q, svc.Schema())
			if err != nil {
				return err
			}

			spinner := printer.Spin("")
			pg, err := svc.List(cmd.Context(), p)
			spinner.Stop()
			if err != nil {
				return err
			}

			if output == outputJSON {
				fmt.Println(prettyPrint(pg))
				return nil
			}

			report := [][]string{rc.headers}
			for _, rec := range pg.Data {
				report = append(report, rc.row(rec))
			}
			printer.Table(os.Stdout, report)
			fmt.Println(term.Cyanf("page %d of %d, %d total", pg.Pagination.Page, pg.Pagination.TotalPages, pg.Pagination.Total))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", query.DefaultPage, "page number")
	cmd.Flags().IntVar(&limit, "limit", query.DefaultLimit, "page size")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "criterion as key=value, repeat a key to match any of its values")
	cmd.Flags().StringVarP(&search, "query", "q", "", "search text")
	cmd.Flags().StringVar(&searchType, "search-type", "", "narrow the search to one attribute")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "output format, table or json")

	return cmd
}

func (rc resourceCmd[T]) viewCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "View a record",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rc.service(newServices(cfg)).GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(term.Bluef("%s", prettyPrint(rec)))
			return nil
		},
	}
}

func (rc resourceCmd[T]) editCommand(cfg *Config) *cobra.Command {
	var sets []string
	var filePath string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a record with a partial patch",
		Example: heredoc.Docf(`
			$ backoffice %[1]s edit <id> --set status=휴면
			$ backoffice %[1]s edit <id> --file patch.yaml
		`, rc.use),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := resource.Patch{}
			if filePath != "" {
				var err error
				if patch, err = parsePatchFile(filePath); err != nil {
					return err
				}
			}
			for _, kv := range sets {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected key=value", kv)
				}
				patch[k] = literal(v)
			}

			updated, err := rc.service(newServices(cfg)).Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Println(term.Greenf("updated %s %s", rc.use, args[0]))
			fmt.Println(prettyPrint(updated))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "attribute as key=value")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "JSON or YAML file holding the patch")

	return cmd
}

func (rc resourceCmd[T]) deleteCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rc.service(newServices(cfg)).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(term.Greenf("deleted %s %s", rc.use, args[0]))
			return nil
		},
	}
}

func reservationStatsCommand(cfg *Config) *cobra.Command {
	return statsCommand("stats", "Count reservations by status", func(ctx context.Context) (interface{}, error) {
		return newServices(cfg).Reservations.Stats(ctx)
	})
}

func settlementStatsCommand(cfg *Config) *cobra.Command {
	return statsCommand("stats", "Settlement totals, sales counts and period sales", func(ctx context.Context) (interface{}, error) {
		svcs := newServices(cfg)
		totals, err := svcs.Settlements.Stats(ctx)
		if err != nil {
			return nil, err
		}
		sales, err := svcs.Settlements.SalesStats(ctx)
		if err != nil {
			return nil, err
		}
		periods, err := svcs.Settlements.PeriodStats(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"totals": totals, "sales": sales, "periods": periods}, nil
	})
}

func statsCommand(use, short string, fetch func(context.Context) (interface{}, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fetch(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(prettyPrint(v))
			return nil
		},
	}
}

// newServices builds services for client commands. Logs go to stderr so
// that JSON output stays parseable.
func newServices(cfg *Config) *backoffice.Services {
	logger := log.NewLogrus(
		log.LogrusWithLevel(cfg.LogLevel),
		log.LogrusWithWriter(os.Stderr),
	)
	return backoffice.New(cfg.Backoffice, logger)
}

func filterValues(filters []string) (url.Values, error) {
	q := url.Values{}
	for _, f := range filters {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", f)
		}
		q.Add(k, v)
	}
	return q, nil
}

// literal reads numbers, booleans and null as JSON and anything else as text.
func literal(v string) interface{} {
	var out interface{}
	if err := json.Unmarshal([]byte(v), &out); err == nil {
		switch out.(type) {
		case float64, bool, nil:
			return out
		}
	}
	return v
}

func parsePatchFile(filePath string) (resource.Patch, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	patch := resource.Patch{}
	switch filepath.Ext(filePath) {
	case ".json":
		if err := json.Unmarshal(b, &patch); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	case ".yaml", ".yml":
		var raw map[string]interface{}
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
		for k, v := range raw {
			patch[k] = stringKeys(v)
		}
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filePath))
	}
	return patch, nil
}

// stringKeys converts the map[interface{}]interface{} values yaml.v2 produces.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case []interface{}:
		for i := range t {
			t[i] = stringKeys(t[i])
		}
		return t
	}
	return v
}

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

func won(amount int64) string {
	return fmt.Sprintf("₩%d", amount)
}
