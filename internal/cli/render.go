package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// printPartTable prints parts in a human-readable table.
func printPartTable(w io.Writer, parts []types.PartRecord) {
	if len(parts) == 0 {
		fmt.Fprintln(w, "No parts found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tDEPARTMENT\tITEM CODE\tPART NAME\tDESCRIPTION\tUNIT PRICE\tTICKETS\tACQUIRED\tSERIAL\tSUPPLIER")
	for _, p := range parts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			p.ID,
			p.Department,
			p.ItemCode,
			truncate(p.PartName, 30),
			truncate(p.Description, 30),
			strconv.FormatFloat(p.UnitPrice, 'f', 2, 64),
			p.TicketCount,
			p.DateAcquiredString(),
			p.SerialNumber,
			p.Supplier,
		)
	}
	tw.Flush()

	// Print output, trimming trailing whitespace from each line
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(w, "Total: %d part(s)\n", len(parts))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printDraft prints the staged values in form order.
func printDraft(w io.Writer, d types.FormDraft) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, field := range types.DraftFields {
		value, _ := d.Get(field)
		fmt.Fprintf(tw, "%s\t%q\n", field, value)
	}
	tw.Flush()
}

// printCatalog prints the option lists.
func printCatalog(w io.Writer, c types.Catalog) {
	fmt.Fprintf(w, "departments: %s\n", strings.Join(c.Departments, ", "))
	fmt.Fprintf(w, "item codes:  %s\n", strings.Join(c.ItemCodes, ", "))
	fmt.Fprintf(w, "categories:  %s\n", strings.Join(c.Categories, ", "))
}

// printCounters writes every metric family gathered from reg in the
// Prometheus text exposition format.
func printCounters(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
