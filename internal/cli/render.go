package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

var (
	accent  = lipgloss.Color("#2563EB")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	keyStyle   = lipgloss.NewStyle().Foreground(dim).Width(18)
	okStyle    = lipgloss.NewStyle().Foreground(success)
	errStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

func renderJSON(cmd *cobra.Command, body map[string]any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

// renderResult summarises a shipment or label response. Shipment creation
// answers with a "shipments" list; label purchase answers with one object.
func renderResult(kind string, body map[string]any) string {
	record := body
	if list, ok := body["shipments"].([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			record = first
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(kind+" created") + "\n")
	for _, key := range []string{"shipment_id", "label_id", "status", "tracking_number", "service_code", "ship_date"} {
		if v, ok := record[key]; ok && v != nil && v != "" {
			b.WriteString(keyStyle.Render(key) + fmt.Sprint(v) + "\n")
		}
	}
	if cost, ok := record["shipment_cost"].(map[string]any); ok {
		b.WriteString(keyStyle.Render("shipment_cost") + money(cost) + "\n")
	}
	if dl, ok := record["label_download"].(map[string]any); ok {
		if pdf, ok := dl["pdf"].(string); ok {
			b.WriteString(keyStyle.Render("label_pdf") + pdf + "\n")
		}
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// renderRates lists the quotes found under rate_response.rates.
func renderRates(body map[string]any) string {
	resp, _ := body["rate_response"].(map[string]any)
	rates, _ := resp["rates"].([]any)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d rates", len(rates))) + "\n")
	for _, r := range rates {
		rate, ok := r.(map[string]any)
		if !ok {
			continue
		}
		amount, _ := rate["shipping_amount"].(map[string]any)
		line := fmt.Sprintf("%-14v %-28v %s", rate["rate_id"], rate["service_code"], money(amount))
		if days, ok := rate["delivery_days"].(float64); ok {
			line += fmt.Sprintf("  %d days", int(days))
		}
		b.WriteString(okStyle.Render(line) + "\n")
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func money(m map[string]any) string {
	if m == nil {
		return "-"
	}
	amount, _ := m["amount"].(float64)
	currency, _ := m["currency"].(string)
	return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(currency))
}

// renderError lists carrier messages one per line when there are any.
func renderError(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		lines := []string{errStyle.Render(fmt.Sprintf("carrier rejected the request (%d)", apiErr.StatusCode))}
		for _, m := range apiErr.Messages {
			lines = append(lines, "  - "+m)
		}
		return strings.Join(lines, "\n")
	}
	return errStyle.Render("error: ") + err.Error()
}
