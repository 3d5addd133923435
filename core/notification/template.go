package notification

import (
	"strconv"
	"strings"
	"time"
)

// RenderContext carries the values substituted into a template's placeholders.
// Empty values leave their placeholder untouched so a half-resolved message is
// visible rather than silently blanked.
type RenderContext struct {
	Name          string
	Amount        int
	Month         string
	DueDate       time.Time
	ReceiptNumber string
	Days          int
	Message       string
}

// Render substitutes {token} placeholders in tpl from ctx.
func Render(tpl string, ctx RenderContext) string {
	pairs := make([]string, 0, 14)
	if ctx.Name != "" {
		pairs = append(pairs, "{name}", ctx.Name)
	}
	if ctx.Amount != 0 {
		pairs = append(pairs, "{amount}", strconv.Itoa(ctx.Amount))
	}
	if ctx.Month != "" {
		pairs = append(pairs, "{month}", ctx.Month)
	}
	if !ctx.DueDate.IsZero() {
		pairs = append(pairs, "{dueDate}", ctx.DueDate.Format("2006-01-02"))
	}
	if ctx.ReceiptNumber != "" {
		pairs = append(pairs, "{receiptNumber}", ctx.ReceiptNumber)
	}
	if ctx.Days != 0 {
		pairs = append(pairs, "{days}", strconv.Itoa(ctx.Days))
	}
	if ctx.Message != "" {
		pairs = append(pairs, "{message}", ctx.Message)
	}
	if len(pairs) == 0 {
		return tpl
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
