package notification

import (
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tpl  string
		ctx  RenderContext
		want string
	}{
		{name: "no placeholders", tpl: "hello", ctx: RenderContext{Name: "Ali"}, want: "hello"},
		{
			name: "fee reminder",
			tpl:  "Dear {name}, Rs. {amount} for {month} is due on {dueDate}.",
			ctx:  RenderContext{Name: "Ali Raza", Amount: 15000, Month: "2026-09", DueDate: due},
			want: "Dear Ali Raza, Rs. 15000 for 2026-09 is due on 2026-09-05.",
		},
		{
			name: "payment confirmation",
			tpl:  "Received Rs. {amount}. Receipt: {receiptNumber}",
			ctx:  RenderContext{Amount: 8000, ReceiptNumber: "RCP-AB12CD34"},
			want: "Received Rs. 8000. Receipt: RCP-AB12CD34",
		},
		{
			name: "free-form message",
			tpl:  "{name}: {message}",
			ctx:  RenderContext{Name: "Ali", Message: "Mess closed on Friday"},
			want: "Ali: Mess closed on Friday",
		},
		{
			name: "missing values leave placeholders visible",
			tpl:  "Dear {name}, {amount} due in {days} days",
			ctx:  RenderContext{Name: "Ali"},
			want: "Dear Ali, {amount} due in {days} days",
		},
		{name: "empty context", tpl: "Dear {name}", ctx: RenderContext{}, want: "Dear {name}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.tpl, tt.ctx); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
