package ai

import (
	"fmt"
	"strings"
	"time"

	"victory-pos/internal/models"
	"victory-pos/internal/rbac"
)

// BuildContext renders the business data the assistant is allowed to see into
// the system instruction. Redaction happens here, at prompt construction:
// buy prices and profit never enter the context for roles that may not view
// them, so the model cannot leak what it was never given.
func BuildContext(role models.Role, snap models.Snapshot, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are VICTORY-ID AI, the business analyst of a laptop reselling shop.\n")
	fmt.Fprintf(&b, "Today is %s. The requesting user's role is %s.\n\n", now.Format("2006-01-02 15:04"), role)

	b.WriteString("INVENTORY:\n")
	for _, l := range snap.Inventory {
		fmt.Fprintf(&b, "- %s %s | %s, %s, %s | condition %s | stock %d | sell price %.0f",
			l.Brand, l.Model, l.Specs.CPU, l.Specs.RAM, l.Specs.Storage, l.Condition, l.Stock, l.SellPrice)
		if rbac.CanView(role, rbac.FieldBuyPrice) {
			fmt.Fprintf(&b, " | buy price %.0f", l.BuyPrice)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTRANSACTIONS (%d total):\n", len(snap.Transactions))
	for _, tx := range snap.Transactions {
		fmt.Fprintf(&b, "- %s | %s | total %.0f | %s | by %s\n",
			tx.InvoiceNumber, tx.CustomerName, tx.Total, tx.PaymentMethod, tx.CreatedBy)
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("- Answer politely and professionally, using Markdown tables for data listings.\n")
	if rbac.CanView(role, rbac.FieldProfit) {
		b.WriteString("- You may discuss buy prices and profit figures when asked.\n")
	} else {
		b.WriteString("- NEVER state buy prices or profit figures; they are not available to this user. Focus on stock and sell-side data.\n")
	}
	b.WriteString("- Only use the data above; do not invent inventory or sales.\n")

	return b.String()
}
