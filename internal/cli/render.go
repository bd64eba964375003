package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
	"matchbook/internal/infra/storage"
)

// Renderer formats orders and trades for terminal display, converting tick
// prices back into decimal strings.
type Renderer struct {
	scale int32
}

// NewRenderer creates a renderer for the given price scale.
func NewRenderer(priceScale int) *Renderer {
	return &Renderer{scale: int32(priceScale)}
}

// FormatPrice renders a tick price at the session's scale.
func (r *Renderer) FormatPrice(ticks int64) string {
	return decimal.New(ticks, -r.scale).String()
}

// FormatOrder renders an order as "<SIDE> <quantity>@<price> #<id>".
func (r *Renderer) FormatOrder(o domain.Order) string {
	return fmt.Sprintf("%s %d@%s #%d", o.Side, o.Quantity, r.FormatPrice(o.Price), o.ID)
}

// FormatTrade renders one execution; the active (incoming) order id comes
// first, the passive (resting) order id second.
func (r *Renderer) FormatTrade(t domain.Trade) string {
	return fmt.Sprintf("TRADE %d@%s (#%d -> #%d)", t.Quantity, r.FormatPrice(t.Price), t.ActiveOrderID, t.PassiveOrderID)
}

// FormatTradeRecord renders a journaled trade, including when it happened.
func (r *Renderer) FormatTradeRecord(rec storage.TradeRecord) string {
	return fmt.Sprintf("%s TRADE %d@%s (#%d -> #%d)",
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
		rec.Quantity, r.FormatPrice(rec.Price), rec.ActiveOrderID, rec.PassiveOrderID)
}
