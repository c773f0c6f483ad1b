package cart

import (
	"fmt"
	"net/url"
	"strings"
)

// PlaceholderPhone is used when no WhatsApp number is configured, so the
// hand-off URL can always be built.
const PlaceholderPhone = "1234567890"

const divider = "──────────────────────────────"

// Message renders a cart into the order text sent over WhatsApp. An empty
// cart renders to the empty string: there is nothing to send.
func Message(state State) string {
	if len(state.Items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("¡Hola! Me gustaría hacer el siguiente pedido:")
	b.WriteString("\n" + divider + "\n")

	for i, item := range state.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Precio unitario: $%.2f\n", item.Price)
		fmt.Fprintf(&b, "   Subtotal: $%.2f\n", item.Price*float64(item.Quantity))
	}

	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "TOTAL: $%.2f", state.TotalAmount)
	b.WriteString("\n\n" + divider + "\n")
	b.WriteString("¡Espero su confirmación! 😊")

	return b.String()
}

// CheckoutURL builds the deep link that hands the order off to WhatsApp.
// Returns "" for an empty cart; callers must not attempt the hand-off then.
func CheckoutURL(baseURL, phone string, state State) string {
	return MessageURL(baseURL, phone, Message(state))
}

// MessageURL wraps an already-rendered order text into the deep link, so a
// caller that needs both the text and the link renders the cart only once.
// Returns "" for an empty text.
func MessageURL(baseURL, phone, message string) string {
	if message == "" {
		return ""
	}
	if phone == "" {
		phone = PlaceholderPhone
	}
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(baseURL, "/"), phone, escape(message))
}

// escape percent-encodes for a query value. Spaces become %20 rather than
// '+' because chat apps don't decode the form-encoding variant.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
