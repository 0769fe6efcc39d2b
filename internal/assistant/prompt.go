package assistant

import (
	"fmt"
	"strings"

	"github.com/vibecommerce/storefront/internal/model"
)

// The Sam persona. The navigation block teaches the oracle the directive
// protocol that ParseReply undoes on the way back out.
const promptTemplateHead = `Context: You are Sam, a human shopping assistant at Vibe Commerce electronics store. Be friendly and helpful.

Products Available:
`

const promptTemplateTail = `
Navigation Instructions:
- If customer wants to go to cart page, end your response with: NAVIGATE:/cart
- If customer wants to go to admin panel, end your response with: NAVIGATE:/admin
- If customer wants to go to home/shop/products page, end your response with: NAVIGATE:/
- Only add NAVIGATE: when customer explicitly asks to go somewhere

Guidelines:
- You're human, not AI
- Keep answers brief and helpful
- Focus on product recommendations and store info
- Never mention AI systems

Customer: %s
Sam:`

// BuildPrompt composes the persona, the current catalog and the customer
// message into one oracle prompt.
func BuildPrompt(products []model.Product, message string) string {
	var b strings.Builder
	b.WriteString(promptTemplateHead)
	if len(products) == 0 {
		b.WriteString("- (catalog temporarily unavailable)\n")
	}
	for _, p := range products {
		fmt.Fprintf(&b, "- %s - ₹%.2f\n", p.Name, p.Price)
	}
	fmt.Fprintf(&b, promptTemplateTail, message)
	return b.String()
}
