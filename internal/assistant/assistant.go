package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/vibecommerce/storefront/internal/model"
)

// FallbackReply is returned whenever the oracle errors, times out or comes
// back empty. The assistant must never surface an internal failure as a
// user-facing hard error.
const FallbackReply = "Sorry, I'm having a little trouble right now. Please try again in a moment."

// CatalogLister is the slice of the catalog the assistant needs.
type CatalogLister interface {
	List(ctx context.Context) ([]model.Product, error)
}

// Reply is one assistant turn. Navigate is empty when the oracle embedded no
// directive; Utterance never contains directive syntax.
type Reply struct {
	Utterance string
	Navigate  string
}

// Assistant orchestrates one chat turn: prompt from the live catalog, a
// bounded oracle call, directive extraction.
type Assistant struct {
	Oracle  Oracle
	Catalog CatalogLister
	Timeout time.Duration
}

func New(oracle Oracle, catalog CatalogLister, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Assistant{Oracle: oracle, Catalog: catalog, Timeout: timeout}
}

// Respond produces the assistant's reply to one customer message. All
// failure modes degrade to FallbackReply with no directive.
func (a *Assistant) Respond(ctx context.Context, message string) Reply {
	products, err := a.Catalog.List(ctx)
	if err != nil {
		// The prompt degrades to a catalog-less persona; the turn continues.
		log.Printf("assistant: catalog list failed: %v", err)
		products = nil
	}
	prompt := BuildPrompt(products, message)

	cctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	text, err := a.Oracle.Generate(cctx, prompt)
	if err != nil {
		log.Printf("assistant: oracle call failed: %v", err)
		return Reply{Utterance: FallbackReply}
	}
	if strings.TrimSpace(text) == "" {
		return Reply{Utterance: FallbackReply}
	}

	utterance, directive := ParseReply(text)
	return Reply{Utterance: utterance, Navigate: directive}
}
