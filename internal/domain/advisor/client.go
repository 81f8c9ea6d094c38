package advisor

import "context"

// Client is the boundary to the hosted text-generation service. The reply
// is opaque free text (possibly markdown); nothing structured is parsed
// out of it.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
