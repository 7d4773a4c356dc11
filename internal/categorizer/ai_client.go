package categorizer

import "context"

// AIClient is the optional last-resort categorization service consulted
// only when both deterministic signals default. Implementations return
// one of the known category labels.
type AIClient interface {
	Categorize(ctx context.Context, receiptText string) (string, error)
}
