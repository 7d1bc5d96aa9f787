package interfaces

import (
	"context"
	"encoding/json"
)

// IExtractionGateway abstracts the external AI field-extraction service used
// by the bulk PDF importer.
//
// The gateway receives the raw text of a work-order document and returns the
// provider's best-effort structured guesses as an opaque JSON array. Parsing
// and validation of the guesses stay with the caller; transient provider
// failures (rate limit, overload) are retried inside the gateway.
type IExtractionGateway interface {
	ExtractFields(ctx context.Context, documentText string) (json.RawMessage, error)
}
