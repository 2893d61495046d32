package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"relationship_mojo_backend/internal/model"
)

// HashResponses produces the content address for an analysis cache entry:
// sha256 over the canonical JSON of the response collection. Responses must
// already be in their stable submission order.
func HashResponses(responses []model.QuestionResponse) string {
	data, _ := json.Marshal(responses)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
