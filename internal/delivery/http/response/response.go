package response

import (
	"time"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// Transaction is the status block carried by write, list and error envelopes.
type Transaction struct {
	Message   string   `json:"message"`
	Detail    string   `json:"detail,omitempty"`
	DateTime  string   `json:"dateTime"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

type MessageResult struct {
	Message string `json:"message"`
}

// Envelope is the body shape for every JSON response except the admin listing.
type Envelope struct {
	Transaction *Transaction `json:"transaction,omitempty"`
	Result      interface{}  `json:"result,omitempty"`
}

// now is swapped in tests
var now = time.Now

func dateTime() string {
	return now().Format(time.RFC3339)
}

// Read sends { result: [ doc ] }
func Read(c *gin.Context, code int, doc interface{}) {
	c.JSON(code, Envelope{Result: []interface{}{doc}})
}

// Write sends the acknowledgement of a committed change
func Write(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Transaction: &Transaction{Message: "OK", DateTime: dateTime()},
		Result:      MessageResult{Message: message},
	})
}

// List sends a collection; items must be a non-nil slice to render as [].
func List(c *gin.Context, code int, items interface{}) {
	c.JSON(code, Envelope{
		Transaction: &Transaction{Message: "OK", DateTime: dateTime()},
		Result:      items,
	})
}

// Error sends the unified error envelope
func Error(c *gin.Context, code int, detail string, errs []string) {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Envelope{
		Transaction: &Transaction{
			Message:   "Error",
			Detail:    detail,
			DateTime:  dateTime(),
			Errors:    errs,
			RequestID: idStr,
		},
	})
}
