package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/smartfinder/smartfinder/models"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error
// carrying the server's message envelope when one is present.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	sentinel := ErrRequestRejected
	if resp.StatusCode() >= 500 {
		sentinel = ErrServerFailure
	}

	var msg models.ResponseMessage
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Mensagem != "" {
		return fmt.Errorf("%w: %s", sentinel, msg.Mensagem)
	}

	return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode())
}
