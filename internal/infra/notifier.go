package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotifyRequest is the notification service's expected body.
type NotifyRequest struct {
	Email   string `json:"email"`
	OrderID uint64 `json:"orderId"`
	Amount  string `json:"amount"`
}

type Notifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewNotifier(baseURL string, timeout time.Duration) *Notifier {
	return &Notifier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Notify makes a single attempt against the notification service. There is
// no retry and no queue; the caller decides what to do with the error, which
// for checkout means logging it and nothing else.
func (n *Notifier) Notify(ctx context.Context, email string, orderID uint64, amount string) error {
	body, err := json.Marshal(NotifyRequest{Email: email, OrderID: orderID, Amount: amount})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/send-email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
