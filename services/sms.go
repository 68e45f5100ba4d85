package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// SendSMS pushes a message through the 2factor.in gateway. Like email,
// delivery is best-effort; callers log failures and move on.
func SendSMS(phone, message string) error {
	apiKey := os.Getenv("TWO_FACTOR_API_KEY")
	senderID := os.Getenv("TWO_FACTOR_SENDER_ID")
	if apiKey == "" {
		return fmt.Errorf("TWO_FACTOR_API_KEY is not set")
	}

	endpoint := fmt.Sprintf(
		"https://2factor.in/API/V1/%s/SMS/%s/%s/%s",
		apiKey, phone, url.PathEscape(message), senderID,
	)

	resp, err := http.Get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
