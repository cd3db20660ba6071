package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/shopspring/decimal"
)

// Plunk is a thin client for the Plunk transactional email API.
type Plunk struct {
	HttpClient *http.Client
	Config     *utils.Config
}

type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *Plunk) makeRequest(method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, s.Config.PlunkBaseUrl+endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.Config.PlunkApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.New(string(respBody))
	}

	return respBody, nil
}

// SendEmail sends a plain transactional email.
func (s *Plunk) SendEmail(to, subject, body string) error {
	_, err := s.makeRequest(http.MethodPost, "/v1/send", EmailRequest{
		To:      to,
		Subject: subject,
		Body:    body,
	})
	return err
}

// SendTransferReceipt emails the sender a confirmation of a completed
// transfer. Best effort, callers log and move on when it fails.
func (s *Plunk) SendTransferReceipt(to, receiverName, reference string, amount decimal.Decimal) error {
	body := fmt.Sprintf(
		"You sent %s to %s. Reference: %s.",
		amount.String(), receiverName, reference,
	)
	return s.SendEmail(to, "Money sent successfully", body)
}
