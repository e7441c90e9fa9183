package client

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"yolink-cli/pkg/models"
)

// APIPath is the single endpoint every hub method is posted to.
const APIPath = "/open/yolink/v2/api"

// requestTimeout bounds each call; there are no retries.
const requestTimeout = 10 * time.Second

type YoLinkClient struct {
	HTTP *resty.Client
}

type ClientConfig struct {
	BaseURL string
	Token   string
}

// Request is the JSON body of every hub call. TargetDevice and Token are
// only set for per-device methods; the token authorizes that one device.
type Request struct {
	Method       string         `json:"method"`
	TargetDevice string         `json:"targetDevice,omitempty"`
	Token        string         `json:"token,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
}

func New(cfg ClientConfig) *YoLinkClient {
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetTimeout(requestTimeout)
	r.SetHeader("Content-Type", "application/json")
	r.SetAuthToken(cfg.Token)

	// Local hubs ship with a self-signed certificate, so verification is
	// disabled rather than requiring users to install the hub CA.
	r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	return &YoLinkClient{HTTP: r}
}

// Call posts one request and decodes the response envelope. The raw body is
// returned alongside so callers can keep it for a JSON dump. Envelope
// success/failure is not classified here; callers decide whether a bad
// envelope is fatal (catalog) or local (per-device state).
func (c *YoLinkClient) Call(req Request) (*models.Envelope, []byte, error) {
	resp, err := c.HTTP.R().
		SetBody(req).
		Post(APIPath)

	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", req.Method, err)
	}
	if resp.IsError() {
		return nil, nil, fmt.Errorf("%s: hub returned HTTP %d: %s", req.Method, resp.StatusCode(), resp.String())
	}

	body := resp.Body()
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("%s: invalid JSON response: %w", req.Method, err)
	}

	return &env, body, nil
}

// APIError is a hub response whose envelope signals failure.
type APIError struct {
	Code string
	Desc string
}

func (e *APIError) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("hub error (code %s)", e.Code)
	}
	return fmt.Sprintf("hub error (code %s): %s", e.Code, e.Desc)
}

// descFailureKeywords flags envelopes whose desc contradicts a success code.
// Some hub firmwares report expired tokens with code "0", so the desc text
// is checked as well.
var descFailureKeywords = []string{"error", "expired", "invalid"}

// EnvelopeError classifies the {code, desc} pair of a decoded envelope.
// It returns nil when the envelope signals success. An omitted code counts
// as success; the desc keywords still apply to such envelopes.
func EnvelopeError(env *models.Envelope) error {
	if env.Code != "" && env.Code != "0" && env.Code != "000000" {
		return &APIError{Code: env.Code, Desc: env.Desc}
	}
	desc := strings.ToLower(env.Desc)
	for _, kw := range descFailureKeywords {
		if strings.Contains(desc, kw) {
			return &APIError{Code: env.Code, Desc: env.Desc}
		}
	}
	return nil
}
