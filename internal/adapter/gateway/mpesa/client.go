package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"settlement-ledger/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// ProviderName is the name reported in metrics and confirmation signals.
const ProviderName = "mpesa"

const (
	tokenPath    = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath  = "/mpesa/stkpush/v1/processrequest"
	timestampFmt = "20060102150405"
	// tokenSkew renews the cached token slightly before Daraja expires it.
	tokenSkew = time.Minute
)

// Config holds the Daraja credentials and endpoints.
type Config struct {
	BaseURL           string
	ConsumerKey       string
	ConsumerSecret    string
	Shortcode         string
	Passkey           string
	CallbackURL       string
	TokenRetryTimeout time.Duration // total time spent retrying a token fetch; 0 = 10s
}

// Client implements ports.PaymentGateway against the Daraja STK push API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

var _ ports.PaymentGateway = (*Client)(nil)

// NewClient creates a Daraja client. httpClient may be nil.
func NewClient(cfg Config, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.TokenRetryTimeout == 0 {
		cfg.TokenRetryTimeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log.With().Str("provider", ProviderName).Logger(),
		now:        time.Now,
	}
}

func (c *Client) Name() string { return ProviderName }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"` // seconds, sent as a string
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	// Error responses use a different shape.
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Initiate sends an STK push to the payer's phone. The CheckoutRequestID in
// the response is the correlation id echoed by the callback.
func (c *Client) Initiate(ctx context.Context, req ports.GatewayRequest) (*ports.GatewayResult, error) {
	if !req.Amount.Equal(req.Amount.Truncate(0)) {
		return nil, &ports.GatewayRejection{Code: "amount", Reason: "M-Pesa amounts must be whole shillings"}
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().Format(timestampFmt)
	payload := stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          Password(c.cfg.Shortcode, c.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount.IntPart(),
		PartyA:            req.PayerAccount,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       req.PayerAccount,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.Reference,
		TransactionDesc:   req.Description,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling stk push: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating stk push request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stk push request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading stk push response: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("stk push: status %d: %s", resp.StatusCode, raw)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
		return nil, fmt.Errorf("stk push: token rejected")
	}

	var out stkPushResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding stk push response (status %d): %w", resp.StatusCode, err)
	}

	if out.ErrorCode != "" {
		return nil, &ports.GatewayRejection{Code: out.ErrorCode, Reason: out.ErrorMessage}
	}
	if out.ResponseCode != "0" || out.CheckoutRequestID == "" {
		return nil, &ports.GatewayRejection{Code: out.ResponseCode, Reason: out.ResponseDescription}
	}

	c.log.Info().
		Str("payment_id", req.PaymentID.String()).
		Str("checkout_request_id", out.CheckoutRequestID).
		Msg("stk push accepted")

	return &ports.GatewayResult{
		CorrelationID: out.CheckoutRequestID,
		Message:       out.CustomerMessage,
	}, nil
}

// Password builds the STK push password: base64(shortcode + passkey + timestamp).
func Password(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

// accessToken returns the cached OAuth token, fetching a new one when it is
// missing or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	var tok tokenResponse
	bckoff := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(100*time.Millisecond),
		backoff.WithMaxElapsedTime(c.cfg.TokenRetryTimeout),
	)
	attempt := 0
	err := backoff.Retry(func() (err error) {
		attempt++
		tok, err = c.fetchToken(ctx)
		if err != nil {
			c.log.Warn().Err(err).Int("attempt", attempt).Msg("token fetch failed")
		}
		return err
	}, backoff.WithContext(bckoff, ctx))
	if err != nil {
		return "", fmt.Errorf("fetching access token: %w", err)
	}

	ttl := time.Hour
	if secs, err := strconv.Atoi(tok.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	if ttl > 2*tokenSkew {
		ttl -= tokenSkew
	}
	c.token = tok.AccessToken
	c.expiresAt = c.now().Add(ttl)
	return c.token, nil
}

func (c *Client) fetchToken(ctx context.Context) (tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return tokenResponse{}, backoff.Permanent(fmt.Errorf("creating token request: %w", err))
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("reading token response: %w", err)
	}
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return tokenResponse{}, fmt.Errorf("token endpoint: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		// Bad credentials do not improve with retries.
		return tokenResponse{}, backoff.Permanent(fmt.Errorf("token endpoint: status %d: %s", resp.StatusCode, body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return tokenResponse{}, backoff.Permanent(fmt.Errorf("decoding token response: %w", err))
	}
	if tok.AccessToken == "" {
		return tokenResponse{}, backoff.Permanent(errors.New("token response has no access_token"))
	}
	return tok, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
