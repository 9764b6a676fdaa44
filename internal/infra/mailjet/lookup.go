// Package mailjet finds order confirmation emails in the Mailjet message log.
package mailjet

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"vradmin/config"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/httpx"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.mailjet.com"
	messagePath    = "/v3/REST/message"

	orderConfirmationSubject = "Tack för din order från imvi labs!"
	renewalSubjectFragment   = "förnyelseorder"
)

// ErrNotConfigured is returned when no Mailjet credentials are set.
var ErrNotConfigured = errors.New("mailjet not configured")

type message struct {
	ContactAlt string `json:"ContactAlt"`
	Subject    string `json:"Subject"`
	Status     string `json:"Status"`
}

type messageList struct {
	Count int       `json:"Count"`
	Data  []message `json:"Data"`
	Total int       `json:"Total"`
}

type lookup struct {
	http   *httpx.Client
	limit  int
	logger *slog.Logger
}

// LookupParams holds dependencies for the order email lookup, injected by Fx
type LookupParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOrderEmailLookup creates the Mailjet backed order email lookup.
func NewOrderEmailLookup(params LookupParams) service.OrderEmailLookup {
	cfg := params.Config.Mailjet
	if cfg == nil {
		cfg = &config.MailjetConfig{}
	}
	logger := params.Logger.With(slog.String("component", "mailjet"))

	if cfg.APIKey == "" {
		logger.Warn("Mailjet credentials not set, order email status disabled")

		return &lookup{logger: logger}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &lookup{
		http:   httpx.New(baseURL, logger, httpx.WithBasicAuth(cfg.APIKey, cfg.APISecret)),
		limit:  cfg.Limit,
		logger: logger,
	}
}

func (l *lookup) OrderEmailStatus(ctx context.Context, email string) (*string, error) {
	if l.http == nil {
		return nil, ErrNotConfigured
	}

	contact := strings.ToLower(strings.TrimSpace(email))
	if contact == "" {
		return nil, nil
	}

	query := url.Values{
		"ContactAlt":     {contact},
		"ShowSubject":    {"true"},
		"ShowContactAlt": {"true"},
	}
	if l.limit > 0 {
		query.Set("Limit", strconv.Itoa(l.limit))
	}

	var list messageList
	if err := l.http.GetJSON(ctx, messagePath, query, &list); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "mailjet messages")
	}

	return orderEmailStatus(list.Data, contact), nil
}

// orderEmailStatus returns the status of the first order confirmation or
// renewal email sent to contact.
func orderEmailStatus(messages []message, contact string) *string {
	for _, m := range messages {
		if m.ContactAlt != contact {
			continue
		}
		if m.Subject == orderConfirmationSubject || strings.Contains(m.Subject, renewalSubjectFragment) {
			status := m.Status

			return &status
		}
	}

	return nil
}
