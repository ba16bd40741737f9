package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmissionIDHeader carries a unique id for every webhook delivery so the
// receiver can de-duplicate.
const SubmissionIDHeader = "X-Submission-ID"

// ErrNoEndpoint is returned when a webhook URL is not configured.
var ErrNoEndpoint = errors.New("forms: webhook url not configured")

// WebhookError reports a non-2xx webhook response.
type WebhookError struct {
	URL  string
	Code int
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("forms: POST %s: status %d", e.URL, e.Code)
}

// Submitter delivers validated forms.
type Submitter interface {
	SubmitContact(ctx context.Context, c Contact) error
	SubmitApplication(ctx context.Context, a Application) error
}

// WebhookConfig holds the webhook endpoints.
type WebhookConfig struct {
	ContactURL string
	CareersURL string
	Timeout    time.Duration
}

// WebhookClient posts forms to third-party webhooks. Each submission is a
// single attempt.
type WebhookClient struct {
	client     *http.Client
	contactURL string
	careersURL string
	newID      func() string
}

// NewWebhookClient creates a WebhookClient.
func NewWebhookClient(cfg WebhookConfig) *WebhookClient {
	return &WebhookClient{
		client:     &http.Client{Timeout: cfg.Timeout},
		contactURL: cfg.ContactURL,
		careersURL: cfg.CareersURL,
		newID:      func() string { return uuid.NewString() },
	}
}

// SubmitContact validates c and posts it as JSON. Invalid input is returned as
// FieldErrors without any network call.
func (w *WebhookClient) SubmitContact(ctx context.Context, c Contact) error {
	if errs := c.Validate(); errs != nil {
		return errs
	}
	body, err := json.Marshal(c.Normalize())
	if err != nil {
		return fmt.Errorf("forms: encode contact: %w", err)
	}
	return w.post(ctx, w.contactURL, "application/json", bytes.NewReader(body))
}

// SubmitApplication validates a and posts it as multipart form data with the
// resume attached when present.
func (w *WebhookClient) SubmitApplication(ctx context.Context, a Application) error {
	if errs := a.Validate(); errs != nil {
		return errs
	}
	body, contentType, err := EncodeApplication(a.Normalize(), a.Resume)
	if err != nil {
		return err
	}
	return w.post(ctx, w.careersURL, contentType, body)
}

func (w *WebhookClient) post(ctx context.Context, url, contentType string, body io.Reader) error {
	if url == "" {
		return ErrNoEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("forms: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(SubmissionIDHeader, w.newID())

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("forms: POST %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &WebhookError{URL: url, Code: resp.StatusCode}
	}
	return nil
}

// EncodeApplication builds the multipart body for an application. Skills are
// repeated under "skills[]"; the resume, if any, is the "resumeFile" part.
func EncodeApplication(a Application, resume *Resume) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"fullName", a.FullName},
		{"phone", a.Phone},
		{"email", a.Email},
		{"position", a.Position},
		{"yearsExperience", a.YearsExperience},
		{"driversLicense", a.DriversLicense},
		{"weekendAvailability", a.WeekendAvailability},
		{"workAuthorized", a.WorkAuthorized},
		{"reliableTransportation", a.ReliableTransportation},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("forms: encode %s: %w", f.name, err)
		}
	}
	for _, s := range a.Skills {
		if err := mw.WriteField("skills[]", s); err != nil {
			return nil, "", fmt.Errorf("forms: encode skills: %w", err)
		}
	}
	if err := mw.WriteField("experienceDescription", a.ExperienceDescription); err != nil {
		return nil, "", fmt.Errorf("forms: encode experienceDescription: %w", err)
	}
	if resume != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			ResumeField, escapeQuotes(resume.Filename)))
		h.Set("Content-Type", resume.MediaType())
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("forms: encode resume: %w", err)
		}
		if _, err := part.Write(resume.Data); err != nil {
			return nil, "", fmt.Errorf("forms: encode resume: %w", err)
		}
	}
	for _, f := range []struct{ name, value string }{
		{"availableStartDate", a.AvailableStartDate},
		{"referralSource", a.ReferralSource},
	} {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("forms: encode %s: %w", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("forms: encode application: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
