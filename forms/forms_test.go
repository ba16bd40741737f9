package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() Contact {
	return Contact{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "(773) 555-0100",
		Service: "Fertilizing",
		Message: "Front and back yard.",
	}
}

func validApplication() Application {
	return Application{
		FullName:               "Luis Ortega",
		Phone:                  "312-555-0188",
		Email:                  "luis@example.com",
		Position:               "Maintenance Crew Member",
		YearsExperience:        "3–5 years",
		DriversLicense:         "yes",
		WeekendAvailability:    "no",
		WorkAuthorized:         "yes",
		ReliableTransportation: "yes",
		Skills:                 []string{"Landscape maintenance", "Equipment operation"},
		ExperienceDescription:  "Two seasons on a mowing crew.",
		AvailableStartDate:     "Next Monday",
		ReferralSource:         "Google Search",
	}
}

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func TestContactValidate(t *testing.T) {
	assert.Nil(t, validContact().Validate())

	tests := []struct {
		name  string
		edit  func(*Contact)
		field string
		msg   string
	}{
		{"blank name", func(c *Contact) { c.Name = "   " }, "name", "Name is required"},
		{"missing email", func(c *Contact) { c.Email = "" }, "email", "Email is required"},
		{"bad email", func(c *Contact) { c.Email = "jane@example" }, "email", "Please enter a valid email"},
		{"email with space", func(c *Contact) { c.Email = "jane doe@example.com" }, "email", "Please enter a valid email"},
		{"missing phone", func(c *Contact) { c.Phone = "" }, "phone", "Phone number is required"},
		{"missing service", func(c *Contact) { c.Service = "" }, "service", "Please select a service"},
		{"unknown service", func(c *Contact) { c.Service = "Pool Cleaning" }, "service", "Please select a service"},
		{"blank message", func(c *Contact) { c.Message = "\n" }, "message", "Message is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.edit(&c)
			errs := c.Validate()
			require.NotNil(t, errs)
			assert.Equal(t, tt.msg, errs.Get(tt.field))
			assert.Len(t, errs, 1)
		})
	}
}

func TestContactValidateAllEmpty(t *testing.T) {
	errs := Contact{}.Validate()
	assert.Equal(t, FieldErrors{
		"name":    "Name is required",
		"email":   "Email is required",
		"phone":   "Phone number is required",
		"service": "Please select a service",
		"message": "Message is required",
	}, errs)
	assert.Contains(t, errs.Error(), "email: Email is required")
}

func TestApplicationValidateAllEmpty(t *testing.T) {
	errs := Application{}.Validate()
	for field, msg := range applicationMessages {
		assert.Equal(t, msg[""], errs.Get(field), "field %s", field)
	}
	assert.Len(t, errs, len(applicationMessages))
}

func TestApplicationValidate(t *testing.T) {
	assert.Nil(t, validApplication().Validate())

	tests := []struct {
		name  string
		edit  func(*Application)
		field string
		msg   string
	}{
		{"bad email", func(a *Application) { a.Email = "luis@" }, "email", "Please enter a valid email address"},
		{"unknown position", func(a *Application) { a.Position = "Pilot" }, "position", "Please select a position"},
		{"license not yes or no", func(a *Application) { a.DriversLicense = "maybe" }, "driversLicense", "Please select if you have a valid driver's license"},
		{"no skills", func(a *Application) { a.Skills = nil }, "skills", "Please select at least one skill or certification"},
		{"blank skills only", func(a *Application) { a.Skills = []string{" ", ""} }, "skills", "Please select at least one skill or certification"},
		{"unknown skill", func(a *Application) { a.Skills = []string{"Juggling"} }, "skills", "Please select at least one skill or certification"},
		{"unknown referral", func(a *Application) { a.ReferralSource = "Radio" }, "referralSource", "Please select how you heard about us"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validApplication()
			tt.edit(&a)
			errs := a.Validate()
			require.NotNil(t, errs)
			assert.Equal(t, tt.msg, errs.Get(tt.field))
		})
	}
}

func TestApplicationFromValues(t *testing.T) {
	v := url.Values{
		"fullName":  {"Luis"},
		"skills[]":  {"CDL license", "Other"},
		"skills":    {"CDL license"},
		"position":  {"Other"},
		"unrelated": {"x"},
	}
	a := ApplicationFromValues(v).Normalize()
	assert.Equal(t, "Luis", a.FullName)
	assert.Equal(t, []string{"CDL license", "Other"}, a.Skills)
	assert.True(t, a.HasSkill("Other"))
	assert.False(t, a.HasSkill("Irrigation systems"))
}

func TestResumeCheck(t *testing.T) {
	tests := []struct {
		name string
		r    Resume
		want string
	}{
		{"pdf", Resume{Filename: "cv.pdf", ContentType: "application/pdf", Data: pdfBytes}, ""},
		{"pdf by extension", Resume{Filename: "cv.PDF", Data: pdfBytes}, ""},
		{"image declared", Resume{Filename: "cv.png", ContentType: "image/png", Data: pdfBytes}, "Please upload a PDF or DOC/DOCX file"},
		{"text posing as pdf", Resume{Filename: "cv.pdf", ContentType: "application/pdf", Data: []byte("just text")}, "Please upload a PDF or DOC/DOCX file"},
		{"unknown extension", Resume{Filename: "cv.txt", Data: pdfBytes}, "Please upload a PDF or DOC/DOCX file"},
		{"too large", Resume{Filename: "cv.pdf", ContentType: "application/pdf", Size: MaxResumeSize + 1, Data: pdfBytes}, "File size must be less than 5MB"},
		{"exactly max", Resume{Filename: "cv.pdf", ContentType: "application/pdf", Size: MaxResumeSize, Data: pdfBytes}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Check()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRejectedResumeBlocksApplication(t *testing.T) {
	a := validApplication()
	a.Resume = &Resume{Filename: "cv.exe", ContentType: "application/x-msdownload", Data: []byte("MZ")}
	errs := a.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "Please upload a PDF or DOC/DOCX file", errs.Get(ResumeField))
	assert.Len(t, errs, 1)
}

type capturedRequest struct {
	header http.Header
	body   []byte
}

func webhookServer(t *testing.T, status int) (*httptest.Server, *int32, *capturedRequest) {
	t.Helper()
	var calls int32
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		got.header = r.Header.Clone()
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls, got
}

func TestSubmitContactSendsJSON(t *testing.T) {
	srv, calls, got := webhookServer(t, http.StatusOK)
	wc := NewWebhookClient(WebhookConfig{ContactURL: srv.URL, Timeout: time.Second})

	c := validContact()
	c.Name = "  Jane Doe "
	require.NoError(t, wc.SubmitContact(context.Background(), c))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.NotEmpty(t, got.header.Get(SubmissionIDHeader))

	var body map[string]string
	require.NoError(t, json.Unmarshal(got.body, &body))
	assert.Equal(t, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "(773) 555-0100",
		"service": "Fertilizing",
		"message": "Front and back yard.",
	}, body)
}

func TestSubmitContactInvalidMakesNoCall(t *testing.T) {
	srv, calls, _ := webhookServer(t, http.StatusOK)
	wc := NewWebhookClient(WebhookConfig{ContactURL: srv.URL})

	err := wc.SubmitContact(context.Background(), Contact{Name: "x"})
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Email is required", fe.Get("email"))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestSubmitContactNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusMultipleChoices} {
		srv, calls, _ := webhookServer(t, status)
		wc := NewWebhookClient(WebhookConfig{ContactURL: srv.URL})

		err := wc.SubmitContact(context.Background(), validContact())
		var we *WebhookError
		require.ErrorAs(t, err, &we, "status %d", status)
		assert.Equal(t, status, we.Code)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retry")
	}
}

func TestSubmitContactNoEndpoint(t *testing.T) {
	wc := NewWebhookClient(WebhookConfig{})
	assert.ErrorIs(t, wc.SubmitContact(context.Background(), validContact()), ErrNoEndpoint)
}

func TestSubmitApplicationMultipart(t *testing.T) {
	srv, calls, got := webhookServer(t, http.StatusAccepted)
	wc := NewWebhookClient(WebhookConfig{CareersURL: srv.URL})

	a := validApplication()
	a.Resume = &Resume{Filename: `luis "cv".pdf`, ContentType: "application/pdf", Data: pdfBytes}
	require.NoError(t, wc.SubmitApplication(context.Background(), a))
	require.Equal(t, int32(1), atomic.LoadInt32(calls))

	mediaType, params, err := mime.ParseMediaType(got.header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(bytes.NewReader(got.body), params["boundary"]).ReadForm(10 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Luis Ortega"}, form.Value["fullName"])
	assert.Equal(t, []string{"Landscape maintenance", "Equipment operation"}, form.Value["skills[]"])
	assert.Equal(t, []string{"Google Search"}, form.Value["referralSource"])
	assert.NotContains(t, form.Value, "resumeFile")

	files := form.File[ResumeField]
	require.Len(t, files, 1)
	assert.Equal(t, `luis "cv".pdf`, files[0].Filename)
	assert.Equal(t, "application/pdf", files[0].Header.Get("Content-Type"))
	f, err := files[0].Open()
	require.NoError(t, err)
	defer f.Close()
	data, _ := io.ReadAll(f)
	assert.Equal(t, pdfBytes, data)
}

func TestEncodeApplicationWithoutResume(t *testing.T) {
	buf, ct, err := EncodeApplication(validApplication(), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="))
	body := buf.String()
	assert.NotContains(t, body, "resumeFile")
	assert.Contains(t, body, `name="availableStartDate"`)
	assert.Equal(t, 2, strings.Count(body, `name="skills[]"`))
}

func TestSubmitApplicationBadResumeMakesNoCall(t *testing.T) {
	srv, calls, _ := webhookServer(t, http.StatusOK)
	wc := NewWebhookClient(WebhookConfig{CareersURL: srv.URL})

	a := validApplication()
	a.Resume = &Resume{Filename: "cv.pdf", ContentType: "application/pdf", Size: 6 << 20, Data: pdfBytes}
	err := wc.SubmitApplication(context.Background(), a)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "File size must be less than 5MB", fe.Get(ResumeField))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestSubmissionIDsAreUnique(t *testing.T) {
	srv, _, got := webhookServer(t, http.StatusOK)
	wc := NewWebhookClient(WebhookConfig{ContactURL: srv.URL})

	require.NoError(t, wc.SubmitContact(context.Background(), validContact()))
	first := got.header.Get(SubmissionIDHeader)
	require.NoError(t, wc.SubmitContact(context.Background(), validContact()))
	assert.NotEqual(t, first, got.header.Get(SubmissionIDHeader))
}
