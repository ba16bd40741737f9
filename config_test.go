package unopro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaultsWebhooks(t *testing.T) {
	a := New(SiteConfig{})
	assert.Equal(t, DefaultContactWebhook, a.Config.Webhooks.Contact)
	assert.Equal(t, DefaultCareersWebhook, a.Config.Webhooks.Careers)

	a = New(SiteConfig{Webhooks: WebhookConfig{Contact: "https://hooks.example.com/quote"}})
	assert.Equal(t, "https://hooks.example.com/quote", a.Config.Webhooks.Contact)
	assert.Equal(t, DefaultCareersWebhook, a.Config.Webhooks.Careers)
}
