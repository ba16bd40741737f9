package content

import (
	"context"
	"strings"
)

// SiteInfo holds the business contact details shown in the footer and on the
// contact page.
type SiteInfo struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	MapLink string   `json:"mapLink"`
	Hours   []string `json:"hours"`
}

// DefaultSiteInfo is used until the configuration document loads, and for any
// field it leaves empty.
func DefaultSiteInfo() SiteInfo {
	return SiteInfo{
		Name:    "Uno Pro Services",
		Phone:   "(773) 376-8058",
		Email:   "unoproservices@gmail.com",
		Address: "Chicago, IL",
		MapLink: "https://maps.google.com/?q=Chicago,+IL",
		Hours: []string{
			"Mon-Fri: 8 am – 5 pm",
			"Saturday: 8 am – 12 pm",
			"Sunday: Closed",
		},
	}
}

type siteInfoDocument struct {
	SiteInfo *SiteInfo `json:"siteInfo"`
}

// LoadSiteInfo reads the {"siteInfo": {...}} document at location. Failure is
// not fatal: the defaults are returned alongside the error.
func LoadSiteInfo(ctx context.Context, f *Fetcher, location string) (SiteInfo, error) {
	var doc siteInfoDocument
	if err := f.GetJSON(ctx, location, &doc); err != nil {
		return DefaultSiteInfo(), err
	}
	if doc.SiteInfo == nil {
		return DefaultSiteInfo(), nil
	}
	return doc.SiteInfo.withDefaults(), nil
}

func (s SiteInfo) withDefaults() SiteInfo {
	d := DefaultSiteInfo()
	if strings.TrimSpace(s.Name) == "" {
		s.Name = d.Name
	}
	if strings.TrimSpace(s.Phone) == "" {
		s.Phone = d.Phone
	}
	if strings.TrimSpace(s.Email) == "" {
		s.Email = d.Email
	}
	if strings.TrimSpace(s.Address) == "" {
		s.Address = d.Address
	}
	if strings.TrimSpace(s.MapLink) == "" {
		s.MapLink = d.MapLink
	}
	if len(s.Hours) == 0 {
		s.Hours = d.Hours
	}
	return s
}

// PhoneDigits strips everything but digits, for tel: links. Ten-digit
// numbers get the North American country code.
func (s SiteInfo) PhoneDigits() string {
	var b strings.Builder
	for _, r := range s.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 10 {
		return "1" + b.String()
	}
	return b.String()
}
