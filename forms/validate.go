// Package forms validates the contact and careers forms and delivers them to
// their webhooks.
package forms

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/unoproservices/unopro/catalog"
)

// FieldErrors maps a form field name to its user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return "forms: " + strings.Join(parts, "; ")
}

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string {
	if fe == nil {
		return ""
	}
	return fe[field]
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var catalogs = map[string]func() []string{
	"service":    catalog.ServiceTitles,
	"position":   catalog.Positions,
	"experience": catalog.ExperienceLevels,
	"skill":      catalog.Skills,
	"referral":   catalog.ReferralSources,
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
			list, ok := catalogs[fl.Param()]
			return ok && catalog.Contains(list(), fl.Field().String())
		})
		_ = v.RegisterValidation("yesno", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "yes" || s == "no"
		})
		validate = v
	})
	return validate
}

// messages maps field -> validation tag -> message. The "" tag is the
// fallback for a field.
type messages map[string]map[string]string

func (m messages) lookup(field, tag string) string {
	byTag, ok := m[field]
	if !ok {
		return "Invalid value"
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag[""]
}

func check(s any, msgs messages) FieldErrors {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = msgs.lookup(field, fe.Tag())
	}
	return out
}

func trim(s string) string { return strings.TrimSpace(s) }
