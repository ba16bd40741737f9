package views

import (
	"github.com/a-h/templ"

	"github.com/unoproservices/unopro/forms"
)

var (
	contactSuccess = [2]string{"Thank you for contacting us!", "We'll be in touch soon."}
	careersSuccess = [2]string{
		"Application Submitted Successfully!",
		"Thank you for your interest in joining Uno Pro Services! We've received your application and will review it carefully. If your qualifications match our current needs, we'll contact you to schedule an interview.",
	}
)

func banners(h *htmlWriter, st FormState, success [2]string) {
	if st.Success {
		h.open("div", "class", "mb-6 rounded-lg border border-green-200 bg-green-50 p-4 text-green-800", "role", "status")
		h.el("p", success[0], "class", "font-semibold")
		h.el("p", success[1], "class", "mt-1 text-sm")
		h.close("div")
	}
	if st.Failure != "" {
		h.el("div", st.Failure, "class", "mb-6 rounded-lg border border-red-200 bg-red-50 p-4 text-red-800", "role", "alert")
	}
}

func csrfField(h *htmlWriter, token string) {
	if token != "" {
		h.void("input", "type", "hidden", "name", "_csrf", "value", token)
	}
}

func fieldError(h *htmlWriter, errs forms.FieldErrors, name string) {
	if msg := errs.Get(name); msg != "" {
		h.el("p", msg, "id", name+"-error", "class", "mt-1 text-sm text-red-600")
	}
}

func label(h *htmlWriter, forID, text string) {
	h.el("label", text, "for", forID, "class", "mb-2 block text-sm font-semibold text-gray-700")
}

func input(h *htmlWriter, errs forms.FieldErrors, typ, name, value, placeholder string) {
	bad := errs.Get(name) != ""
	h.void("input", attrs(
		[]string{"type", typ, "id", name, "name", name, "value", value, "placeholder", placeholder, "class", fieldClass(bad)},
		when(bad, "aria-invalid", "true", "aria-describedby", name+"-error"),
	)...)
	fieldError(h, errs, name)
}

func textarea(h *htmlWriter, errs forms.FieldErrors, name, value, placeholder string) {
	bad := errs.Get(name) != ""
	h.open("textarea", attrs(
		[]string{"id", name, "name", name, "rows", "5", "placeholder", placeholder, "class", fieldClass(bad)},
		when(bad, "aria-invalid", "true", "aria-describedby", name+"-error"),
	)...)
	h.text(value)
	h.close("textarea")
	fieldError(h, errs, name)
}

func selectField(h *htmlWriter, errs forms.FieldErrors, name, value, prompt string, options []string) {
	bad := errs.Get(name) != ""
	h.open("select", attrs(
		[]string{"id", name, "name", name, "class", fieldClass(bad)},
		when(bad, "aria-invalid", "true", "aria-describedby", name+"-error"),
	)...)
	h.el("option", prompt, "value", "")
	for _, o := range options {
		h.el("option", o, attrs([]string{"value", o}, when(o == value, "selected", "selected"))...)
	}
	h.close("select")
	fieldError(h, errs, name)
}

func yesNo(h *htmlWriter, errs forms.FieldErrors, name, value, question string) {
	h.open("fieldset", "class", "mb-6")
	h.el("legend", question, "class", "mb-2 block text-sm font-semibold text-gray-700")
	h.open("div", "class", "flex gap-6")
	for _, opt := range []struct{ value, label string }{{"yes", "Yes"}, {"no", "No"}} {
		h.open("label", "class", "inline-flex items-center gap-2")
		h.void("input", attrs(
			[]string{"type", "radio", "name", name, "value", opt.value},
			when(value == opt.value, "checked", "checked"),
		)...)
		h.text(opt.label)
		h.close("label")
	}
	h.close("div")
	fieldError(h, errs, name)
	h.close("fieldset")
}

func formOpen(h *htmlWriter, action string, multipart bool) {
	h.open("form", attrs(
		[]string{
			"method", "post",
			"action", action,
			"hx-post", action,
			"hx-target", "#main",
			"hx-swap", "innerHTML show:window:top",
			"novalidate", "novalidate",
			"class", "space-y-6",
		},
		when(multipart, "enctype", "multipart/form-data", "hx-encoding", "multipart/form-data"),
	)...)
}

func submitButton(h *htmlWriter, label, busy string) {
	h.open("button", "type", "submit", "class", "w-full rounded-lg bg-brand px-8 py-4 font-bold text-white hover:bg-brand-dark disabled:opacity-60", "data-busy-label", busy)
	h.text(label)
	h.close("button")
}

// Contact is the free-quote page.
func Contact(d ContactData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/1.png", "Contact Us", "Get a free quote for your Chicago residential or commercial property.")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto grid max-w-7xl gap-12 px-4 lg:grid-cols-3")

		h.open("aside", "class", "space-y-6 rounded-2xl bg-gray-50 p-8")
		h.el("h2", "Get in Touch", "class", "text-2xl font-extrabold")
		h.open("p")
		h.el("a", d.Info.Phone, "href", "tel:"+d.Info.PhoneDigits(), "class", "font-semibold text-brand")
		h.close("p")
		h.open("p")
		h.el("a", d.Info.Email, "href", "mailto:"+d.Info.Email, "class", "font-semibold text-brand")
		h.close("p")
		h.el("p", d.Info.Address)
		if d.Info.MapLink != "" {
			h.el("a", "View on Map", "href", d.Info.MapLink, "target", "_blank", "rel", "noopener noreferrer", "class", "text-sm underline")
		}
		h.open("div")
		h.el("h3", "Business Hours", "class", "mb-2 font-bold")
		for _, line := range d.Info.Hours {
			h.el("p", line, "class", "text-sm text-gray-600")
		}
		h.close("div")
		h.close("aside")

		h.open("div", "class", "lg:col-span-2")
		h.el("h2", "Request a Free Quote", "class", "mb-2 text-3xl font-extrabold")
		h.el("p", "Fill out the form below for a fast, free estimate. We typically reply within 24 hours.", "class", "mb-8 text-gray-600")
		banners(h, d.FormState, contactSuccess)

		formOpen(h, "/contact/", false)
		csrfField(h, d.CSRF)
		h.open("div")
		label(h, "name", "Full Name *")
		input(h, d.Errors, "text", "name", d.Form.Name, "John Doe")
		h.close("div")
		h.open("div", "class", "grid gap-6 md:grid-cols-2")
		h.open("div")
		label(h, "email", "Email Address *")
		input(h, d.Errors, "email", "email", d.Form.Email, "john@company.com")
		h.close("div")
		h.open("div")
		label(h, "phone", "Phone Number *")
		input(h, d.Errors, "tel", "phone", d.Form.Phone, "(555) 123-4567")
		h.close("div")
		h.close("div")
		h.open("div")
		label(h, "service", "Service Needed *")
		selectField(h, d.Errors, "service", d.Form.Service, "Select a service", d.Services)
		h.close("div")
		h.open("div")
		label(h, "message", "Message *")
		textarea(h, d.Errors, "message", d.Form.Message, "Tell us about your property and what you need...")
		h.close("div")
		submitButton(h, "Send Request", "Sending...")
		h.close("form")
		h.close("div")

		h.close("div")
		h.close("section")
	})
}

// Careers is the job application page.
func Careers(d CareersData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/1.png", "Join Our Team", "Build your career with a reliable, growing landscaping crew in Chicagoland.")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-3xl px-4")
		h.el("h2", "Apply Now", "class", "mb-2 text-3xl font-extrabold")
		h.el("p", "Fill out the application below. Fields marked * are required.", "class", "mb-8 text-gray-600")
		banners(h, d.FormState, careersSuccess)

		formOpen(h, "/careers/", true)
		csrfField(h, d.CSRF)
		f := d.Form

		h.el("h3", "Contact Information", "class", "text-xl font-bold")
		h.open("div")
		label(h, "fullName", "Full Name *")
		input(h, d.Errors, "text", "fullName", f.FullName, "John Doe")
		h.close("div")
		h.open("div", "class", "grid gap-6 md:grid-cols-2")
		h.open("div")
		label(h, "phone", "Phone Number *")
		input(h, d.Errors, "tel", "phone", f.Phone, "(555) 123-4567")
		h.close("div")
		h.open("div")
		label(h, "email", "Email Address *")
		input(h, d.Errors, "email", "email", f.Email, "john@example.com")
		h.close("div")
		h.close("div")

		h.el("h3", "Position & Experience", "class", "text-xl font-bold")
		h.open("div")
		label(h, "position", "Position Applying For *")
		selectField(h, d.Errors, "position", f.Position, "Select a position", d.Positions)
		h.close("div")
		h.open("div")
		label(h, "yearsExperience", "Years of Experience *")
		selectField(h, d.Errors, "yearsExperience", f.YearsExperience, "Select experience level", d.ExperienceLevels)
		h.close("div")

		yesNo(h, d.Errors, "driversLicense", f.DriversLicense, "Do you have a valid driver's license? *")
		yesNo(h, d.Errors, "weekendAvailability", f.WeekendAvailability, "Are you available to work weekends? *")
		yesNo(h, d.Errors, "workAuthorized", f.WorkAuthorized, "Are you legally authorized to work in the US? *")
		yesNo(h, d.Errors, "reliableTransportation", f.ReliableTransportation, "Do you have reliable transportation? *")

		h.open("fieldset")
		h.el("legend", "Skills & Certifications *", "class", "mb-2 block text-sm font-semibold text-gray-700")
		h.open("div", "class", "grid gap-3 md:grid-cols-2")
		for _, s := range d.Skills {
			h.open("label", "class", "inline-flex items-center gap-2")
			h.void("input", attrs(
				[]string{"type", "checkbox", "name", "skills[]", "value", s},
				when(f.HasSkill(s), "checked", "checked"),
			)...)
			h.text(s)
			h.close("label")
		}
		h.close("div")
		fieldError(h, d.Errors, "skills")
		h.close("fieldset")

		h.open("div")
		label(h, "experienceDescription", "Describe Your Experience *")
		textarea(h, d.Errors, "experienceDescription", f.ExperienceDescription, "Tell us about your previous landscaping or related work...")
		h.close("div")

		h.open("div")
		label(h, forms.ResumeField, "Upload Resume (Optional)")
		bad := d.Errors.Get(forms.ResumeField) != ""
		h.void("input", attrs(
			[]string{"type", "file", "id", forms.ResumeField, "name", forms.ResumeField, "accept", forms.ResumeAccept, "class", fieldClass(bad), "data-max-bytes", "5242880"},
			when(bad, "aria-invalid", "true", "aria-describedby", forms.ResumeField+"-error"),
		)...)
		h.el("p", "PDF, DOC, or DOCX (max 5MB)", "class", "mt-1 text-xs text-gray-500")
		fieldError(h, d.Errors, forms.ResumeField)
		h.close("div")

		h.open("div")
		label(h, "availableStartDate", "When Can You Start? *")
		input(h, d.Errors, "text", "availableStartDate", f.AvailableStartDate, "e.g., Immediately, 2 weeks notice")
		h.close("div")
		h.open("div")
		label(h, "referralSource", "How Did You Hear About Us? *")
		selectField(h, d.Errors, "referralSource", f.ReferralSource, "Select an option", d.ReferralSources)
		h.close("div")

		submitButton(h, "Submit Application", "Submitting...")
		h.close("form")
		h.close("div")
		h.close("section")
	})
}
