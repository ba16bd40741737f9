package forms

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Application is a job application from the careers page.
type Application struct {
	FullName               string   `json:"fullName" validate:"required"`
	Phone                  string   `json:"phone" validate:"required"`
	Email                  string   `json:"email" validate:"required,simpleemail"`
	Position               string   `json:"position" validate:"required,catalog=position"`
	YearsExperience        string   `json:"yearsExperience" validate:"required,catalog=experience"`
	DriversLicense         string   `json:"driversLicense" validate:"required,yesno"`
	WeekendAvailability    string   `json:"weekendAvailability" validate:"required,yesno"`
	WorkAuthorized         string   `json:"workAuthorized" validate:"required,yesno"`
	ReliableTransportation string   `json:"reliableTransportation" validate:"required,yesno"`
	Skills                 []string `json:"skills" validate:"min=1,dive,catalog=skill"`
	ExperienceDescription  string   `json:"experienceDescription" validate:"required"`
	AvailableStartDate     string   `json:"availableStartDate" validate:"required"`
	ReferralSource         string   `json:"referralSource" validate:"required,catalog=referral"`

	Resume *Resume `json:"-"`
}

var applicationMessages = messages{
	"fullName":               {"": "Full name is required"},
	"phone":                  {"": "Phone number is required"},
	"email":                  {"": "Email address is required", "simpleemail": "Please enter a valid email address"},
	"position":               {"": "Please select a position"},
	"yearsExperience":        {"": "Please select your experience level"},
	"driversLicense":         {"": "Please select if you have a valid driver's license"},
	"weekendAvailability":    {"": "Please indicate your weekend availability"},
	"workAuthorized":         {"": "Please confirm work authorization status"},
	"reliableTransportation": {"": "Please indicate if you have reliable transportation"},
	"skills":                 {"": "Please select at least one skill or certification"},
	"experienceDescription":  {"": "Please describe your experience"},
	"availableStartDate":     {"": "Please indicate when you can start"},
	"referralSource":         {"": "Please select how you heard about us"},
}

// ApplicationFromValues reads an Application from submitted form values.
// Skills may be posted as "skills" or "skills[]".
func ApplicationFromValues(v url.Values) Application {
	skills := append([]string{}, v["skills[]"]...)
	skills = append(skills, v["skills"]...)
	return Application{
		FullName:               v.Get("fullName"),
		Phone:                  v.Get("phone"),
		Email:                  v.Get("email"),
		Position:               v.Get("position"),
		YearsExperience:        v.Get("yearsExperience"),
		DriversLicense:         v.Get("driversLicense"),
		WeekendAvailability:    v.Get("weekendAvailability"),
		WorkAuthorized:         v.Get("workAuthorized"),
		ReliableTransportation: v.Get("reliableTransportation"),
		Skills:                 skills,
		ExperienceDescription:  v.Get("experienceDescription"),
		AvailableStartDate:     v.Get("availableStartDate"),
		ReferralSource:         v.Get("referralSource"),
	}
}

// Normalize trims text fields and removes empty or repeated skills.
func (a Application) Normalize() Application {
	a.FullName = trim(a.FullName)
	a.Phone = trim(a.Phone)
	a.Email = trim(a.Email)
	a.Position = trim(a.Position)
	a.YearsExperience = trim(a.YearsExperience)
	a.DriversLicense = trim(a.DriversLicense)
	a.WeekendAvailability = trim(a.WeekendAvailability)
	a.WorkAuthorized = trim(a.WorkAuthorized)
	a.ReliableTransportation = trim(a.ReliableTransportation)
	a.ExperienceDescription = trim(a.ExperienceDescription)
	a.AvailableStartDate = trim(a.AvailableStartDate)
	a.ReferralSource = trim(a.ReferralSource)

	seen := make(map[string]bool, len(a.Skills))
	skills := make([]string, 0, len(a.Skills))
	for _, s := range a.Skills {
		s = trim(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
	}
	a.Skills = skills
	return a
}

// HasSkill reports whether skill is selected.
func (a Application) HasSkill(skill string) bool {
	for _, s := range a.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Validate returns nil when the application may be sent. An attached resume
// that fails its checks is reported under "resumeFile".
func (a Application) Validate() FieldErrors {
	n := a.Normalize()
	errs := check(&n, applicationMessages)
	if a.Resume != nil {
		if err := a.Resume.Check(); err != nil {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[ResumeField] = err.Error()
		}
	}
	return errs
}

// ResumeField is the form field carrying the resume upload.
const ResumeField = "resumeFile"

// MaxResumeSize is the largest accepted resume.
const MaxResumeSize = 5 << 20

// ResumeAccept is the accept attribute for the resume file input.
const ResumeAccept = ".pdf,.doc,.docx"

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var resumeTypes = map[string]bool{mimePDF: true, mimeDOC: true, mimeDOCX: true}

var resumeExtensions = map[string]string{".pdf": mimePDF, ".doc": mimeDOC, ".docx": mimeDOCX}

// Sniffed types that can hold a Word document: legacy OLE containers and the
// zip container behind DOCX.
var resumeContainers = map[string]bool{
	mimePDF:                     true,
	mimeDOC:                     true,
	mimeDOCX:                    true,
	"application/x-ole-storage": true,
	"application/zip":           true,
}

// ResumeError is a rejected resume upload. Its message is shown to the user.
type ResumeError struct {
	Message string
}

func (e *ResumeError) Error() string { return e.Message }

var errResumeType = &ResumeError{Message: "Please upload a PDF or DOC/DOCX file"}

// ErrResumeSize rejects a resume larger than MaxResumeSize.
var ErrResumeSize = &ResumeError{Message: "File size must be less than 5MB"}

// Resume is an uploaded resume file.
type Resume struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Check verifies type then size. The declared content type must be one of
// PDF, DOC or DOCX (falling back to the file extension when the browser sent
// none), and the bytes must look like one of those formats.
func (r *Resume) Check() error {
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(r.ContentType, ";", 2)[0]))
	if declared == "" || declared == "application/octet-stream" {
		declared = resumeExtensions[strings.ToLower(filepath.Ext(r.Filename))]
	}
	if !resumeTypes[declared] {
		return errResumeType
	}
	if !sniffedAsDocument(r.Data) {
		return errResumeType
	}
	size := r.Size
	if n := int64(len(r.Data)); n > size {
		size = n
	}
	if size > MaxResumeSize {
		return ErrResumeSize
	}
	return nil
}

// MediaType is the content type sent with the attachment.
func (r *Resume) MediaType() string {
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(r.ContentType, ";", 2)[0]))
	if resumeTypes[declared] {
		return declared
	}
	if t, ok := resumeExtensions[strings.ToLower(filepath.Ext(r.Filename))]; ok {
		return t
	}
	return mimetype.Detect(r.Data).String()
}

func sniffedAsDocument(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if resumeContainers[m.String()] {
			return true
		}
	}
	return false
}
