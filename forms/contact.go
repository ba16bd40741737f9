package forms

import "net/url"

// Contact is a free-quote request.
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,simpleemail"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service" validate:"required,catalog=service"`
	Message string `json:"message" validate:"required"`
}

var contactMessages = messages{
	"name":    {"": "Name is required"},
	"email":   {"": "Email is required", "simpleemail": "Please enter a valid email"},
	"phone":   {"": "Phone number is required"},
	"service": {"": "Please select a service"},
	"message": {"": "Message is required"},
}

// ContactFromValues reads a Contact from submitted form values.
func ContactFromValues(v url.Values) Contact {
	return Contact{
		Name:    v.Get("name"),
		Email:   v.Get("email"),
		Phone:   v.Get("phone"),
		Service: v.Get("service"),
		Message: v.Get("message"),
	}
}

// Normalize trims surrounding whitespace from every field.
func (c Contact) Normalize() Contact {
	c.Name = trim(c.Name)
	c.Email = trim(c.Email)
	c.Phone = trim(c.Phone)
	c.Service = trim(c.Service)
	c.Message = trim(c.Message)
	return c
}

// Validate returns nil when the request may be sent.
func (c Contact) Validate() FieldErrors {
	n := c.Normalize()
	return check(&n, contactMessages)
}
