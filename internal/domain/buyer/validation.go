package buyer

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// Form is the create/edit payload for a buyer lead.
type Form struct {
	FullName     string       `json:"fullName" validate:"required,min=2,max=80"`
	Email        *string      `json:"email,omitempty" validate:"omitempty,email_format"`
	Phone        string       `json:"phone" validate:"required,phone"`
	City         City         `json:"city" validate:"required,city"`
	PropertyType PropertyType `json:"propertyType" validate:"required,property_type"`
	BHK          *BHK         `json:"bhk,omitempty" validate:"omitempty,bhk"`
	Purpose      Purpose      `json:"purpose" validate:"required,purpose"`
	BudgetMin    *int         `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax    *int         `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Timeline     Timeline     `json:"timeline" validate:"required,timeline"`
	Source       Source       `json:"source" validate:"required,source"`
	Status       *Status      `json:"status,omitempty" validate:"omitempty,status"`
	Notes        *string      `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Tags         *string      `json:"tags,omitempty"`
}

type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every violation found on a single record.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Path+": "+v.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) add(path, message string) {
	e.Violations = append(e.Violations, Violation{Path: path, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// ===============================
// Validator setup
// ===============================

var (
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return checkmail.ValidateFormat(fl.Field().String()) == nil
	})

	enum := func(tag string, opts []option) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return hasCode(opts, fl.Field().String())
		})
	}
	enum("city", cityOptions)
	enum("property_type", propertyTypeOptions)
	enum("bhk", bhkOptions)
	enum("purpose", purposeOptions)
	enum("timeline", timelineOptions)
	enum("source", sourceOptions)
	enum("status", statusOptions)

	return v
}

var requiredMessages = map[string]string{
	"fullName":     "Full name is required",
	"phone":        "Phone must be 10-15 digits",
	"city":         "City is required",
	"propertyType": "Property type is required",
	"purpose":      "Purpose is required",
	"timeline":     "Timeline is required",
	"source":       "Source is required",
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return field + " is required"
	case "min":
		if field == "fullName" {
			return "Full name must be at least " + fe.Param() + " characters"
		}
	case "max":
		switch field {
		case "fullName":
			return "Full name must be at most " + fe.Param() + " characters"
		case "notes":
			return "Notes must be at most " + fe.Param() + " characters"
		}
	case "gte":
		return "Budget must not be negative"
	case "phone":
		return "Phone must be 10-15 digits"
	case "email_format":
		return "Invalid email address"
	case "city", "property_type", "bhk", "purpose", "timeline", "source", "status":
		return "Invalid " + strings.ReplaceAll(fe.Tag(), "_", " ")
	}
	return field + " is invalid"
}

// ===============================
// Rule set
// ===============================

// Validate normalises the form and checks it. Per-field rules run first,
// then the bhk rule, then budget ordering; all violations are collected.
func Validate(f Form) (Form, error) {
	f = f.normalize()

	verr := &ValidationError{}
	checkForm(f, verr)

	if verr.orNil() != nil {
		return f, verr
	}
	return f, nil
}

func checkForm(f Form, verr *ValidationError) {
	if err := validate.Struct(f); err != nil {
		if fes, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fes {
				verr.add(fe.Field(), messageFor(fe))
			}
		} else {
			verr.add("", err.Error())
		}
	}

	if f.PropertyType.IsResidential() && f.BHK == nil {
		verr.add("bhk", "BHK is required for Apartment and Villa properties")
	}

	if f.BudgetMin != nil && f.BudgetMax != nil && *f.BudgetMax < *f.BudgetMin {
		verr.add("budgetMax", "Maximum budget must be greater than or equal to minimum budget")
	}
}

// ValidateRecord checks a stored-shape record, as produced by merging a
// patch into an existing buyer.
func ValidateRecord(b *models.Buyer) error {
	verr := &ValidationError{}

	if b.ID == uuid.Nil {
		verr.add("id", "Id is required")
	}
	if b.OwnerID == uuid.Nil {
		verr.add("ownerId", "Owner is required")
	}

	checkForm(FormFromRecord(b), verr)
	return verr.orNil()
}

func (f Form) normalize() Form {
	f.Email = blankToNil(f.Email)
	f.Notes = blankToNil(f.Notes)
	f.Tags = blankToNil(f.Tags)

	if f.Status == nil {
		s := StatusNew
		f.Status = &s
	}
	if f.BHK != nil && *f.BHK == "" {
		f.BHK = nil
	}
	if f.PropertyType.Valid() && !f.PropertyType.IsResidential() {
		f.BHK = nil
	}
	return f
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// ===============================
// Form <-> record
// ===============================

// ToModel builds a new record from a validated form.
func (f Form) ToModel(ownerID uuid.UUID) *models.Buyer {
	b := &models.Buyer{
		FullName:     f.FullName,
		Email:        f.Email,
		Phone:        f.Phone,
		City:         string(f.City),
		PropertyType: string(f.PropertyType),
		Purpose:      string(f.Purpose),
		BudgetMin:    f.BudgetMin,
		BudgetMax:    f.BudgetMax,
		Timeline:     string(f.Timeline),
		Source:       string(f.Source),
		Status:       string(StatusNew),
		Notes:        f.Notes,
		Tags:         f.Tags,
		OwnerID:      ownerID,
	}
	if f.BHK != nil {
		s := string(*f.BHK)
		b.BHK = &s
	}
	if f.Status != nil {
		b.Status = string(*f.Status)
	}
	return b
}

func FormFromRecord(b *models.Buyer) Form {
	f := Form{
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		City:         City(b.City),
		PropertyType: PropertyType(b.PropertyType),
		Purpose:      Purpose(b.Purpose),
		BudgetMin:    b.BudgetMin,
		BudgetMax:    b.BudgetMax,
		Timeline:     Timeline(b.Timeline),
		Source:       Source(b.Source),
		Notes:        b.Notes,
		Tags:         b.Tags,
	}
	if b.BHK != nil {
		v := BHK(*b.BHK)
		f.BHK = &v
	}
	s := Status(b.Status)
	f.Status = &s
	return f
}
