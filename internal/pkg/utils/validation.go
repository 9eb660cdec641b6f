package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// requiredMessages maps a field's json path (relative to the struct root) to
// the message the API has always produced for it. Unmapped fields fall back
// to "<field> is required".
var requiredMessages = map[string]string{
	"firstName":          "First name is required",
	"lastName":           "Last name is required",
	"email":              "Email is required",
	"dateOfBirth":        "Date of birth is required",
	"address.street":     "Complete address is required",
	"address.city":       "Complete address is required",
	"phoneNumber":        "Phone number is required",
	"password":           "Password is required",
	"doctorName":         "Doctor name is required",
	"specialtyId":        "Specialty ID is required",
	"specialtyName":      "Specialty name is required",
	"description":        "Description is required",
	"medicalCentreName":  "Medical centre name is required",
	"operatingHours":     "Operating hours are required",
	"contacts.email":     "Complete contact details are required",
	"contacts.phone":     "Complete contact details are required",
	"date":               "Date is required",
	"startTime":          "Start time is required",
	"endTime":            "End time is required",
	"patientId":          "Patient ID is required",
	"doctorId":           "Doctor ID is required",
	"medicalCentreId":    "Medical Centre ID is required",
	"availabilityId":     "Availability ID is required",
}

var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func init() {
	validate = validator.New()

	// Report fields by their json names so messages line up with payloads.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("emailshape", validateEmailShape)
	validate.RegisterValidation("pastdate", validatePastDate)
	validate.RegisterValidation("adult", validateAdult)
}

// ValidateStruct runs every registered field check and accumulates all
// failures. It returns nil when the value is valid.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	seen := make(map[string]bool)
	for _, fieldError := range validationErrors {
		message := messageFor(fieldError)
		if seen[message] {
			// Composite checks (address, contacts) report once.
			continue
		}
		seen[message] = true
		messages = append(messages, message)
	}
	return messages
}

func messageFor(fieldError validator.FieldError) string {
	// Namespace is "<Struct>.<json path>"; drop the struct segment.
	path := fieldError.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}

	switch fieldError.Tag() {
	case "emailshape":
		return "Please enter a valid email address"
	case "pastdate":
		return "Date of birth cannot be in the future"
	case "adult":
		return "Patient must be at least 18 years old"
	case "min":
		if strings.HasSuffix(path, "password") {
			return "Password must be at least 10 characters long"
		}
	case "oneof":
		if strings.HasSuffix(path, "status") {
			return "Status must be one of confirmed, completed or cancelled"
		}
	}

	if message, ok := requiredMessages[path]; ok {
		return message
	}
	return fmt.Sprintf("%s is required", fieldError.Field())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateEmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

func validatePastDate(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !value.After(time.Now())
}

// validateAdult accepts a date of birth exactly 18 years back to the day.
func validateAdult(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok || value.IsZero() {
		return false
	}
	today := time.Now()
	age := today.Year() - value.Year()
	if int(today.Month()) < int(value.Month()) ||
		(today.Month() == value.Month() && today.Day() < value.Day()) {
		age--
	}
	return age >= 18
}
