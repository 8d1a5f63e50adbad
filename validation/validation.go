package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"cafe-admin-api/apperr"
	"cafe-admin-api/models"

	"github.com/go-playground/validator/v10"
)

var (
	looseEmailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe      = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// Validator checks request payloads before anything reaches the network
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
		return looseEmailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "foodcategory", oneOf(models.FoodCategories))
	mustRegister(v, "mood", oneOf(models.Moods))
	mustRegister(v, "orderstatus", oneOf(models.OrderStatuses))
	mustRegister(v, "reservationstatus", oneOf(models.ReservationStatuses))
	mustRegister(v, "ticketstatus", oneOf(models.TicketStatuses))
	mustRegister(v, "priority", oneOf(models.TicketPriorities))
	mustRegister(v, "problemtype", oneOf(models.ProblemTypes))
	mustRegister(v, "feedbackcategory", oneOf(models.FeedbackCategories))
	mustRegister(v, "feedbackstatus", oneOf(models.FeedbackStatuses))

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func oneOf[S ~string](allowed []S) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := S(fl.Field().String())
		for _, a := range allowed {
			if a == s {
				return true
			}
		}
		return false
	}
}

// Struct validates s and returns a validation *apperr.Error carrying one
// message per offending field, or nil.
func (v *Validator) Struct(title string, s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validation(title, map[string]string{"_": err.Error()})
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fieldKey(fe.Namespace())
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = message(fe)
	}
	return apperr.Validation(title, fields)
}

// Var validates a single value against tag, reporting failures under field
func (v *Validator) Var(title, field string, value any, tag string) error {
	err := v.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation(title, map[string]string{field: err.Error()})
	}
	fe := fieldErrs[0]
	return apperr.Validation(title, map[string]string{field: render("", field, fe.Tag(), fe.Param())})
}

// fieldKey drops the struct name: "Order.items[0].quantity" → "items[0].quantity"
func fieldKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// tail is the last path element without an index suffix
func tail(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}
	return key
}

func message(fe validator.FieldError) string {
	structName := strings.SplitN(fe.Namespace(), ".", 2)[0]
	return render(structName, tail(fieldKey(fe.Namespace())), fe.Tag(), fe.Param())
}

func render(structName, field, tag, param string) string {
	if m, ok := overrides[structName+"."+field+"."+tag]; ok {
		return m
	}
	if m, ok := overrides[field+"."+tag]; ok {
		return m
	}

	label := Label(field)
	switch tag {
	case "required":
		return label + " is required"
	case "looseemail", "email":
		return "Email is invalid"
	case "phone":
		return "Please enter a valid phone number"
	case "gt", "gte", "min":
		return label + " must be at least " + param
	case "max", "lte":
		return label + " must be at most " + param
	case "eqfield":
		return label + " does not match"
	case "datetime", "url":
		return label + " is invalid"
	}
	return label + " is not a valid option"
}

var overrides = map[string]string{
	"price.gt":                              "Price must be a positive number",
	"items.required":                        "At least one item is required",
	"items.min":                             "At least one item is required",
	"quantity.gt":                           "Quantity must be greater than 0",
	"partySize.gte":                         "Valid party size is required",
	"rating.min":                            "Rating must be between 1 and 5",
	"rating.max":                            "Rating must be between 1 and 5",
	"problemDesc.required":                  "Problem description is required",
	"description.required":                  "Description is required",
	"SignupRequest.name.required":           "Full name is required",
	"SignupRequest.name.min":                "Name must be at least 2 characters long",
	"SignupRequest.email.looseemail":        "Please enter a valid email address",
	"SignupRequest.phone.required":          "Phone number is required",
	"SignupRequest.password.min":            "Password must be at least 6 characters long",
	"SignupRequest.confirmPassword.eqfield": "Passwords do not match",
}

// Label turns a JSON field name into a sentence-case label: "customerName" → "Customer name".
func Label(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
