package itinerary

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/trip/internal/model"
)

var (
	ErrInvalidDay  = errors.New("day must be one of the trip days")
	ErrBlankName   = errors.New("name must not be empty")
	ErrInvalidTime = errors.New(`time must be "HH:MM"`)
)

var hhmm = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "tripday", func(fl validator.FieldLevel) bool {
		_, ok := model.LookupDay(model.DayID(fl.Field().String()))
		return ok
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return hhmm.MatchString(fl.Field().String())
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// ValidateDraft checks the rules a new activity must satisfy before Add:
// a known day, a non-blank name and an optional HH:MM time.
func ValidateDraft(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return fieldError(verrs[0].Field())
}

// ValidatePatch applies the same rules to the fields a patch sets.
func ValidatePatch(p Patch) error {
	if p.Day != nil {
		if err := validate.Var(string(*p.Day), "required,tripday"); err != nil {
			return fieldError("Day")
		}
	}
	if p.Time != nil && *p.Time != "" {
		if err := validate.Var(*p.Time, "hhmm"); err != nil {
			return fieldError("Time")
		}
	}
	if p.Name != nil {
		if err := validate.Var(*p.Name, "notblank"); err != nil {
			return fieldError("Name")
		}
	}
	return nil
}

func fieldError(field string) error {
	switch field {
	case "Day":
		return ErrInvalidDay
	case "Name":
		return ErrBlankName
	case "Time":
		return ErrInvalidTime
	}
	return fmt.Errorf("invalid field %s", field)
}
