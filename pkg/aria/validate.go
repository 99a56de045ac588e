package aria

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	a11yerrors "github.com/riceharvest/a11yutils/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	idPattern   = regexp.MustCompile(`^[^\s]+$`)
	rolePattern = regexp.MustCompile(`^[a-z]+$`)

	relevantTokens = map[string]struct{}{"additions": {}, "removals": {}, "text": {}, "all": {}}

	// domainTags holds the validator tag each domain's string form must satisfy.
	domainTags = map[Domain]string{
		DomainBool:       "oneof=true false",
		DomainTristate:   "oneof=true false mixed",
		DomainPoliteness: "oneof=off polite assertive",
		DomainRelevant:   "required,relevant",
		DomainPopup:      "oneof=true false menu listbox tree grid dialog",
		DomainCurrent:    "oneof=page step location date time true false",
		DomainRole:       "required,role",
		DomainIDRef:      "required,idrefs",
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("idref", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("idrefs", func(fl validator.FieldLevel) bool {
			ids := strings.Fields(fl.Field().String())
			return len(ids) > 0
		})

		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return rolePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("relevant", func(fl validator.FieldLevel) bool {
			tokens := strings.Fields(fl.Field().String())
			if len(tokens) == 0 {
				return false
			}
			for _, token := range tokens {
				if _, ok := relevantTokens[token]; !ok {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}

// Validator returns the shared validator with the vocabulary's custom tags
// (idref, idrefs, role, relevant) registered.
func Validator() *validator.Validate {
	return validatorInstance()
}

// ValidateID reports whether id is usable as a single element identifier:
// non-empty and free of whitespace. Mappers never call it; callers that want
// strict input checking run it before mapping.
func ValidateID(field, id string) error {
	if err := validatorInstance().Var(id, "required,idref"); err != nil {
		return convertValidationError(field, err)
	}
	return nil
}

// Validate checks that every key of s is in the vocabulary and holds a value of
// the key's declared domain. Failures match errors.ErrInvalidArgument.
func (s AttributeSet) Validate() error {
	for _, key := range s.Keys() {
		if err := validateAttribute(key, s[key]); err != nil {
			return err
		}
	}
	return nil
}

func validateAttribute(key Key, value Value) error {
	domain, ok := key.Domain()
	if !ok {
		return a11yerrors.NewInvalidArgument(string(key), "unknown attribute key")
	}
	if value == nil {
		return a11yerrors.NewInvalidArgument(string(key), "missing value")
	}
	if value.Domain() != domain {
		return a11yerrors.NewInvalidArgument(string(key), fmt.Sprintf("expects a %s value, got %s", domain, value.Domain()))
	}

	tag, ok := domainTags[domain]
	if !ok {
		return nil
	}
	if err := validatorInstance().Var(value.String(), tag); err != nil {
		return convertValidationError(string(key), err)
	}
	return nil
}

func convertValidationError(field string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return a11yerrors.NewInvalidArgument(field, fmt.Sprintf("value %q failed validation for tag '%s'", ve.Value(), ve.Tag()))
	}
	return a11yerrors.NewInvalidArgument(field, err.Error())
}
