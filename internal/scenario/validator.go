package scenario

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/riceharvest/a11yutils/pkg/aria"
	a11yerrors "github.com/riceharvest/a11yutils/pkg/errors"
	"github.com/riceharvest/a11yutils/pkg/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	elementIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)
	patternTypes     = map[string]struct{}{
		PatternToggle: {}, PatternDisclosure: {}, PatternSelection: {}, PatternChecked: {},
		PatternLiveRegion: {}, PatternDialogTrigger: {}, PatternFormField: {}, PatternDescribedBy: {},
		PatternLabelledBy: {}, PatternSkipLink: {}, PatternPreset: {}, PatternCurrent: {},
		PatternLabel: {}, PatternHidden: {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pattern_type", func(fl validator.FieldLevel) bool {
			_, ok := patternTypes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("style_preset", func(fl validator.FieldLevel) bool {
			_, ok := style.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a scenario.
func Validate(sc *Scenario) error {
	if sc == nil {
		return a11yerrors.NewValidationError("scenario", "scenario is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(sc); err != nil {
		return convertValidationError(err)
	}

	ids := make(map[string]int, len(sc.Elements))
	for i, el := range sc.Elements {
		if _, exists := ids[el.ID]; exists {
			return a11yerrors.NewValidationError(fieldForElement(i, "id"), fmt.Sprintf("duplicate element id %q", el.ID), nil)
		}
		ids[el.ID] = i

		for j, p := range el.Patterns {
			if err := ValidatePattern(p); err != nil {
				return prefixField(fieldForPattern(i, j, ""), err)
			}
		}
	}

	if sc.Settings.CheckRefs {
		for i, el := range sc.Elements {
			for j, p := range el.Patterns {
				for field, refs := range p.References() {
					for _, ref := range refs {
						if _, ok := ids[ref]; !ok {
							return a11yerrors.NewValidationError(fieldForPattern(i, j, field), fmt.Sprintf("references unknown element %q", ref), nil)
						}
					}
				}
			}
		}
	}

	return nil
}

// ValidatePattern checks that the fields a pattern type needs are present.
func ValidatePattern(p Pattern) error {
	v := validatorInstance()
	if err := v.Struct(p); err != nil {
		return convertValidationError(err)
	}

	switch p.Type {
	case PatternDisclosure:
		return requireField("controls", p.Controls)
	case PatternDialogTrigger:
		return requireField("dialog", p.Dialog)
	case PatternDescribedBy, PatternLabelledBy:
		return requireField("ref", p.Ref)
	case PatternSkipLink:
		return requireField("target", p.Target)
	case PatternLabel:
		return requireField("label", p.Label)
	case PatternChecked:
		return requireField("checked", p.Checked)
	case PatternCurrent:
		return requireField("current", p.Current)
	case PatternPreset:
		if _, ok := aria.Preset(p.Preset); !ok {
			msg := fmt.Sprintf("unknown preset %q (known: %s)", p.Preset, strings.Join(aria.PresetNames(), ", "))
			return a11yerrors.NewValidationError("preset", withSuggestion(msg, p.Preset, aria.PresetNames()), nil)
		}
	case PatternLiveRegion:
		if p.Live != nil {
			if err := v.Struct(p.Live); err != nil {
				return convertValidationError(err)
			}
			if len(p.Live.Relevant) > 0 {
				joined := strings.Join(p.Live.Relevant, " ")
				if err := aria.Validator().Var(joined, "relevant"); err != nil {
					return a11yerrors.NewValidationError("live.relevant", fmt.Sprintf("%q is not a list of additions, removals, text or all", joined), err)
				}
			}
		}
	}

	return nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return a11yerrors.NewValidationError(field, "is required for this pattern type", nil)
	}
	return nil
}

func prefixField(prefix string, err error) error {
	var ve *a11yerrors.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	field := prefix
	if ve.Field != "" {
		field = prefix + "." + ve.Field
	}
	return a11yerrors.NewValidationError(field, ve.Message, ve.Err)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if value, ok := ve.Value().(string); ok {
			switch ve.Tag() {
			case "pattern_type":
				msg = withSuggestion(msg, value, PatternTypes())
			case "style_preset":
				msg = withSuggestion(msg, value, style.Names())
			}
		}
		return a11yerrors.NewValidationError(field, msg, err)
	}

	return a11yerrors.NewValidationError("scenario", err.Error(), err)
}

// yamlishFieldName turns a struct namespace such as Scenario.Elements[0].ID into
// elements[0].id, dropping the root type name.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForElement(index int, field string) string {
	return fmt.Sprintf("elements[%d].%s", index, field)
}

func fieldForPattern(element, pattern int, field string) string {
	base := fmt.Sprintf("elements[%d].patterns[%d]", element, pattern)
	if field == "" {
		return base
	}
	return base + "." + field
}
