package scenario

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/riceharvest/a11yutils/internal/logger"
	"github.com/riceharvest/a11yutils/pkg/aria"
	a11yerrors "github.com/riceharvest/a11yutils/pkg/errors"
	"github.com/riceharvest/a11yutils/pkg/style"
)

const defaultParallel = 4

// Result is the evaluated form of one element.
type Result struct {
	Element    Element
	Attributes aria.AttributeSet
	Style      style.Preset
}

// Evaluator turns scenario elements into attribute sets.
type Evaluator struct {
	log *logger.Logger
}

// NewEvaluator constructs an Evaluator. A nil logger disables logging.
func NewEvaluator(log *logger.Logger) *Evaluator {
	if log == nil {
		log = logger.Nop()
	}
	return &Evaluator{log: log}
}

// Evaluate maps every element of sc. Elements are evaluated concurrently and
// results keep document order. The first failure cancels the remaining work.
func (e *Evaluator) Evaluate(ctx context.Context, sc *Scenario) ([]Result, error) {
	if sc == nil {
		return nil, a11yerrors.NewValidationError("scenario", "scenario is nil", nil)
	}

	limit := sc.Settings.Parallel
	if limit <= 0 {
		limit = defaultParallel
	}

	log := e.log.With("scenario", sc.Name)
	results := make([]Result, len(sc.Elements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, el := range sc.Elements {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := EvaluateElement(el, sc.Settings)
			if err != nil {
				log.With("element", el.ID).Error(err, "element evaluation failed")
				return err
			}

			log.WithFields(map[string]any{"element": el.ID, "attributes": len(res.Attributes)}).Debug("element evaluated")
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// EvaluateElement applies an element's patterns in order and merges the results.
func EvaluateElement(el Element, settings Settings) (Result, error) {
	sets := make([]aria.AttributeSet, 0, len(el.Patterns))
	for i, p := range el.Patterns {
		if settings.Strict {
			if err := checkReferences(p); err != nil {
				return Result{}, a11yerrors.NewEvaluationError(el.ID, prefixField(fmt.Sprintf("patterns[%d]", i), err))
			}
		}

		set, err := PatternAttributes(p)
		if err != nil {
			return Result{}, a11yerrors.NewEvaluationError(el.ID, err)
		}
		sets = append(sets, set)
	}

	attrs := aria.Merge(sets...)
	if settings.Strict {
		if err := attrs.Validate(); err != nil {
			return Result{}, a11yerrors.NewEvaluationError(el.ID, err)
		}
	}

	res := Result{Element: el, Attributes: attrs}
	if el.Style != "" {
		preset, ok := style.Lookup(el.Style)
		if !ok {
			return Result{}, a11yerrors.NewEvaluationError(el.ID, fmt.Errorf("unknown style preset %q", el.Style))
		}
		res.Style = preset
	}
	return res, nil
}

// PatternAttributes maps a single pattern through its mapper.
func PatternAttributes(p Pattern) (aria.AttributeSet, error) {
	switch p.Type {
	case PatternToggle:
		return aria.Toggle(p.Pressed), nil
	case PatternDisclosure:
		return aria.Disclosure(p.Expanded, p.Controls), nil
	case PatternSelection:
		return aria.Selection(p.Selected), nil
	case PatternChecked:
		if p.Checked == string(aria.Mixed) {
			return aria.Checked(aria.Mixed), nil
		}
		return aria.Checked(p.Checked == "true"), nil
	case PatternLiveRegion:
		return aria.LiveRegion(p.Live.options()), nil
	case PatternDialogTrigger:
		return aria.DialogTrigger(p.Dialog, p.Open), nil
	case PatternFormField:
		return aria.FormField(p.Required, p.Invalid), nil
	case PatternDescribedBy:
		return aria.DescribedBy(p.Ref), nil
	case PatternLabelledBy:
		return aria.LabelledBy(p.Ref), nil
	case PatternSkipLink:
		return aria.SkipLink(p.Target), nil
	case PatternCurrent:
		return aria.CurrentItem(aria.Current(p.Current)), nil
	case PatternLabel:
		return aria.Label(p.Label), nil
	case PatternHidden:
		return aria.Hidden(p.Hidden), nil
	case PatternPreset:
		set, ok := aria.Preset(p.Preset)
		if !ok {
			return nil, a11yerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q", p.Preset), nil)
		}
		return set, nil
	default:
		return nil, a11yerrors.NewValidationError("type", fmt.Sprintf("unknown pattern type %q", p.Type), nil)
	}
}

func (o *LiveOptions) options() aria.LiveRegionOptions {
	if o == nil {
		return aria.LiveRegionOptions{}
	}
	return aria.LiveRegionOptions{
		Atomic:     o.Atomic,
		Relevant:   aria.Relevant(strings.Join(o.Relevant, " ")),
		Busy:       o.Busy,
		Politeness: aria.Politeness(o.Politeness),
	}
}

// checkReferences validates the identifiers a pattern refers to. dialog and
// target name a single element; controls and ref may list several.
func checkReferences(p Pattern) error {
	switch p.Type {
	case PatternDisclosure:
		return checkIDList("controls", p.Controls)
	case PatternDialogTrigger:
		return aria.ValidateID("dialog", p.Dialog)
	case PatternSkipLink:
		return aria.ValidateID("target", p.Target)
	case PatternDescribedBy, PatternLabelledBy:
		return checkIDList("ref", p.Ref)
	}
	return nil
}

func checkIDList(field, value string) error {
	ids := strings.Fields(value)
	if len(ids) == 0 {
		return aria.ValidateID(field, value)
	}
	for _, id := range ids {
		if err := aria.ValidateID(field, id); err != nil {
			return err
		}
	}
	return nil
}
