package web

import (
	"errors"

	"github.com/ja7ad/phantom/pkg/greenops"
	"github.com/ja7ad/phantom/pkg/standby"
)

// FormState is everything one rendering of the form needs: the text in each
// field, the error from the last submit and the last result.
type FormState struct {
	Watts        string
	Tariff       string
	StandbyHours string

	Err      string
	ErrField standby.Field

	Input       standby.ConsumptionInput
	Result      *standby.ImpactResult
	Comparisons greenops.Summary
}

// NewFormState returns an empty form with the tariff prefilled.
func NewFormState(defaultTariff string) *FormState {
	return &FormState{Tariff: defaultTariff}
}

// Raw returns the field text as a standby.RawInput.
func (s *FormState) Raw() standby.RawInput {
	return standby.RawInput{Watts: s.Watts, Tariff: s.Tariff, StandbyHours: s.StandbyHours}
}

// Submit validates the field text and, when it passes, replaces the result.
// A failed submit sets Err and leaves the previous result in place.
func (s *FormState) Submit(calc *standby.Calculator) error {
	s.Err, s.ErrField = "", ""

	in, res, err := calc.Estimate(s.Raw())
	if err != nil {
		s.Err = err.Error()
		var verr *standby.ValidationError
		if errors.As(err, &verr) {
			s.ErrField = verr.Field
		}
		return err
	}

	s.Input = in
	s.Result = &res
	s.Comparisons = greenops.Describe(res)
	return nil
}

// HasResult reports whether a result is available to render.
func (s *FormState) HasResult() bool { return s.Result != nil }
