package onboarding

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SectionState struct {
	Section  Section     `json:"section"`
	Step     int         `json:"step"`
	Complete bool        `json:"complete"`
	Errors   interface{} `json:"errors,omitempty"`
}

type Progress struct {
	Sections    []SectionState `json:"sections"`
	Completed   int            `json:"completed"`
	Total       int            `json:"total"`
	Percent     int            `json:"percent"`
	CurrentStep int            `json:"current_step"`
	CanSubmit   bool           `json:"can_submit"`
}

func (f Form) Progress() Progress {
	p := Progress{
		Sections: make([]SectionState, 0, len(Sections)),
		Total:    len(Sections),
	}

	for _, sec := range Sections {
		st := SectionState{Section: sec, Step: sec.Step()}
		if err := f.ValidateSection(sec); err != nil {
			st.Errors = ErrorDetails(err)
			if p.CurrentStep == 0 {
				p.CurrentStep = st.Step
			}
		} else {
			st.Complete = true
			p.Completed++
		}
		p.Sections = append(p.Sections, st)
	}

	if p.CurrentStep == 0 {
		p.CurrentStep = len(Sections)
	}
	p.Percent = p.Completed * 100 / p.Total
	p.CanSubmit = p.Completed == p.Total && f.Status.Editable()
	return p
}

// Complete reports whether one section passes validation.
func (f Form) Complete(section Section) bool {
	return f.ValidateSection(section) == nil
}

// ErrorDetails turns a validation error into something JSON-friendly:
// a nested field map for ozzo errors, the message otherwise.
func ErrorDetails(err error) interface{} {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return fields
	}
	return err.Error()
}
