package schema

import "fmt"

// Validate runs the structural checks a loader must guarantee before the
// core ever sees the definition: every required row present, every
// transition rule carrying all five fields. It says nothing about whether
// the referenced states or symbols exist; that is the semantic pass in
// domain.Machine.Validate.
//
// All failures are collected and returned as one *MalformedError.
func (d *Document) Validate() error {
	var errs []error

	requireField := func(field, value string) {
		if value == "" {
			errs = append(errs, &FieldError{Field: field, Reason: "required"})
		}
	}

	requireField("name", d.Name)
	requireField("start", d.Start)
	requireField("accept", d.Accept)
	requireField("reject", d.Reject)

	if len(d.States) == 0 {
		errs = append(errs, &FieldError{Field: "states", Reason: "required"})
	}
	if len(d.TapeAlphabet) == 0 {
		errs = append(errs, &FieldError{Field: "tape_alphabet", Reason: "required"})
	}

	for i, r := range d.Rules {
		missing := ""
		switch {
		case r.From == "":
			missing = "from"
		case r.Read == "":
			missing = "read"
		case r.To == "":
			missing = "to"
		case r.Write == "":
			missing = "write"
		case r.Move == "":
			missing = "move"
		}
		if missing != "" {
			errs = append(errs, &FieldError{
				Field:  fmt.Sprintf("transitions[%d]", i),
				Reason: fmt.Sprintf("missing %s field", missing),
			})
		}
	}

	if len(errs) > 0 {
		return &MalformedError{Errors: errs}
	}
	return nil
}
