package commands

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"
)

// parseRequiredDate rejects blank and unparsable input under the given name.
func parseRequiredDate(paramName, s string) (kernel.Date, error) {
	d, err := kernel.ParseDate(s)
	if err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if !d.IsPresent() {
		return kernel.Date{}, errs.NewValueIsRequiredError(paramName)
	}
	return d, nil
}

// parseOptionalDate accepts blank input as an absent date.
func parseOptionalDate(paramName, s string) (kernel.Date, error) {
	d, err := kernel.ParseDate(s)
	if err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return d, nil
}

// parseOptionalDates parses every entry, collecting all failures.
func parseOptionalDates(paramName string, values []string) ([]kernel.Date, error) {
	dates := make([]kernel.Date, len(values))
	var all []error
	for i, s := range values {
		d, err := parseOptionalDate(paramName, s)
		if err != nil {
			all = append(all, err)
			continue
		}
		dates[i] = d
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return dates, nil
}
