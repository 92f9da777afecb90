package pricing

import (
	"fmt"
	"strings"

	"hvacops/internal/pkg/errs"
)

// Component is one physical unit of a SET model.
type Component struct {
	Name      string
	ModelName string
}

// ParseComponents reads the "name:model;name:model" notation used by the
// price table sheet and storage. Blank input means "not a SET".
func ParseComponents(s string) ([]Component, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ";")
	components := make([]Component, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, model, ok := strings.Cut(part, ":")
		name, model = strings.TrimSpace(name), strings.TrimSpace(model)
		if !ok || name == "" || model == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("components", fmt.Errorf("%q is not name:model", part))
		}
		components = append(components, Component{Name: name, ModelName: model})
	}

	return components, nil
}

// FormatComponents is the inverse of ParseComponents.
func FormatComponents(components []Component) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = c.Name + ":" + c.ModelName
	}
	return strings.Join(parts, ";")
}
