package checkout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// requiredMessage is shown next to each missing field.
const requiredMessage = "Required"

// ValidationError lists the delivery form fields that block submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	return fmt.Sprintf("delivery details are invalid: %s", strings.Join(names, ", "))
}

// validate checks every field except Instructions, which is optional.
func validate(details domain.DeliveryDetails) error {
	fields := map[string]string{}

	required := []struct {
		name  string
		value string
	}{
		{"name", details.Name},
		{"email", details.Email},
		{"phone", details.Phone},
		{"address", details.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields[f.name] = requiredMessage
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
