package account

// Result is the discriminated outcome of a form submission. Exactly one of
// the three members is populated per invocation.
type Result struct {
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
	Message     string              `json:"message,omitempty"`
	FormErrors  []string            `json:"form_errors,omitempty"`
}

const genericErrorMessage = "something went wrong, please try again"

func successResult(message string) *Result {
	return &Result{Message: message}
}

func fieldErrorResult(field string, messages ...string) *Result {
	return &Result{FieldErrors: map[string][]string{field: messages}}
}

func formErrorResult(messages ...string) *Result {
	return &Result{FormErrors: messages}
}
