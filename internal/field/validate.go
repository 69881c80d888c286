package field

// DefaultErrorMessage is shown when a rule has no message of its own.
const DefaultErrorMessage = "Formato inválido"

// Rule pairs a pattern with the message shown when a value does not match.
type Rule struct {
	Pattern Pattern
	Message string
}

// Result is the advisory state rendered under a field. It never blocks input.
type Result struct {
	IsError bool
	Message string
}

// Validate decides the error state of value. A non-empty externalError always
// wins, whatever it contains. Otherwise a non-empty value that does not fully match the rule's
// pattern is an error carrying the rule's message. Empty values are never
// pattern errors; "required" is a form-level concern.
func Validate(value string, rule *Rule, externalError string) Result {
	if externalError != "" {
		return Result{IsError: true, Message: externalError}
	}

	if rule == nil || rule.Pattern == nil || value == "" {
		return Result{}
	}

	if rule.Pattern.MatchString(value) {
		return Result{}
	}

	message := rule.Message
	if message == "" {
		message = DefaultErrorMessage
	}
	return Result{IsError: true, Message: message}
}
