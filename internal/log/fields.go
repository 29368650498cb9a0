package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldSessionID     = "session_id"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldTransactionID = "transaction_id"
	FieldDescription   = "description"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldDate          = "date"
	FieldKind          = "kind"
	FieldChoice        = "choice"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentLedger     = "ledger"
	ComponentService    = "service"
	ComponentValidation = "validation"
	ComponentPrompt     = "prompt"
	ComponentConfig     = "config"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpValidate = "validate"
	OpReport   = "report"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds transaction-related fields
func (f LogFields) WithTransaction(id, desc, amount, category, date, kind string) LogFields {
	f[FieldTransactionID] = id
	f[FieldDescription] = desc
	f[FieldAmount] = amount
	f[FieldCategory] = category
	f[FieldDate] = date
	f[FieldKind] = kind
	return f
}

// WithPeriod adds month and year
func (f LogFields) WithPeriod(month, year int) LogFields {
	f[FieldMonth] = month
	f[FieldYear] = year
	return f
}

// ToSlice converts LogFields to a slice for slog. The component field is
// left out because Logger adds its own.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		if k == FieldComponent {
			continue
		}
		slice = append(slice, k, v)
	}
	return slice
}
