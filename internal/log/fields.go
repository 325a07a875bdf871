package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldAccount      = "account"
	FieldAccountIndex = "account_index"
	FieldAmount       = "amount"
	FieldBalance      = "balance"
	FieldCategory     = "category"
	FieldPath         = "path"
	FieldBackend      = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentFinance = "finance"
	ComponentConsole = "console"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentLedger  = "ledger"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpSpend     = "spend"
	OpReplenish = "replenish"
	OpSave      = "save_report"
	OpRestore   = "restore"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
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

// WithAccount adds account fields
func (f LogFields) WithAccount(index int, name string, balance string) LogFields {
	f[FieldAccountIndex] = index
	f[FieldAccount] = name
	f[FieldBalance] = balance
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(amount string, category string) LogFields {
	f[FieldAmount] = amount
	f[FieldCategory] = category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
