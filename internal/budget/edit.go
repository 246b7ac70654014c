package budget

// EditResult is the outcome of an edit form: either submitted values or a cancel.
type EditResult struct {
	Cancelled bool
	Name      string
	Amount    string // raw user text, parsed by EditEntry
}

// Submitted builds a result carrying the replacement values.
func Submitted(name, amount string) EditResult {
	return EditResult{Name: name, Amount: amount}
}

// Cancelled builds a result for a dismissed form.
func Cancelled() EditResult {
	return EditResult{Cancelled: true}
}
