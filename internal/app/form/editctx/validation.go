package editctx

// Rule is a single-field validation rule. Check receives the field's
// current value and returns a descriptive error when the value is
// rejected. Rules never see more than one field at a time.
type Rule struct {
	Field string
	Check func(value any) error
}

// runRules evaluates every rule against the current field values and
// rewrites the message store. Rules for unknown fields are skipped.
func (c *EditContext) runRules() {
	c.messages.ClearAll()
	for _, r := range c.rules {
		if r.Check == nil {
			continue
		}
		b, ok := c.byName[r.Field]
		if !ok {
			continue
		}
		if err := r.Check(b.Get()); err != nil {
			c.messages.Add(r.Field, err.Error())
		}
	}
}
