package editctx

import "github.com/google/uuid"

// Message is a single validation message routed to a field.
type Message struct {
	ID    uuid.UUID
	Field string
	Text  string
}

// MessageStore holds validation messages keyed by field name. It is the
// sink validation rules write into and the source field-level UI reads
// from.
type MessageStore struct {
	byField map[string][]Message
	count   int
}

// NewMessageStore creates an empty MessageStore.
func NewMessageStore() *MessageStore {
	return &MessageStore{byField: make(map[string][]Message)}
}

// Add appends a message for the given field and returns it.
func (s *MessageStore) Add(field, text string) Message {
	msg := Message{ID: uuid.New(), Field: field, Text: text}
	s.byField[field] = append(s.byField[field], msg)
	s.count++
	return msg
}

// MessagesFor returns the message texts currently routed to a field.
func (s *MessageStore) MessagesFor(field string) []string {
	msgs := s.byField[field]
	if len(msgs) == 0 {
		return nil
	}
	texts := make([]string, len(msgs))
	for i, m := range msgs {
		texts[i] = m.Text
	}
	return texts
}

// All returns every message in the store.
func (s *MessageStore) All() []Message {
	all := make([]Message, 0, s.count)
	for _, msgs := range s.byField {
		all = append(all, msgs...)
	}
	return all
}

// Clear removes all messages for a field.
func (s *MessageStore) Clear(field string) {
	s.count -= len(s.byField[field])
	delete(s.byField, field)
}

// ClearAll empties the store.
func (s *MessageStore) ClearAll() {
	s.byField = make(map[string][]Message)
	s.count = 0
}

// Count returns the number of messages in the store.
func (s *MessageStore) Count() int {
	return s.count
}
