package chat

import (
	"errors"
	"strings"
	"testing"
)

func validMessage() Message {
	return Message{
		SenderID:     "alice",
		Body:         "hello",
		SenderName:   "Alice",
		ReceiverName: "Bob",
	}
}

func TestNewMessageAcceptsMaxLength(t *testing.T) {
	m := validMessage()
	m.Body = strings.Repeat("x", MaxMessageLength)

	got, err := NewMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len([]rune(got.Body)) != MaxMessageLength {
		t.Fatalf("body length changed: %d", len([]rune(got.Body)))
	}
}

func TestNewMessageRejectsOversize(t *testing.T) {
	m := validMessage()
	m.Body = strings.Repeat("x", MaxMessageLength+1)

	if _, err := NewMessage(m); !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("got %v, want ErrMessageTooLong", err)
	}
}

func TestNewMessageCountsRunesNotBytes(t *testing.T) {
	m := validMessage()
	m.Body = strings.Repeat("é", MaxMessageLength)

	if _, err := NewMessage(m); err != nil {
		t.Fatalf("multibyte body at the limit rejected: %v", err)
	}
}

func TestNewMessageTrimsBody(t *testing.T) {
	m := validMessage()
	m.Body = "  hi there  "

	got, err := NewMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Body != "hi there" {
		t.Fatalf("got %q", got.Body)
	}
}

func TestNewMessageRejectsWhitespaceOnly(t *testing.T) {
	m := validMessage()
	m.Body = "   \t\n"

	if _, err := NewMessage(m); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
}

func TestNewMessageFieldValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Message)
		want   error
	}{
		{"missing sender", func(m *Message) { m.SenderID = "" }, ErrMissingSender},
		{"missing sender name", func(m *Message) { m.SenderName = "" }, ErrMissingSenderName},
		{"missing receiver name", func(m *Message) { m.ReceiverName = "" }, ErrMissingReceiverName},
		{"empty body", func(m *Message) { m.Body = "" }, ErrEmptyMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMessage()
			tc.mutate(&m)
			if _, err := NewMessage(m); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewMessageSetsTimestamp(t *testing.T) {
	got, err := NewMessage(validMessage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not defaulted")
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("a", 150)
	got := Preview(long, 100)
	if got != strings.Repeat("a", 100)+"..." {
		t.Fatalf("got %q", got)
	}
}
