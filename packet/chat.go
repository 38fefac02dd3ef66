package packet

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ChatMax is the maximum length of a serialized text component.
const ChatMax = 262144

// Chat is a text component in its JSON form. The exact document is kept so
// re-encoding reproduces the received bytes.
type Chat string

// TextChat builds a plain text component.
func TextChat(text string) Chat {
	b, err := json.Marshal(struct {
		Text string `json:"text"`
	}{text})
	if err != nil {
		// marshaling a struct of one string cannot fail
		panic(err)
	}
	return Chat(b)
}

// PlainText extracts the top-level "text" of the component, or the whole
// document when it is a bare JSON string.
func (c Chat) PlainText() string {
	var s string
	if err := json.Unmarshal([]byte(c), &s); err == nil {
		return s
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(c), &obj); err == nil {
		return obj.Text
	}
	return ""
}

func (c Chat) MarshalJSON() ([]byte, error) {
	if c == "" {
		return []byte("null"), nil
	}
	return []byte(c), nil
}

// UnmarshalJSON keeps the raw component document.
func (c *Chat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = ""
		return nil
	}
	*c = Chat(b)
	return nil
}

// WriteChat rejects a component its reader would not accept, including the
// zero Chat.
func WriteChat(w io.Writer, v Chat) error {
	if !json.Valid([]byte(v)) {
		return fmt.Errorf("%w: %.32q", ErrInvalidJSON, string(v))
	}
	return WriteBoundedString(w, string(v), ChatMax)
}

func ReadChat(r *FrameReader) (v Chat, err error) {
	s, err := ReadBoundedString(r, ChatMax)
	if err != nil {
		return
	}
	if !json.Valid([]byte(s)) {
		return "", fmt.Errorf("%w: %.32q", ErrInvalidJSON, s)
	}
	return Chat(s), nil
}
