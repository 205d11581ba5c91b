package model

import (
	"bytes"
	"encoding/json"

	domainErrors "github.com/polkiloo/wsgateway/internal/domain/errors"
)

// AccesskeyRequest asks the authorization service for a bounded access key.
type AccesskeyRequest struct {
	Quantity uint64 `json:"quantity"`
	PofType  string `json:"pof_type"`
	Duration uint64 `json:"duration"`
}

// Accesskey is the credential issued by the authorization service.
// The gateway does not interpret it: the JSON document is kept as issued and
// encoded back unchanged.
type Accesskey struct {
	raw json.RawMessage
}

// NewAccesskey wraps a JSON document returned by the authorization service.
// Invalid JSON is rejected with the decoder error; an empty or null document
// with ErrEmptyAccesskey.
func NewAccesskey(data []byte) (*Accesskey, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, domainErrors.ErrEmptyAccesskey
	}
	var doc json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return &Accesskey{raw: append(json.RawMessage(nil), trimmed...)}, nil
}

// Bytes returns a copy of the credential document.
func (k *Accesskey) Bytes() []byte {
	return append([]byte(nil), k.raw...)
}

func (k Accesskey) MarshalJSON() ([]byte, error) {
	if len(k.raw) == 0 {
		return []byte("null"), nil
	}
	return k.raw, nil
}

func (k *Accesskey) UnmarshalJSON(data []byte) error {
	key, err := NewAccesskey(data)
	if err != nil {
		return err
	}
	*k = *key
	return nil
}
