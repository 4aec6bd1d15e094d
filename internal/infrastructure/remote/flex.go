package remote

import (
	"bytes"
	"encoding/json"
	"time"
)

// FlexTime decodes the store's heterogeneous date encodings: ISO-8601
// strings, numeric epochs in seconds or milliseconds, numeric strings, or
// null. The store emits all of these for the same field depending on the
// record's age, so every date crosses the boundary through this type. A
// value that cannot be interpreted decodes as absent rather than failing
// the record.
type FlexTime struct {
	t *time.Time
}

// Time returns the parsed timestamp, or nil when the wire value was null,
// empty or unparseable.
func (f FlexTime) Time() *time.Time {
	return f.t
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.t.Format(time.RFC3339Nano))
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		f.t = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.t = parseExternalDate(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Neither string nor number: treat as absent.
		f.t = nil
		return nil
	}
	f.t = parseEpoch(v)
	return nil
}

// FlexString decodes a field the store emits as either a JSON string or a
// bare number, e.g. phone numbers. Numbers keep their literal digits: 0
// decodes to "0", not to an empty value.
type FlexString string

func (f FlexString) String() string { return string(f) }

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// Ref is the store's foreign-key union: either a bare id string or an
// object carrying the id plus a display label. Only the id survives the
// boundary; labels are resolved elsewhere and never reach the domain
// model.
type Ref struct {
	ID string
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.ID = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var obj struct {
		UniqueID string `json:"unique_id"`
		ID       string `json:"_id"`
		Label    string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		r.ID = ""
		return nil
	}
	if obj.UniqueID != "" {
		r.ID = obj.UniqueID
	} else {
		r.ID = obj.ID
	}
	return nil
}
