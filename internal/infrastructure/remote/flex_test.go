package remote

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTime_Unmarshal(t *testing.T) {
	epoch := time.Unix(1700000000, 0).UTC()
	iso := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	dateOnly := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{"iso string", `"2024-03-01T10:30:00Z"`, &iso},
		{"date only", `"2024-03-01"`, &dateOnly},
		{"epoch seconds", `1700000000`, &epoch},
		{"epoch milliseconds", `1700000000000`, &epoch},
		{"epoch seconds as string", `"1700000000"`, &epoch},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"garbage string", `"not a date"`, nil},
		{"wrong type", `true`, nil},
	}

	for _, tc := range cases {
		var ft FlexTime
		if err := json.Unmarshal([]byte(tc.raw), &ft); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		got := ft.Time()
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: want nil, got %v", tc.name, got)
		case tc.want != nil && got == nil:
			t.Errorf("%s: want %v, got nil", tc.name, tc.want)
		case tc.want != nil && !got.Equal(*tc.want):
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestFlexTime_Marshal(t *testing.T) {
	var absent FlexTime
	b, err := json.Marshal(absent)
	if err != nil {
		t.Fatalf("marshal absent: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("absent time: want null, got %s", b)
	}

	// Round-trip keeps the instant.
	var ft FlexTime
	if err := json.Unmarshal([]byte(`"2024-03-01T10:30:00Z"`), &ft); err != nil {
		t.Fatal(err)
	}
	b, err = json.Marshal(ft)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back FlexTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Time().Equal(*ft.Time()) {
		t.Errorf("round trip changed instant: %v -> %v", ft.Time(), back.Time())
	}
}

func TestFlexString_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"555-867-5309"`, "555-867-5309"},
		{"bare number", `5125550198`, "5125550198"},
		{"zero", `0`, "0"},
		{"decimal", `3.5`, "3.5"},
		{"null", `null`, ""},
		{"wrong type", `["x"]`, ""},
	}

	for _, tc := range cases {
		var fs FlexString
		if err := json.Unmarshal([]byte(tc.raw), &fs); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if fs.String() != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, fs.String())
		}
	}
}

func TestRef_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare id", `"1680000000001x1"`, "1680000000001x1"},
		{"expanded with unique_id", `{"unique_id": "u1", "label": "Acme Roofing"}`, "u1"},
		{"expanded with _id", `{"_id": "m1", "label": "Acme Roofing"}`, "m1"},
		{"unique_id wins over _id", `{"unique_id": "u1", "_id": "m1"}`, "u1"},
		{"null", `null`, ""},
		{"wrong type", `42`, ""},
	}

	for _, tc := range cases {
		var ref Ref
		if err := json.Unmarshal([]byte(tc.raw), &ref); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if ref.ID != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, ref.ID)
		}
	}
}

func TestRef_MarshalEmitsBareID(t *testing.T) {
	b, err := json.Marshal(Ref{ID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"u1"` {
		t.Errorf("want bare id string, got %s", b)
	}
}
