package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2025-03-10 09:30", time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"2025-03-10 09:30:15", time.Date(2025, 3, 10, 9, 30, 15, 0, time.UTC)},
		{" 2025-03-12 ", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, ok := ParseDateTime(c.input, time.UTC)
		if !ok {
			t.Errorf("ParseDateTime(%q) failed, want %v", c.input, c.want)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDateTime(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	invalid := []string{"", "2025/03/10", "10-03-2025", "2025-03-10T09:30:00Z", "2025-13-01"}
	for _, s := range invalid {
		if _, ok := ParseDateTime(s, time.UTC); ok {
			t.Errorf("ParseDateTime(%q) = ok, want failure", s)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"E001", "2024-0001", "kim.hr"}
	invalid := []string{"", "E 001", "사번1", "a/b"}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "reason", Message: "required"},
	}
	got := errs.Error()
	want := "start_date: invalid; reason: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid"},
		{Field: "reason", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"start_date": "invalid", "reason": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
