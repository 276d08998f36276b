package validator

import "testing"

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	v.Check(false, "hour", "must be between 0 and 23")
	v.Check(false, "hour", "must be provided")

	if v.Valid() {
		t.Fatalf("validator must be invalid")
	}
	if got := v.Errors["hour"]; got != "must be between 0 and 23" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestInRange(t *testing.T) {
	if !InRange(23, 0, 23) || InRange(24, 0, 23) {
		t.Fatalf("int range check is wrong")
	}
	if !InRange(-90.0, -90, 90) || InRange(90.1, -90, 90) {
		t.Fatalf("float range check is wrong")
	}
}
