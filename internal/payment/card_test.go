package payment

import "testing"

func TestCardDetailsValidate(t *testing.T) {
	valid := CardDetails{HolderName: "JOAO SILVA", Number: "4111 1111 1111 1111", Expiry: "12/25", CVC: "123"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid card, got %v", err)
	}

	missing := []CardDetails{
		{Number: "4111111111111111", Expiry: "12/25", CVC: "123"},
		{HolderName: "JOAO", Expiry: "12/25", CVC: "123"},
		{HolderName: "JOAO", Number: "4111111111111111", CVC: "123"},
		{HolderName: "JOAO", Number: "4111111111111111", Expiry: "12/25"},
	}
	for i, d := range missing {
		if err := d.Validate(); err != ErrMissingCardFields {
			t.Errorf("case %d: expected ErrMissingCardFields, got %v", i, err)
		}
	}
}

func TestExpiryFormat(t *testing.T) {
	pass := []string{"12/25", "12 / 25", "09/27", "01 /31"}
	for _, e := range pass {
		d := CardDetails{HolderName: "A", Number: "4111", Expiry: e, CVC: "1"}
		if err := d.Validate(); err != nil {
			t.Errorf("expiry %q: expected pass, got %v", e, err)
		}
	}

	fail := []string{"1225", "13/2025", "ab/cd", "1/25", "12-25", ""}
	for _, e := range fail {
		d := CardDetails{HolderName: "A", Number: "4111", Expiry: e, CVC: "1"}
		if e == "" {
			if err := d.Validate(); err != ErrMissingCardFields {
				t.Errorf("empty expiry: expected ErrMissingCardFields, got %v", err)
			}
			continue
		}
		if err := d.Validate(); err != ErrInvalidExpiry {
			t.Errorf("expiry %q: expected ErrInvalidExpiry, got %v", e, err)
		}
	}
}

func TestParseExpiry(t *testing.T) {
	month, year, err := ParseExpiry("09/27")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != "09" || year != "2027" {
		t.Errorf("expected 09/2027, got %s/%s", month, year)
	}

	month, year, err = ParseExpiry("12 / 25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if month != "12" || year != "2025" {
		t.Errorf("expected 12/2025, got %s/%s", month, year)
	}

	if _, _, err := ParseExpiry("13-2025"); err != ErrInvalidExpiry {
		t.Errorf("expected ErrInvalidExpiry, got %v", err)
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	if got := NormalizeCardNumber("4111 1111 1111 1111"); got != "4111111111111111" {
		t.Errorf("unexpected normalized number %q", got)
	}
	if got := NormalizeCardNumber(" 4111111111111111 "); got != "4111111111111111" {
		t.Errorf("unexpected normalized number %q", got)
	}
}

func TestApproved(t *testing.T) {
	for _, s := range []string{"approved", "paid"} {
		if !Approved(s) {
			t.Errorf("expected %q to count as approved", s)
		}
	}
	for _, s := range []string{"pending", "refused", "waiting_payment", ""} {
		if Approved(s) {
			t.Errorf("expected %q to not count as approved", s)
		}
	}
}
