package domain

import "testing"

func TestProjectStatusRoundTrip(t *testing.T) {
	seen := map[int16]bool{}
	for _, label := range ProjectStatusLabels {
		code, ok := ProjectStatusCode(label)
		if !ok {
			t.Fatalf("label %q has no code", label)
		}
		if seen[code] {
			t.Fatalf("code %d mapped twice", code)
		}
		seen[code] = true
		back, err := ProjectStatusLabel(code)
		if err != nil {
			t.Fatalf("code %d has no label: %v", code, err)
		}
		if back != label {
			t.Fatalf("round trip %q -> %d -> %q", label, code, back)
		}
	}
	if len(seen) != 7 {
		t.Fatalf("expected 7 project statuses, got %d", len(seen))
	}
}

func TestPaymentStatusRoundTrip(t *testing.T) {
	for _, label := range PaymentStatusLabels {
		code, ok := PaymentStatusCode(label)
		if !ok {
			t.Fatalf("label %q has no code", label)
		}
		back, err := PaymentStatusLabel(code)
		if err != nil || back != label {
			t.Fatalf("round trip %q -> %d -> %q (err=%v)", label, code, back, err)
		}
	}
	if len(PaymentStatusLabels) != 4 {
		t.Fatalf("expected 4 payment statuses")
	}
}

func TestMaterialStatusRoundTrip(t *testing.T) {
	for _, label := range MaterialStatusLabels {
		code, ok := MaterialStatusCode(label)
		if !ok {
			t.Fatalf("label %q has no code", label)
		}
		back, err := MaterialStatusLabel(code)
		if err != nil || back != label {
			t.Fatalf("round trip %q -> %d -> %q (err=%v)", label, code, back, err)
		}
	}
}

func TestMediaKindRoundTrip(t *testing.T) {
	for _, label := range MediaKindLabels {
		code, ok := MediaKindCode(label)
		if !ok {
			t.Fatalf("label %q has no code", label)
		}
		back, err := MediaKindLabel(code)
		if err != nil || back != label {
			t.Fatalf("round trip %q -> %d -> %q (err=%v)", label, code, back, err)
		}
	}
}

func TestUnknownLabelAndCodeAreRejected(t *testing.T) {
	if _, ok := ProjectStatusCode("Archived"); ok {
		t.Fatalf("unknown label must not map")
	}
	if _, err := ProjectStatusLabel(99); err == nil {
		t.Fatalf("unknown code must error, never default")
	}
	if _, ok := MediaKindCode("gif"); ok {
		t.Fatalf("unknown media kind must not map")
	}
	if _, err := PaymentStatusLabel(0); err == nil {
		t.Fatalf("zero payment code must error")
	}
}
