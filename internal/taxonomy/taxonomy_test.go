package taxonomy

import "testing"

func TestViolationTypesHaveWeightsAndAreas(t *testing.T) {
	if len(ViolationTypes) != len(DefaultTypeWeights) {
		t.Fatalf("catalogue has %d types but %d weights", len(ViolationTypes), len(DefaultTypeWeights))
	}
	for _, vt := range ViolationTypes {
		w, ok := DefaultTypeWeights[vt]
		if !ok {
			t.Fatalf("missing weight for %s", vt)
		}
		if w < 0 || w > 100 {
			t.Fatalf("weight for %s out of range: %v", vt, w)
		}
		if len(AreasFor(vt)) == 0 {
			t.Fatalf("%s belongs to no legal area", vt)
		}
	}
}

func TestAreasFor(t *testing.T) {
	got := AreasFor(DepositViolation)
	if len(got) != 2 || got[0] != HousingAct2004 || got[1] != DepositProtection {
		t.Fatalf("unexpected areas for deposit_violation: %v", got)
	}
	if areas := AreasFor(ViolationType("made_up")); len(areas) != 0 {
		t.Fatalf("unknown type should map to no areas, got %v", areas)
	}
}

func TestContextModifiersWithinBounds(t *testing.T) {
	for f, m := range DefaultContextModifiers {
		if m < MinContextModifier || m > MaxContextModifier {
			t.Fatalf("modifier for %s out of bounds: %v", f, m)
		}
	}
	if len(DefaultAreaWeights) != len(LegalAreas) {
		t.Fatalf("area weights incomplete: %d of %d", len(DefaultAreaWeights), len(LegalAreas))
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"CRITICAL", SeverityCritical},
		{"high", SeveritySerious},
		{" Medium ", SeverityModerate},
		{"low", SeverityMinor},
		{"info", SeverityInformational},
		{"bogus", Severity("bogus")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSeverity(tt.in); got != tt.want {
				t.Fatalf("ParseSeverity(%q)=%q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeverityOrder(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		if Severities[i-1].Rank() <= Severities[i].Rank() {
			t.Fatalf("%s should outrank %s", Severities[i-1], Severities[i])
		}
	}
	if Severity("bogus").AtLeast(SeverityInformational) {
		t.Fatalf("unknown severity must not satisfy AtLeast")
	}
	if !SeveritySerious.AtLeast(SeverityModerate) {
		t.Fatalf("serious should be at least moderate")
	}
}
