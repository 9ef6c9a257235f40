package weights

import (
	"testing"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/google/go-cmp/cmp"
)

func TestLookupFallbacks(t *testing.T) {
	cfg := Default()
	if got := cfg.TypeWeight("not_a_type"); got != FallbackTypeWeight {
		t.Fatalf("unknown type weight=%v want %v", got, FallbackTypeWeight)
	}
	if got := cfg.SeverityWeight("catastrophic"); got != NeutralMultiplier {
		t.Fatalf("unknown severity weight=%v want 1.0", got)
	}
	if got := cfg.ContextModifier("rural_location"); got != NeutralMultiplier {
		t.Fatalf("unknown context modifier=%v want 1.0", got)
	}
	if got := cfg.AreaWeight("planning_law"); got != NeutralMultiplier {
		t.Fatalf("unknown area weight=%v want 1.0", got)
	}
	if got := cfg.ImpactMultiplier(""); got != NeutralMultiplier {
		t.Fatalf("empty severity impact multiplier=%v want 1.0", got)
	}
}

func TestNilConfigUsesDefaults(t *testing.T) {
	var cfg *Config
	if got := cfg.TypeWeight(taxonomy.ProhibitedFees); got != 90 {
		t.Fatalf("nil config TypeWeight=%v want 90", got)
	}
	if cfg.Escalation() != EscalationPerViolation {
		t.Fatalf("nil config escalation=%s", cfg.Escalation())
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	before := base.Snapshot()

	alt := base.With(
		WithTypeWeight(taxonomy.ProhibitedFees, 10),
		WithContextModifier(taxonomy.NewBuild, 1.3),
		WithoutContextModifier(taxonomy.VulnerableTenant),
		WithTenantProtectionBias(20),
		WithEscalation(EscalationCompounding),
	)

	if diff := cmp.Diff(before, base.Snapshot()); diff != "" {
		t.Fatalf("With mutated the receiver:\n%s", diff)
	}
	if alt.TypeWeight(taxonomy.ProhibitedFees) != 10 {
		t.Fatalf("override not applied")
	}
	if alt.ContextModifier(taxonomy.VulnerableTenant) != NeutralMultiplier {
		t.Fatalf("removed modifier should be neutral")
	}
	if alt.TenantProtectionBias() != 20 || alt.Escalation() != EscalationCompounding {
		t.Fatalf("scalar overrides not applied: bias=%v escalation=%s", alt.TenantProtectionBias(), alt.Escalation())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	cfg := New()
	snap := cfg.Snapshot()
	snap.ViolationTypeWeights[taxonomy.DepositViolation] = 1
	if cfg.TypeWeight(taxonomy.DepositViolation) != 85 {
		t.Fatalf("snapshot edits leaked into config")
	}
}

func TestWithEscalationIgnoresUnknown(t *testing.T) {
	cfg := New(WithEscalation("sideways"))
	if cfg.Escalation() != EscalationPerViolation {
		t.Fatalf("unknown escalation should be ignored, got %s", cfg.Escalation())
	}
}

func TestContextProduct(t *testing.T) {
	cfg := Default()
	got := cfg.ContextProduct([]taxonomy.ContextFactor{taxonomy.SocialHousing, "unregistered", taxonomy.NewBuild})
	want := 1.1 * 0.9
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ContextProduct=%v want %v", got, want)
	}
}
