package snake

import "testing"

func TestEffectsActivateAndExpire(t *testing.T) {
	var fx Effects

	fx.Activate(EffectDoublePoints, 3)
	if !fx.Active(EffectDoublePoints) {
		t.Fatal("effect should be active after Activate")
	}
	if fx.Remaining(EffectDoublePoints) != 3 {
		t.Errorf("Remaining = %d, expected 3", fx.Remaining(EffectDoublePoints))
	}

	// Two ticks: still active
	fx.Tick()
	fx.Tick()
	if !fx.Active(EffectDoublePoints) {
		t.Fatal("effect should survive until duration reaches zero")
	}

	// Third tick: expires and is reported
	expired := fx.Tick()
	if len(expired) != 1 || expired[0] != EffectDoublePoints {
		t.Errorf("Tick() expired = %v, expected [DoublePoints]", expired)
	}
	if fx.Active(EffectDoublePoints) {
		t.Error("effect should be inactive after expiry")
	}
}

func TestEffectsRefreshNotStack(t *testing.T) {
	var fx Effects

	fx.Activate(EffectInvincibility, 10)
	fx.Tick()
	fx.Tick()

	// Re-activating refreshes the duration rather than duplicating
	fx.Activate(EffectInvincibility, 10)
	if got := fx.Remaining(EffectInvincibility); got != 10 {
		t.Errorf("Remaining after refresh = %d, expected 10", got)
	}
}

func TestEffectsIndependentDurations(t *testing.T) {
	var fx Effects

	fx.Activate(EffectSpeedBoost, 2)
	fx.Activate(EffectSlowDown, 5)

	fx.Tick()
	expired := fx.Tick()
	if len(expired) != 1 || expired[0] != EffectSpeedBoost {
		t.Fatalf("expected only SpeedBoost to expire, got %v", expired)
	}
	if !fx.Active(EffectSlowDown) {
		t.Error("SlowDown should still be active")
	}
	if got := fx.Remaining(EffectSlowDown); got != 3 {
		t.Errorf("SlowDown remaining = %d, expected 3", got)
	}
}

func TestEffectsClear(t *testing.T) {
	var fx Effects

	fx.Activate(EffectSpeedBoost, 100)
	fx.Activate(EffectDoublePoints, 100)
	fx.Clear()

	for e := EffectType(0); e < EffectCount; e++ {
		if fx.Active(e) {
			t.Errorf("effect %v should be inactive after Clear", e)
		}
	}
}

func TestKindEffectMapping(t *testing.T) {
	timed := map[PowerUpKind]EffectType{
		PowerUpSpeedBoost:    EffectSpeedBoost,
		PowerUpSlowDown:      EffectSlowDown,
		PowerUpDoublePoints:  EffectDoublePoints,
		PowerUpInvincibility: EffectInvincibility,
	}

	for kind, want := range timed {
		e, ok := kind.Effect()
		if !ok || e != want {
			t.Errorf("%v.Effect() = (%v, %v), expected (%v, true)", kind, e, ok, want)
		}
	}

	// Structural kinds occupy no duration slot
	for _, kind := range []PowerUpKind{PowerUpShrink, PowerUpExtend} {
		if _, ok := kind.Effect(); ok {
			t.Errorf("%v should not map to a timed effect", kind)
		}
	}
}

func TestKindGlyphsDistinct(t *testing.T) {
	seen := make(map[rune]PowerUpKind)
	for k := PowerUpKind(0); k < PowerUpKindCount; k++ {
		g := k.Glyph()
		if prev, dup := seen[g]; dup {
			t.Errorf("kinds %v and %v share glyph %q", prev, k, g)
		}
		seen[g] = k
	}
}
