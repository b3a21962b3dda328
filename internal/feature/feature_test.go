package feature

import "testing"

func TestEarModeFromOrdinalRoundTrip(t *testing.T) {
	for ord, want := range earModeOrder {
		if got := EarModeFromOrdinal(ord); got != want {
			t.Errorf("EarModeFromOrdinal(%d) = %v, want %v", ord, got, want)
		}
	}
}

func TestEarModeFromOrdinalOutOfRange(t *testing.T) {
	if got := EarModeFromOrdinal(-1); got != EarNone {
		t.Errorf("EarModeFromOrdinal(-1) = %v, want EarNone", got)
	}
	if got := EarModeFromOrdinal(len(earModeOrder)); got != EarNone {
		t.Errorf("EarModeFromOrdinal(out of range) = %v, want EarNone", got)
	}
}

func TestTailModeFromOrdinalRoundTrip(t *testing.T) {
	for ord, want := range tailModeOrder {
		if got := TailModeFromOrdinal(ord); got != want {
			t.Errorf("TailModeFromOrdinal(%d) = %v, want %v", ord, got, want)
		}
	}
	if got := TailModeFromOrdinal(99); got != TailNone {
		t.Errorf("TailModeFromOrdinal(99) = %v, want TailNone", got)
	}
}

func TestWingModeFromOrdinalRoundTrip(t *testing.T) {
	for ord, want := range wingModeOrder {
		if got := WingModeFromOrdinal(ord); got != want {
			t.Errorf("WingModeFromOrdinal(%d) = %v, want %v", ord, got, want)
		}
	}
	if got := WingModeFromOrdinal(-5); got != WingNone {
		t.Errorf("WingModeFromOrdinal(-5) = %v, want WingNone", got)
	}
}

func TestEarAnchorFromOrdinalRoundTrip(t *testing.T) {
	for ord, want := range earAnchorOrder {
		if got := EarAnchorFromOrdinal(ord); got != want {
			t.Errorf("EarAnchorFromOrdinal(%d) = %v, want %v", ord, got, want)
		}
	}
	if got := EarAnchorFromOrdinal(3); got != AnchorCenter {
		t.Errorf("EarAnchorFromOrdinal(3) = %v, want AnchorCenter", got)
	}
}

func TestOrdinalMatchesDeclarationOrder(t *testing.T) {
	for ord, m := range earModeOrder {
		if m.Ordinal() != ord {
			t.Errorf("earModeOrder[%d].Ordinal() = %d, want %d", ord, m.Ordinal(), ord)
		}
	}
}
