package combinator

import "testing"

func TestIdentity(t *testing.T) {
	m := Identity[string]()
	if m("x") != "x" {
		t.Error("identity changed its input")
	}
}

func TestCompose(t *testing.T) {
	double := Mapper[int](func(n int) int { return n * 2 })
	inc := Mapper[int](func(n int) int { return n + 1 })
	m := Compose(double, inc)
	if got := m(3); got != 7 {
		t.Errorf("Compose(3) = %d, want 7", got)
	}
}

func TestComposeOrderMatters(t *testing.T) {
	double := Mapper[int](func(n int) int { return n * 2 })
	inc := Mapper[int](func(n int) int { return n + 1 })
	if Compose(inc, double)(3) != 8 {
		t.Error("expected left-to-right application")
	}
}

func TestComposeSkipsPanickingMapper(t *testing.T) {
	bad := Mapper[int](func(n int) int { panic("bad mapper") })
	inc := Mapper[int](func(n int) int { return n + 1 })
	if got := Compose(bad, inc)(3); got != 4 {
		t.Errorf("expected pre-failure value to carry forward, got %d", got)
	}
}

func TestMapperEval(t *testing.T) {
	inc := Mapper[int](func(n int) int { return n + 1 })
	out := inc.Eval(1)
	if !out.IsOk() || out.Value() != 2 {
		t.Errorf("Eval = (%v, %v)", out.Value(), out.IsOk())
	}
}
