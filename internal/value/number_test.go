package value

import "testing"

func TestParseNumberForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"decimal", "42", "42"},
		{"negative", "-7", "-7"},
		{"hex", "0x2A", "42"},
		{"octal", "0o52", "42"},
		{"binary", "0b101010", "42"},
		{"rational", "1/2", "0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseNumber(c.in).String()
			if got != c.want {
				t.Fatalf("ParseNumber(%q).String() = %s, want %s", c.in, got, c.want)
			}
		})
	}
}

func TestParseNumberMalformedYieldsNaN(t *testing.T) {
	n := ParseNumber("not-a-number")
	if !n.IsNaN() {
		t.Fatalf("ParseNumber(malformed) = %s, want NaN", n.String())
	}
}

func TestNumberArithmetic(t *testing.T) {
	a := NewInt(2)
	b := NewInt(3)
	if got := a.Add(b).String(); got != "5" {
		t.Fatalf("2 + 3 = %s, want 5", got)
	}
	if got := a.Sub(b).String(); got != "-1" {
		t.Fatalf("2 - 3 = %s, want -1", got)
	}
	if got := a.Mul(b).String(); got != "6" {
		t.Fatalf("2 * 3 = %s, want 6", got)
	}
	if got := b.Div(a).String(); got != "1.5" {
		t.Fatalf("3 / 2 = %s, want 1.5", got)
	}
}

func TestNumberDivByZeroIsNaN(t *testing.T) {
	n := NewInt(1).Div(NewInt(0))
	if !n.IsNaN() {
		t.Fatalf("1 / 0 = %s, want NaN", n.String())
	}
}

func TestNumberCompare(t *testing.T) {
	if NewInt(2).Compare(NewInt(3)) >= 0 {
		t.Fatalf("2 compared to 3 should be negative")
	}
	if NewInt(3).Compare(NewInt(3)) != 0 {
		t.Fatalf("3 compared to 3 should be 0")
	}
}

func TestNumberIsTruthyOnlyWhenNonzero(t *testing.T) {
	if NewInt(0).Is() {
		t.Fatalf("0 should be falsy")
	}
	if !NewInt(1).Is() {
		t.Fatalf("1 should be truthy")
	}
}
