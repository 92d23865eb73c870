package fraction

import (
	"errors"
	"testing"
)

func TestParse_Strict(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pair
		wantErr bool
	}{
		{"canonical", "1/4 + 2/3", Pair{New(1, 4), New(2, 3)}, false},
		{"no spaces", "1/4+2/3", Pair{New(1, 4), New(2, 3)}, false},
		{"surrounding whitespace", "  3/4 +  3/4\t", Pair{New(3, 4), New(3, 4)}, false},
		{"whitespace around slash", "1 / 4 + 2 / 3", Pair{New(1, 4), New(2, 3)}, false},
		{"zero denominator parses", "1/0 + 1/2", Pair{New(1, 0), New(1, 2)}, false},
		{"improper parses", "5/4 + 1/2", Pair{New(5, 4), New(1, 2)}, false},
		{"leading zeros", "01/04 + 2/3", Pair{New(1, 4), New(2, 3)}, false},
		{"word operator", "1/4 plus 2/3", Pair{}, true},
		{"missing second denominator", "1/4 + 2", Pair{}, true},
		{"three addends", "1/4 + 1/4 + 1/4", Pair{}, true},
		{"negative", "-1/4 + 2/3", Pair{}, true},
		{"mixed number", "1 1/4 + 2/3", Pair{}, true},
		{"decimal", "1.5/4 + 2/3", Pair{}, true},
		{"empty", "", Pair{}, true},
		{"only whitespace", "   ", Pair{}, true},
		{"trailing junk", "1/4 + 2/3x", Pair{}, true},
		{"subtraction", "1/4 - 2/3", Pair{}, true},
		{"overflowing integer", "99999999999999999999999/4 + 1/2", Pair{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, ParseStrict)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("Parse(%q) error = %v, want ErrParse", tt.input, err)
				}
				if got != (Pair{}) {
					t.Errorf("Parse(%q) returned partial result %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Lenient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pair
		wantErr bool
	}{
		{"canonical", "1/4 + 2/3", Pair{New(1, 4), New(2, 3)}, false},
		{"bare second addend", "1/4 + 1", Pair{New(1, 4), New(1, 1)}, false},
		{"bare second addend zero", "1/4+0", Pair{New(1, 4), New(0, 1)}, false},
		{"bare first addend still fails", "1 + 1/4", Pair{}, true},
		{"dangling slash", "1/4 + 1/", Pair{}, true},
		{"word operator", "1/4 plus 2/3", Pair{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, ParseLenient)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("Parse(%q) error = %v, want ErrParse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_DefaultPolicyIsStrict(t *testing.T) {
	if _, err := Parse("1/4 + 1", ""); !errors.Is(err, ErrParse) {
		t.Errorf("Parse with empty policy error = %v, want ErrParse", err)
	}
}

func TestParse_UnknownPolicy(t *testing.T) {
	_, err := Parse("1/4 + 1/2", ParsePolicy("loose"))
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if errors.Is(err, ErrParse) {
		t.Error("unknown policy should not be reported as a malformed expression")
	}
}

func TestParsePolicy_Valid(t *testing.T) {
	for _, p := range ParsePolicies() {
		if !p.Valid() {
			t.Errorf("%q.Valid() = false", p)
		}
	}
	if ParsePolicy("other").Valid() {
		t.Error(`"other".Valid() = true`)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("1/4 + 2/3")
	f.Add("1/4 plus 2/3")
	f.Add(" 3 / 4+3/4 ")
	f.Add("1/4 + 1")

	f.Fuzz(func(t *testing.T, input string) {
		for _, policy := range ParsePolicies() {
			p, err := Parse(input, policy)
			if err != nil {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("Parse(%q, %s) error = %v, want ErrParse", input, policy, err)
				}
				if p != (Pair{}) {
					t.Fatalf("Parse(%q, %s) returned partial result %v", input, policy, p)
				}
				continue
			}
			if p.First.Numerator < 0 || p.First.Denominator < 0 ||
				p.Second.Numerator < 0 || p.Second.Denominator < 0 {
				t.Fatalf("Parse(%q, %s) = %v has negative parts", input, policy, p)
			}
		}
	})
}
