package contract

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Type
		wantOK bool
	}{
		{name: "french label", input: "CDI", want: Permanent, wantOK: true},
		{name: "english alias", input: "permanent", want: Permanent, wantOK: true},
		{name: "fixed term", input: "CDD", want: FixedTerm, wantOK: true},
		{name: "fixed term english", input: "fixed-term", want: FixedTerm, wantOK: true},
		{name: "internship", input: "Stage", want: Internship, wantOK: true},
		{name: "apprenticeship", input: "alternance", want: Apprenticeship, wantOK: true},
		{name: "freelance", input: "Freelance", want: Freelance, wantOK: true},
		{name: "whitespace tolerated", input: "  cdi ", want: Permanent, wantOK: true},
		{name: "unknown rejected", input: "interim", wantOK: false},
		{name: "empty rejected", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxDailyHours(t *testing.T) {
	tests := []struct {
		contract Type
		want     float64
	}{
		{Permanent, 8.0},
		{FixedTerm, 7.5},
		{Internship, 6.0},
		{Apprenticeship, 7.0},
		{Freelance, 10.0},
		{Type("Interim"), 8.0},
	}

	for _, tt := range tests {
		if got := MaxDailyHours(tt.contract); got != tt.want {
			t.Errorf("MaxDailyHours(%q) = %v, want %v", tt.contract, got, tt.want)
		}
	}
}

func TestMonthlyThreshold(t *testing.T) {
	tests := []struct {
		contract Type
		want     float64
		wantOK   bool
	}{
		{Permanent, 151.67, true},
		{FixedTerm, 140, true},
		{Internship, 120, true},
		{Apprenticeship, 0, false},
		{Freelance, 0, false},
	}

	for _, tt := range tests {
		got, ok := MonthlyThreshold(tt.contract)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("MonthlyThreshold(%q) = (%v, %v), want (%v, %v)", tt.contract, got, ok, tt.want, tt.wantOK)
		}
	}
}
