package conflicts

import (
	"encoding/json"
	"testing"
)

func TestPolicies_CoverEveryConflictType(t *testing.T) {
	for _, ct := range AllConflictTypes {
		p, ok := policies[ct]
		if !ok {
			t.Errorf("no policy for %s", ct)
			continue
		}
		if p.short == "" || p.describe == nil {
			t.Errorf("policy for %s is incomplete", ct)
		}
		if _, ok := conflictIcons[ct]; !ok {
			t.Errorf("no icon for %s", ct)
		}
	}
	if len(policies) != len(AllConflictTypes) {
		t.Errorf("%d policies for %d conflict types", len(policies), len(AllConflictTypes))
	}
}

func TestSeverityOf(t *testing.T) {
	tests := map[ConflictType]Severity{
		TypeOverlap:            SeverityError,
		TypeSameTime:           SeverityError,
		TypeInsufficientTravel: SeverityError,
		TypeTightTransition:    SeverityWarning,
		TypeLongGap:            SeverityInfo,
	}
	for ct, want := range tests {
		if got := SeverityOf(ct); got != want {
			t.Errorf("SeverityOf(%s) = %s, want %s", ct, got, want)
		}
	}
}

func TestSeverity_Ordinal(t *testing.T) {
	if !(SeverityError > SeverityWarning && SeverityWarning > SeverityInfo) {
		t.Fatal("severity ordinals out of order")
	}
	if int(SeverityError) != 2 || int(SeverityWarning) != 1 || int(SeverityInfo) != 0 {
		t.Errorf("ordinals = %d/%d/%d", SeverityError, SeverityWarning, SeverityInfo)
	}
}

func TestSeverity_Text(t *testing.T) {
	raw, err := json.Marshal(map[string]Severity{"s": SeverityWarning})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"s":"warning"}` {
		t.Errorf("json = %s", raw)
	}

	var s Severity
	if err := s.UnmarshalText([]byte("ERROR")); err != nil || s != SeverityError {
		t.Errorf("UnmarshalText(ERROR) = %v, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("unknown severity should fail")
	}
	if _, err := Severity(7).MarshalText(); err == nil {
		t.Error("out of range severity should not marshal")
	}
}

func TestClassify_SuggestedFixOnlyWhenInferable(t *testing.T) {
	a := Activity{ID: "a", Name: "Museum"}
	b := Activity{ID: "b", Name: "Lunch"}
	base := detection{first: a, second: b, span1: Span{540, 600}, span2: Span{570, 660}}

	tests := []struct {
		kind    ConflictType
		gap     int
		req     int
		wantFix bool
	}{
		{kind: TypeOverlap, wantFix: true},
		{kind: TypeSameTime, wantFix: true},
		{kind: TypeInsufficientTravel, gap: 10, req: 30, wantFix: true},
		{kind: TypeTightTransition, gap: 35, req: 30, wantFix: true},
		{kind: TypeLongGap, gap: 200, wantFix: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			d := base
			d.kind, d.gap, d.required, d.buffer, d.mode = tt.kind, tt.gap, tt.req, 15, ModeDrive
			got := classify(d)
			if (got.suggestedFix != "") != tt.wantFix {
				t.Errorf("suggestedFix = %q, wantFix %v", got.suggestedFix, tt.wantFix)
			}
			if got.message == "" || got.shortMessage == "" {
				t.Errorf("classification missing text: %+v", got)
			}
			if got.severity != SeverityOf(tt.kind) {
				t.Errorf("severity = %s", got.severity)
			}
		})
	}
}

func TestClassify_SameTimeZeroLengthFix(t *testing.T) {
	got := Detect([]Activity{act("a1", "09:00", "09:00"), act("a2", "09:00", "09:30")})
	if len(got.Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got.Conflicts))
	}
	want := `Give "A1" and "A2" different start times.`
	if got.Conflicts[0].SuggestedFix != want {
		t.Errorf("fix = %q, want %q", got.Conflicts[0].SuggestedFix, want)
	}
}
