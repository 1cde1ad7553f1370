package locale

import "testing"

var testSupported = []Localize{
	{Tag: Tag{Language: "en", Region: "US"}, DisplayName: "English (US)"},
	{Tag: Tag{Language: "es", Region: "ES"}, DisplayName: "Español (España)"},
	{Tag: Tag{Language: "es", Region: "MX"}, DisplayName: "Español (México)"},
	{Tag: Tag{Language: "fr", Region: "FR"}, DisplayName: "Français"},
}

func TestResolveDetailed(t *testing.T) {
	tests := []struct {
		name      string
		requested Tag
		want      Tag
		wantMatch Match
	}{
		{
			name:      "zero tag returns declared default",
			requested: Tag{},
			want:      Tag{Language: "en", Region: "US"},
			wantMatch: MatchDefault,
		},
		{
			name:      "exact match wins over language match",
			requested: Tag{Language: "es", Region: "MX"},
			want:      Tag{Language: "es", Region: "MX"},
			wantMatch: MatchExact,
		},
		{
			name:      "language-only match takes first supported entry",
			requested: Tag{Language: "es", Region: "AR"},
			want:      Tag{Language: "es", Region: "ES"},
			wantMatch: MatchLanguage,
		},
		{
			name:      "region without language match falls back",
			requested: Tag{Language: "de", Region: "DE"},
			want:      Tag{Language: "en", Region: "US"},
			wantMatch: MatchDefault,
		},
		{
			name:      "language without region matches by language",
			requested: Tag{Language: "fr"},
			want:      Tag{Language: "fr", Region: "FR"},
			wantMatch: MatchLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, match := ResolveDetailed(tt.requested, testSupported)
			if got != tt.want {
				t.Errorf("ResolveDetailed(%v) = %v, want %v", tt.requested, got, tt.want)
			}
			if match != tt.wantMatch {
				t.Errorf("ResolveDetailed(%v) match = %v, want %v", tt.requested, match, tt.wantMatch)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	requested := Tag{Language: "es", Region: "AR"}
	first := Resolve(requested, testSupported)
	for i := 0; i < 10; i++ {
		if got := Resolve(requested, testSupported); got != first {
			t.Fatalf("Resolve returned %v after returning %v", got, first)
		}
	}
}

func TestResolvePanicsOnEmptySupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty supported set")
		}
	}()
	Resolve(Tag{Language: "en"}, nil)
}

func TestMatchString(t *testing.T) {
	if MatchExact.String() != "exact" || MatchLanguage.String() != "language" || MatchDefault.String() != "default" {
		t.Fatalf("unexpected Match string values: %v %v %v", MatchExact, MatchLanguage, MatchDefault)
	}
}
