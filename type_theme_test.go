package devfolio

import "testing"

func TestParseTheme(t *testing.T) {
	testCases := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "light", want: Light},
		{in: "dark", want: Dark},
		{in: "", wantErr: true},
		{in: "sepia", wantErr: true},
		{in: "Dark", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTheme(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseTheme(%q) succeeded with %q, want an error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTheme(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestThemeColors(t *testing.T) {
	if bg, fg := Dark.Background(), Dark.Foreground(); bg != "#121212" || fg != "#ffffff" {
		t.Errorf("dark colors = %s/%s, want #121212/#ffffff", bg, fg)
	}
	if bg, fg := Light.Background(), Light.Foreground(); bg != "#ffffff" || fg != "#000000" {
		t.Errorf("light colors = %s/%s, want #ffffff/#000000", bg, fg)
	}
}
