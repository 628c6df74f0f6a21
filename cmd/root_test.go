package cmd

import (
	"strings"
	"testing"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
)

func TestFirstNonFlagArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "skips leading flags",
			args: []string{"--flag", "unknown-cmd"},
			want: "unknown-cmd",
		},
		{
			name: "all flags",
			args: []string{"-h", "--help"},
			want: "",
		},
		{
			name: "finds command after help",
			args: []string{"--help", "users"},
			want: "users",
		},
		{
			name: "no args",
			args: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonFlagArg(tt.args); got != tt.want {
				t.Errorf("firstNonFlagArg(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dmo", "demo"},
		{"inspct", "inspect"},
		{"", ""},
		{"zzzz", ""},
	}
	for _, tt := range tests {
		if got := suggest(tt.in); got != tt.want {
			t.Errorf("suggest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInspectTree(t *testing.T) {
	out, err := inspectTree(config.Default(), "settings", 0)
	if err != nil {
		t.Fatalf("inspectTree: %v", err)
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], `window "Settings"`) {
		t.Errorf("first line = %q", lines[0])
	}
	for _, want := range []string{`textfield #10 @`, `checkbox #11 "Sound (checked)"`, `radio #13 "Auto (unchecked)"`, `grid`, `#0 "OK"`} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}

	if _, err := inspectTree(config.Default(), "nope", 0); err == nil {
		t.Error("expected error for unknown window")
	}
}

func TestInspectDepth(t *testing.T) {
	out, err := inspectTree(config.Default(), "settings", 1)
	if err != nil {
		t.Fatalf("inspectTree: %v", err)
	}
	if strings.Contains(out, "Sound") {
		t.Errorf("depth 1 shows nested rows:\n%s", out)
	}
}

func TestRenderAboutPlain(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("") })
	out, err := renderAbout(false)
	if err != nil {
		t.Fatalf("renderAbout: %v", err)
	}
	if !strings.HasPrefix(out, "# RWGui") || !strings.Contains(out, "Version 1.2.3") {
		t.Errorf("about = %q", out)
	}
}

func TestNormalizeFlag(t *testing.T) {
	if got := normalizeFlag(nil, "max_depth"); got != "max-depth" {
		t.Errorf("normalizeFlag = %q", got)
	}
}
