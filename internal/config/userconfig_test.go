package config

import (
	"testing"

	"github.com/Gaurav-Gosain/toast"
)

// TestFillMissingToasts applies defaults only to zero-valued fields.
func TestFillMissingToasts(t *testing.T) {
	c := ToastConfig{MaxConcurrent: 3}
	fillMissingToasts(&c)

	if c.MaxConcurrent != 3 {
		t.Errorf("expected explicit max_concurrent to survive, got %d", c.MaxConcurrent)
	}
	if c.Overflow != DefaultOverflow {
		t.Errorf("expected default overflow, got %q", c.Overflow)
	}
	if c.DefaultAnchor != DefaultAnchor {
		t.Errorf("expected default anchor, got %q", c.DefaultAnchor)
	}
	if c.DefaultAnimation != DefaultAnimation {
		t.Errorf("expected default animation, got %q", c.DefaultAnimation)
	}
	if c.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", c.FPS)
	}
}

// TestParseAnimation accepts the three kinds plus the expand alias.
func TestParseAnimation(t *testing.T) {
	cases := map[string]toast.Animation{
		"slide":           toast.Slide,
		"expand":          toast.ExpandCollapse,
		"expand-collapse": toast.ExpandCollapse,
		"Fade":            toast.Fade,
	}
	for name, want := range cases {
		got, err := ParseAnimation(name)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", name, got, err)
		}
	}
	if _, err := ParseAnimation("bounce"); err == nil {
		t.Error("expected error for unknown animation")
	}
}

// TestParseOverflow maps both policies and rejects unknown names.
func TestParseOverflow(t *testing.T) {
	if p, err := ParseOverflow("discard-oldest"); err != nil || p != toast.DiscardOldest {
		t.Errorf("discard-oldest: got %v, %v", p, err)
	}
	if p, err := ParseOverflow("Discard-Newest"); err != nil || p != toast.DiscardNewest {
		t.Errorf("case-insensitive discard-newest: got %v, %v", p, err)
	}
	if _, err := ParseOverflow("drop"); err == nil {
		t.Error("expected error for unknown overflow policy")
	}
}

// TestParseAnchor covers every anchor name and the error path.
func TestParseAnchor(t *testing.T) {
	for name, want := range anchorNames {
		got, err := ParseAnchor(name)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", name, got, err)
		}
	}
	if a, err := ParseAnchor("TOP-LEFT"); err != nil || a != toast.TopLeft {
		t.Errorf("anchor parsing should be case-insensitive, got %v, %v", a, err)
	}
	if _, err := ParseAnchor("upper-left"); err == nil {
		t.Error("expected error for unknown anchor")
	}
}

// TestValidateConfig rejects out-of-range settings.
func TestValidateConfig(t *testing.T) {
	good := DefaultConfig()
	if err := validateConfig(good); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	bad := DefaultConfig()
	bad.Toasts.FPS = MaxFPS + 1
	if err := validateConfig(bad); err == nil {
		t.Error("expected error for fps above the limit")
	}

	bad = DefaultConfig()
	bad.Toasts.MaxConcurrent = 0
	if err := validateConfig(bad); err == nil {
		t.Error("expected error for zero max_concurrent")
	}

	bad = DefaultConfig()
	bad.Toasts.DefaultAnchor = "nowhere"
	if err := validateConfig(bad); err == nil {
		t.Error("expected error for unknown anchor")
	}
}
