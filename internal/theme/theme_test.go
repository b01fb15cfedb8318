package theme

import (
	"errors"
	"testing"
)

func TestBuiltinContainsPurplePair(t *testing.T) {
	themes := Builtin()
	if len(themes) != 2 {
		t.Fatalf("expected 2 builtin themes, got %d", len(themes))
	}
	if _, ok := themes["PurpleTheme"]; !ok {
		t.Fatal("missing PurpleTheme")
	}
	if _, ok := themes["PurpleThemeDark"]; !ok {
		t.Fatal("missing PurpleThemeDark")
	}
}

func TestBuiltinReturnsFreshMap(t *testing.T) {
	first := Builtin()
	delete(first, "PurpleTheme")
	if _, ok := Builtin()["PurpleTheme"]; !ok {
		t.Fatal("mutating a Builtin copy leaked into later calls")
	}
}

func TestBuiltinThemesValidate(t *testing.T) {
	for name, th := range Builtin() {
		if err := th.Validate(); err != nil {
			t.Fatalf("builtin theme %s failed validation: %v", name, err)
		}
	}
}

func TestPurpleVariants(t *testing.T) {
	if Purple.Dark {
		t.Fatal("Purple should be the light variant")
	}
	if !PurpleDark.Dark {
		t.Fatal("PurpleDark should be the dark variant")
	}
	if Purple.Tokens.Background == PurpleDark.Tokens.Background {
		t.Fatal("light and dark variants share a background color")
	}
}

func TestValidateRejectsUnnamed(t *testing.T) {
	th := Purple
	th.Name = ""
	if !errors.Is(th.Validate(), ErrUnnamedTheme) {
		t.Fatal("expected ErrUnnamedTheme")
	}
}

func TestValidateRejectsMissingTokens(t *testing.T) {
	th := Purple
	th.Tokens.Primary = ""
	if !errors.Is(th.Validate(), ErrMissingTokens) {
		t.Fatal("expected ErrMissingTokens")
	}
}
