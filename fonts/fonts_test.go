package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Bold, Title} {
		if name.Get() == nil {
			t.Errorf("font %s not loaded", name)
		}
	}
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error")
	}
}
