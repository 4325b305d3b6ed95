package jsni

import (
	"testing"

	"github.com/dhamidi/jex/java"
)

func TestUnitSourceCached(t *testing.T) {
	calls := 0
	u := NewUnit("W.java", &java.File{Path: "W.java"}, func() (string, error) {
		calls++
		return "class W {}", nil
	})
	for i := 0; i < 3; i++ {
		src, err := u.Source()
		if err != nil {
			t.Fatalf("Source() error = %v", err)
		}
		if src != "class W {}" {
			t.Fatalf("Source() = %q", src)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	u.discardSource()
	if _, err := u.Source(); err != nil {
		t.Fatalf("Source() after discard error = %v", err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times after discard, want 2", calls)
	}
}

func TestUnitSetMethodsOnce(t *testing.T) {
	u := NewUnit("W.java", &java.File{Path: "W.java"}, nil)
	if u.Collected() {
		t.Error("Collected() = true before SetMethods")
	}
	u.SetMethods(nil)
	if !u.Collected() {
		t.Error("Collected() = false after SetMethods")
	}
	defer func() {
		if recover() == nil {
			t.Error("second SetMethods did not panic")
		}
	}()
	u.SetMethods(nil)
}
