package registry

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/loop"
)

func TestRegisterAndLookup(t *testing.T) {
	var built loop.EngineParams
	Register("test-engine", "Test", func(p loop.EngineParams) loop.Engine {
		built = p
		return nil
	})

	if !Exists("test-engine") {
		t.Fatal("registered engine should exist")
	}

	f, err := Factory("test-engine")
	if err != nil {
		t.Fatalf("Factory() failed: %v", err)
	}
	f(loop.EngineParams{Size: 7})
	if built.Size != 7 {
		t.Errorf("factory received size %d, expected 7", built.Size)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-engine" && info.Title == "Test" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered engine")
	}
}

func TestFactoryUnknown(t *testing.T) {
	if _, err := Factory("no-such-engine"); err == nil {
		t.Error("expected an error for an unknown engine")
	}
	if Exists("no-such-engine") {
		t.Error("unknown engine should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-engine", "Dup", func(loop.EngineParams) loop.Engine { return nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("dup-engine", "Dup", func(loop.EngineParams) loop.Engine { return nil })
}
