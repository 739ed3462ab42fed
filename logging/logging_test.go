package logging

import "testing"

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log, err := New(debug)
		if err != nil {
			t.Fatalf("New(%v): %v", debug, err)
		}
		if log.SugaredLogger == nil {
			t.Fatalf("New(%v): nil sugared logger", debug)
		}
		log.Sync()
	}
}

func TestNopIsSafe(t *testing.T) {
	log := Nop()
	log.Debug("d", "k", 1)
	log.Info("i")
	log.Warn("w", "k", "v")
	log.Error("e")
	log.With("run", "test").Info("tagged")
	log.Sync()
}
