package game

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if v, err := s.Get(BestScoreKey); err != nil || v != 0 {
		t.Fatalf("Expected 0 for an unset key, got %d (%v)", v, err)
	}
	if err := s.Set(BestScoreKey, 1440); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := s.Get(BestScoreKey); v != 1440 {
		t.Errorf("Expected 1440, got %d", v)
	}
}
