package terms

import "testing"

func TestLocalSizeIndexLevelRoundTrip(t *testing.T) {
	size := LocalSize(5)
	for level := LocalLevel(0); level < LocalLevel(size); level++ {
		index, ok := size.Index(level)
		if !ok {
			t.Fatalf("Index(%d) under size %d: expected ok", level, size)
		}
		gotLevel, ok := size.Level(index)
		if !ok || gotLevel != level {
			t.Errorf("Level(Index(%d)) = %d, %v; want %d, true", level, gotLevel, ok, level)
		}
	}
}

func TestLocalSizeIndexEscaped(t *testing.T) {
	size := LocalSize(2)
	if _, ok := size.Index(2); ok {
		t.Errorf("Index(2) under size 2: expected escaped (not ok)")
	}
	if _, ok := size.Index(100); ok {
		t.Errorf("Index(100) under size 2: expected escaped (not ok)")
	}
}

func TestLocalSizeNextLevelAndIncrement(t *testing.T) {
	var size LocalSize
	for i := 0; i < 3; i++ {
		level := size.NextLevel()
		if uint32(level) != uint32(i) {
			t.Errorf("NextLevel() at size %d = %d, want %d", size, level, i)
		}
		size = size.Increment()
	}
}

func TestUniverseLevelAddOverflow(t *testing.T) {
	_, ok := UniverseLevel(1<<32 - 1).Add(1)
	if ok {
		t.Errorf("expected overflow to be detected")
	}
	level, ok := UniverseLevel(3).Add(2)
	if !ok || level != 5 {
		t.Errorf("3+2 = %d, %v; want 5, true", level, ok)
	}
}

func TestUniverseOffsetAddComposition(t *testing.T) {
	// Lift(Lift(t, a), b) == Lift(t, a+b) (spec invariant 3).
	a, b := UniverseOffset(2), UniverseOffset(3)
	composed, ok := a.Add(b)
	if !ok || composed != 5 {
		t.Errorf("2+3 = %d, %v; want 5, true", composed, ok)
	}
}
