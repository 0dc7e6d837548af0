package engine_test

import (
	"testing"

	"github.com/vovakirdan/railroad-bartender/internal/games/bartender/engine"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		spawned int
		want    int
	}{
		{0, 100},
		{1, 95},
		{2, 95},
		{3, 90},
		{5, 90},
		{6, 85},
		{10, 85},
		{11, 80},
		{17, 80},
		{18, 75},
	}

	for _, tt := range tests {
		if got := engine.SpawnInterval(tt.spawned); got != tt.want {
			t.Errorf("SpawnInterval(%d) = %d, want %d", tt.spawned, got, tt.want)
		}
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	for _, n := range []int{1000, 100000, 1 << 40} {
		if got := engine.SpawnInterval(n); got != engine.SpawnFloor {
			t.Errorf("SpawnInterval(%d) = %d, want floor %d", n, got, engine.SpawnFloor)
		}
	}
}

func TestSpawnIntervalNonIncreasing(t *testing.T) {
	prev := engine.SpawnInterval(0)
	for n := 1; n < 2000; n++ {
		got := engine.SpawnInterval(n)
		if got > prev {
			t.Fatalf("interval grew from %d to %d at %d", prev, got, n)
		}
		if got < engine.SpawnFloor {
			t.Fatalf("interval %d below floor at %d", got, n)
		}
		prev = got
	}
}
