package engine

import (
	"math/rand"
	"testing"
)

func TestNewEnemyScalesWithWordLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		word   string
		speed  float64
		radius float64
	}{
		{"storm", 0.4, 0.25},
		{"alphabetic", 0.2, 0.5},
	}
	for _, tt := range tests {
		e := NewEnemy(1, tt.word, rng)
		if e.speed != tt.speed {
			t.Errorf("%q: speed = %v, want %v", tt.word, e.speed, tt.speed)
		}
		if e.Radius() != tt.radius {
			t.Errorf("%q: radius = %v, want %v", tt.word, e.Radius(), tt.radius)
		}
		if e.Position().X != enemySpawnX {
			t.Errorf("%q: spawned at x=%v, want %v", tt.word, e.Position().X, enemySpawnX)
		}
		if y := e.Position().Y; y < -4 || y >= 4 {
			t.Errorf("%q: spawned at y=%v, want [-4,4)", tt.word, y)
		}
	}
}

func TestEnemyDamagePopsLetterAndRecoils(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	e := NewEnemy(1, "storm", rng)

	e.Damage(rng)

	if got := e.Word(); got != "torm" {
		t.Errorf("word after damage = %q, want %q", got, "torm")
	}
	if !e.Alive() {
		t.Error("enemy died with letters remaining")
	}
	if e.velocity.X <= 0 {
		t.Errorf("recoil should push away from the origin, velocity.X = %v", e.velocity.X)
	}
	if !e.Flashing() {
		t.Error("hit flash not armed")
	}
	if len(e.Debris()) != 5 {
		t.Errorf("damage spawned %d particles, want 5", len(e.Debris()))
	}
}

func TestEnemyDestroyedOnLastLetter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEnemy(1, "ab", rng)

	e.Damage(rng)
	e.Damage(rng)

	if e.Alive() {
		t.Fatal("enemy alive after word emptied")
	}
	if e.FirstLetter() != 0 {
		t.Errorf("FirstLetter on empty word = %q, want 0", e.FirstLetter())
	}
	if e.Removable() {
		t.Error("removable while destruction debris still animating")
	}

	for i := 0; i < 200; i++ {
		e.Update(0.1)
	}
	if !e.Removable() {
		t.Error("not removable after debris decayed")
	}
}

func TestEnemyMovesTowardOriginAtClampedSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	e := NewEnemy(1, "storm", rng)
	startX := e.Position().X

	for i := 0; i < 100; i++ {
		e.Update(0.1)
	}

	if e.Position().X >= startX {
		t.Errorf("enemy did not close in: x %v -> %v", startX, e.Position().X)
	}
	if sp := e.velocity.Len(); sp > e.speed+1e-9 {
		t.Errorf("speed %v exceeds cap %v", sp, e.speed)
	}
}

func TestEnemyHitFlashExpires(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	e := NewEnemy(1, "storm", rng)
	e.Damage(rng)

	e.Update(0.3)
	if !e.Flashing() {
		t.Error("flash ended early")
	}
	e.Update(0.3)
	if e.Flashing() {
		t.Error("flash did not expire")
	}
}
