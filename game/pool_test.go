package game

import "testing"

func TestParticlePool_AcquireUntilFull(t *testing.T) {
	pool := NewParticlePool(3)

	for i := 0; i < 3; i++ {
		p := pool.Acquire()
		if p == nil {
			t.Fatalf("Expected particle %d", i)
		}
		if p.PoolIndex != i {
			t.Errorf("Expected pool index %d, got %d", i, p.PoolIndex)
		}
	}
	if pool.Acquire() != nil {
		t.Error("Expected nil from a full pool")
	}
	if pool.Len() != 3 {
		t.Errorf("Expected 3 active, got %d", pool.Len())
	}
}

func TestParticlePool_ReleaseSwapsLast(t *testing.T) {
	pool := NewParticlePool(4)
	a := pool.Acquire()
	pool.Acquire()
	c := pool.Acquire()
	a.Hue = 1
	c.Hue = 3

	pool.Release(0)

	if pool.Len() != 2 {
		t.Fatalf("Expected 2 active, got %d", pool.Len())
	}
	if pool.Pool[0] != c || c.PoolIndex != 0 {
		t.Errorf("Expected last particle moved into slot 0, got hue %f index %d", pool.Pool[0].Hue, c.PoolIndex)
	}
}

func TestParticlePool_ReleaseOutOfRange(t *testing.T) {
	pool := NewParticlePool(4)
	pool.Acquire()

	pool.Release(-1)
	pool.Release(1)
	pool.Release(10)

	if pool.Len() != 1 {
		t.Errorf("Expected out-of-range releases ignored, got %d active", pool.Len())
	}
}

func TestParticlePool_AcquireZeroesReused(t *testing.T) {
	pool := NewParticlePool(1)
	p := pool.Acquire()
	p.Life, p.Age, p.Alpha = 1, 0.5, 0.3
	pool.Release(0)

	p = pool.Acquire()

	if *p != (Particle{}) {
		t.Errorf("Expected a zeroed particle, got %+v", *p)
	}
}

func TestParticlePool_ClearAndIterate(t *testing.T) {
	pool := NewParticlePool(8)
	for i := 0; i < 5; i++ {
		pool.Acquire().Hue = float64(i)
	}

	var forward []float64
	pool.ForEach(func(p *Particle) { forward = append(forward, p.Hue) })
	var reverse []int
	pool.ForEachReverse(func(p *Particle, i int) { reverse = append(reverse, i) })

	if len(forward) != 5 || forward[0] != 0 || forward[4] != 4 {
		t.Errorf("Unexpected forward order %v", forward)
	}
	if len(reverse) != 5 || reverse[0] != 4 || reverse[4] != 0 {
		t.Errorf("Unexpected reverse order %v", reverse)
	}

	pool.Clear()
	if pool.Len() != 0 {
		t.Errorf("Expected empty pool after Clear, got %d", pool.Len())
	}
}

func TestParticlePool_ReleaseDuringReverseWalk(t *testing.T) {
	pool := NewParticlePool(8)
	for i := 0; i < 6; i++ {
		pool.Acquire().Hue = float64(i)
	}

	pool.ForEachReverse(func(p *Particle, i int) {
		if int(p.Hue)%2 == 0 {
			pool.Release(i)
		}
	})

	if pool.Len() != 3 {
		t.Fatalf("Expected 3 survivors, got %d", pool.Len())
	}
	pool.ForEach(func(p *Particle) {
		if int(p.Hue)%2 == 0 {
			t.Errorf("Particle with hue %f should have been released", p.Hue)
		}
	})
}
