package game

// Particle is a short-lived visual spark.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Life      float64
	Age       float64
	Hue       float64
	Size      float64
	Alpha     float64
	PoolIndex int // Index in pool for swap-and-pop
}

// ParticlePool manages reusable particle objects.
type ParticlePool struct {
	Pool        []*Particle
	ActiveCount int
	MaxSize     int
}

// NewParticlePool creates a new particle pool with pre-allocated objects.
func NewParticlePool(maxSize int) *ParticlePool {
	pool := &ParticlePool{
		Pool:    make([]*Particle, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Particle{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available particle from the pool, or nil when it is full.
// The returned particle is zeroed apart from its pool index.
func (p *ParticlePool) Acquire() *Particle {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	part := p.Pool[p.ActiveCount]
	*part = Particle{PoolIndex: p.ActiveCount}
	p.ActiveCount++
	return part
}

// Release returns a particle to the pool using swap-and-pop.
func (p *ParticlePool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool, marking all objects as inactive.
func (p *ParticlePool) Clear() {
	p.ActiveCount = 0
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int {
	return p.ActiveCount
}

// ForEach iterates over active particles in pool order.
func (p *ParticlePool) ForEach(fn func(*Particle)) {
	for i := 0; i < p.ActiveCount; i++ {
		fn(p.Pool[i])
	}
}

// ForEachReverse iterates over active objects in reverse order. fn may
// release the particle it is given.
func (p *ParticlePool) ForEachReverse(fn func(*Particle, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}
