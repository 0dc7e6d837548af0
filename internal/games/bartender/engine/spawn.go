package engine

// Spawner constants. The interval starts at SpawnBase ticks and shrinks by
// SpawnStep for every prime needed to cover the number of figures spawned.
const (
	SpawnBase  = 100
	SpawnStep  = 5
	SpawnFloor = 5
)

// SpawnInterval returns the countdown to load after the spawned-th figure.
// Primes are summed from the start of the table until the running total
// reaches spawned; each prime taken costs SpawnStep ticks.
func SpawnInterval(spawned int) int {
	interval := SpawnBase
	sum := 0
	for i := 0; sum < spawned && interval > SpawnFloor && i < len(Primes); i++ {
		interval -= SpawnStep
		sum += Primes[i]
	}
	if interval < SpawnFloor {
		interval = SpawnFloor
	}
	return interval
}
