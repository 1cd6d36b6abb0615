package skipset

type config struct {
	maxHeight int
	capacity  int
	seed      uint64
	monitor   *Monitor
}

func defaultConfig() config {
	return config{maxHeight: DefaultMaxHeight}
}

// Option configures a container at construction.
type Option func(*config)

// WithMaxHeight bounds the tower heights the container draws. Values are
// clamped to [1, HeightCap]. 2^h should exceed the largest element count
// the container is expected to hold.
func WithMaxHeight(h int) Option {
	return func(c *config) {
		if h < 1 {
			h = 1
		}
		if h > HeightCap {
			h = HeightCap
		}
		c.maxHeight = h
	}
}

// WithCapacity pre-sizes the arena for n elements, avoiding growth during
// the first n inserts.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithSeed fixes the height generator's seed, making the drawn tower
// heights reproducible. A zero seed keeps the default behavior of seeding
// from the process-wide random source.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithMonitor attaches operation metrics to the container. See Monitor.
func WithMonitor(m *Monitor) Option {
	return func(c *config) {
		c.monitor = m
	}
}
