package kdf

// Cost is the work factor of a password-based scheme. PBKDF2 reads
// Iterations; Argon2id reads Time, MemoryKiB and Threads.
type Cost struct {
	Iterations int
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
}

const (
	// DefaultPBKDF2SHA256Iterations follows the OWASP recommendation for
	// PBKDF2-HMAC-SHA256.
	DefaultPBKDF2SHA256Iterations = 600_000
	// DefaultPBKDF2SHA512Iterations follows the OWASP recommendation for
	// PBKDF2-HMAC-SHA512.
	DefaultPBKDF2SHA512Iterations = 210_000

	// DefaultArgon2Time, DefaultArgon2MemoryKiB and DefaultArgon2Threads are
	// the second recommended Argon2id option of RFC 9106.
	DefaultArgon2Time      = 3
	DefaultArgon2MemoryKiB = 64 * 1024
	DefaultArgon2Threads   = 4
)

// Option configures the cost of a password-based scheme.
type Option func(*Cost)

// WithIterations sets the PBKDF2 iteration count. No minimum is enforced;
// choose a count suited to the deployment.
func WithIterations(n int) Option {
	return func(c *Cost) {
		c.Iterations = n
	}
}

// WithArgon2Time sets the number of Argon2 passes.
func WithArgon2Time(t uint32) Option {
	return func(c *Cost) {
		c.Time = t
	}
}

// WithArgon2Memory sets the Argon2 memory size in KiB.
func WithArgon2Memory(kib uint32) Option {
	return func(c *Cost) {
		c.MemoryKiB = kib
	}
}

// WithArgon2Threads sets the Argon2 degree of parallelism.
func WithArgon2Threads(p uint8) Option {
	return func(c *Cost) {
		c.Threads = p
	}
}

// WithCost replaces the whole cost.
func WithCost(cost Cost) Option {
	return func(c *Cost) {
		*c = cost
	}
}
