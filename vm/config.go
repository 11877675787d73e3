package vm

// Config bounds the traversal state of a Machine.
type Config struct {
	// MaxDepth is the deepest root-to-node path the machine can follow. It
	// sizes the control and priority-address stacks.
	MaxDepth int

	// MaxWordLen is the longest word, in bytes, the machine can assemble. It
	// sizes the prefix stack.
	MaxWordLen int

	// Strict reports a truncated program, instead of end-of-sequence, when
	// the buffer ends while the node on top of the path still announces
	// descendants.
	Strict bool
}

// DefaultConfig returns limits suited to dictionary-sized tries.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   64,
		MaxWordLen: 256,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxDepth <= 0 {
		c.MaxDepth = d.MaxDepth
	}
	if c.MaxWordLen <= 0 {
		c.MaxWordLen = d.MaxWordLen
	}
	return c
}
