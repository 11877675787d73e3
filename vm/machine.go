package vm

import (
	"iter"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/t9vm/errors"
	"github.com/wippyai/t9vm/instr"
	"github.com/wippyai/t9vm/stack"
)

// Machine walks a program depth-first and yields one word per call to Next.
// Not safe for concurrent use; machines may share a read-only program.
type Machine struct {
	err     error
	log     *zap.Logger
	control *stack.Stack[instr.Instr]
	prefix  *stack.Stack[byte]
	prio    *stack.Stack[int]
	program []byte
	cfg     Config
	pc      int
	done    bool
}

// New creates a machine over program with DefaultConfig limits.
func New(program []byte) *Machine {
	return NewWithConfig(program, DefaultConfig())
}

// NewWithConfig creates a machine over program. Zero limits in cfg fall back
// to DefaultConfig.
func NewWithConfig(program []byte, cfg Config) *Machine {
	cfg = cfg.withDefaults()
	return &Machine{
		program: program,
		cfg:     cfg,
		control: stack.NewNamed[instr.Instr]("control", cfg.MaxDepth),
		prefix:  stack.NewNamed[byte]("prefix", cfg.MaxWordLen),
		prio:    stack.NewNamed[int]("priority", cfg.MaxDepth),
		log:     Logger(),
	}
}

// Config returns the effective limits.
func (m *Machine) Config() Config {
	return m.cfg
}

// Reset rewinds the machine to the start of the program and clears any
// recorded error.
func (m *Machine) Reset() {
	m.control.Clear()
	m.prefix.Clear()
	m.prio.Clear()
	m.pc = 0
	m.done = false
	m.err = nil
}

// Next advances to the next word. It returns ok=false with a nil error once
// every word has been produced, and keeps doing so until Reset. After an
// error the machine is stuck on that error until Reset.
func (m *Machine) Next() (word string, ok bool, err error) {
	if m.err != nil {
		return "", false, m.err
	}
	if m.done {
		return "", false, nil
	}

	word, ok, err = m.step()
	switch {
	case err != nil:
		m.err = err
		m.log.Warn("traversal failed",
			zap.Int("offset", m.pc),
			zap.Int("depth", m.control.Len()),
			zap.Error(err))
	case !ok:
		m.done = true
		m.log.Debug("traversal exhausted", zap.Int("offset", m.pc))
	default:
		m.log.Debug("word",
			zap.String("word", word),
			zap.Int("offset", m.pc),
			zap.Int("depth", m.control.Len()))
	}
	return word, ok, err
}

func (m *Machine) step() (string, bool, error) {
	more, err := m.backtrack()
	if err != nil || !more {
		return "", false, err
	}
	return m.descend()
}

// backtrack unwinds the path left behind by the previous word so that the
// cursor's next node can be pushed. It returns false once the path is empty
// after leaving the last sibling at the top level.
func (m *Machine) backtrack() (bool, error) {
	top, ok := m.control.Peek()
	if !ok || top.HasChildren() {
		// first call, or the previous word's children start at the cursor
		return true, nil
	}

	leaf, err := m.popNode()
	if err != nil {
		return false, err
	}
	if !leaf.IsLast() {
		return true, nil
	}

	for {
		top, ok := m.control.Peek()
		if !ok {
			return false, nil
		}
		if !top.IsLast() {
			break
		}
		if _, err := m.popNode(); err != nil {
			return false, err
		}
	}

	// the non-last ancestor; its next sibling sits at the cursor
	if _, err := m.popNode(); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Machine) popNode() (instr.Instr, error) {
	in, ok := m.control.Pop()
	if !ok {
		return 0, errors.Underflow(errors.PhaseTraverse, []string{"control"}, 1, 0)
	}
	if err := m.prefix.DropN(in.Len()); err != nil {
		return in, err
	}
	if in.IsWord() {
		if _, ok := m.prio.Pop(); !ok {
			return in, errors.Underflow(errors.PhaseTraverse, []string{"priority"}, 1, 0)
		}
	}
	m.log.Debug("pop", zap.Stringer("instr", in), zap.Int("depth", m.control.Len()))
	return in, nil
}

// descend pushes nodes from the cursor until one of them ends a word.
func (m *Machine) descend() (string, bool, error) {
	for {
		if m.pc >= len(m.program) {
			if m.cfg.Strict {
				if top, ok := m.control.Peek(); ok && top.HasChildren() {
					return "", false, errors.Truncated(m.pc, "child of "+top.String(), 1, 0)
				}
			}
			return "", false, nil
		}

		at := m.pc
		in := instr.Decode(m.program[at])
		if !in.Valid() {
			return "", false, errors.InvalidOpcode(at, byte(in))
		}
		if err := m.control.Push(in); err != nil {
			return "", false, atOffset(err, at)
		}
		m.pc++

		if in.IsWord() {
			if m.pc >= len(m.program) {
				return "", false, errors.Truncated(at, "priority", 1, 0)
			}
			if err := m.prio.Push(m.pc); err != nil {
				return "", false, atOffset(err, at)
			}
			m.pc++
		}

		n := in.Len()
		if left := len(m.program) - m.pc; n > left {
			return "", false, errors.Truncated(at, "payload", n, left)
		}
		if err := m.prefix.PushN(m.program[m.pc : m.pc+n]); err != nil {
			return "", false, atOffset(err, at)
		}
		m.pc += n

		if in.IsWord() {
			word := m.prefix.All()
			if !utf8.Valid(word) {
				return "", false, errors.InvalidUTF8(errors.PhaseTraverse, at, word)
			}
			return string(word), true, nil
		}
	}
}

func atOffset(err error, off int) error {
	if e, ok := err.(*errors.Error); ok {
		e.Offset = off
	}
	return err
}

// Depth returns the number of nodes on the current path.
func (m *Machine) Depth() int {
	return m.control.Len()
}

// Offset returns the read cursor position in the program.
func (m *Machine) Offset() int {
	return m.pc
}

// Path returns the control bytes from the root to the last word's node.
// The slice is only valid until the next call to Next or Reset.
func (m *Machine) Path() []instr.Instr {
	return m.control.All()
}

// PriorityAddrs returns the program offsets of the priority bytes of every
// word-terminating node on the current path, root first. The last entry
// belongs to the word most recently returned by Next. The slice is only valid
// until the next call to Next or Reset.
func (m *Machine) PriorityAddrs() []int {
	return m.prio.All()
}

// Priority returns the priority byte of the word most recently returned by Next.
func (m *Machine) Priority() (byte, bool) {
	addr, ok := m.prio.Peek()
	if !ok || m.err != nil || m.done {
		return 0, false
	}
	return m.program[addr], true
}

// All yields the remaining words, starting from the machine's current
// position. Iteration stops after the first error.
func (m *Machine) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			word, ok, err := m.Next()
			if err != nil {
				yield("", err)
				return
			}
			if !ok || !yield(word, nil) {
				return
			}
		}
	}
}

// Collect resets the machine and returns every word in program order. On
// error the words produced before it are returned along with it.
func (m *Machine) Collect() ([]string, error) {
	m.Reset()
	var words []string
	for word, err := range m.All() {
		if err != nil {
			return words, err
		}
		words = append(words, word)
	}
	return words, nil
}
