package asm

import (
	"strconv"
	"strings"

	"github.com/wippyai/t9vm/errors"
	"github.com/wippyai/t9vm/instr"
)

// Parse assembles a program from a text listing with one node per line:
//
//	<op>[:<prio>] [payload]
//
// op is a mnemonic letter s..z, prio a decimal priority for word nodes and
// payload either bare text or a Go quoted string. Blank lines and lines
// starting with '#' are skipped.
func Parse(src string) ([]byte, error) {
	b := NewBuilder()
	for n, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		op, prio, payload, err := parseLine(line)
		if err != nil {
			return nil, errors.New(errors.PhaseAssemble, errors.KindInvalidInput).
				Path("line", strconv.Itoa(n+1)).
				Cause(err).
				Detail("%q", line).
				Build()
		}
		if err := b.Node(op, prio, payload).Err(); err != nil {
			return nil, errors.New(errors.PhaseAssemble, errors.KindOverflow).
				Path("line", strconv.Itoa(n+1)).
				Cause(err).
				Detail("payload is %d bytes, max %d", len(payload), instr.MaxLen).
				Build()
		}
	}
	return b.Bytes()
}

func parseLine(line string) (instr.Opcode, byte, string, error) {
	head, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		head, rest = line[:i], strings.TrimSpace(line[i:])
	}

	mnemonic, prioStr, hasPrio := strings.Cut(head, ":")
	op, ok := instr.ParseOpcode(mnemonic)
	if !ok {
		return 0, 0, "", errors.InvalidInput(errors.PhaseAssemble, "unknown mnemonic "+strconv.Quote(mnemonic))
	}

	var prio byte
	if hasPrio {
		if !op.Facets().Word {
			return 0, 0, "", errors.InvalidInput(errors.PhaseAssemble, "priority on non-word node "+op.String())
		}
		v, err := strconv.ParseUint(prioStr, 10, 8)
		if err != nil {
			return 0, 0, "", errors.Wrap(errors.PhaseAssemble, errors.KindInvalidInput, err, "priority")
		}
		prio = byte(v)
	}

	payload := rest
	if strings.HasPrefix(rest, `"`) {
		s, err := strconv.Unquote(rest)
		if err != nil {
			return 0, 0, "", errors.Wrap(errors.PhaseAssemble, errors.KindInvalidInput, err, "payload")
		}
		payload = s
	}
	return op, prio, payload, nil
}

// Format renders lines as a listing that Parse accepts.
func Format(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Instr.Opcode().String())
		if l.Instr.IsWord() {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(int(l.Priority)))
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(string(l.Payload)))
		sb.WriteByte('\n')
	}
	return sb.String()
}
