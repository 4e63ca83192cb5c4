// SPDX-License-Identifier: MIT
// Package: CryptaPath/format
//
// serialize.go — SoC to exchange-format text.

package format

import (
	"strconv"
	"strings"

	"github.com/Simula-UiB/CryptaPath/soc"
)

// Serialize renders s in spec.md §6.2's exchange format.
func Serialize(s *soc.SoC) string {
	var sb strings.Builder
	ids := s.BDDIDs()
	sb.WriteString(strconv.Itoa(len(s.Variables())))
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(len(ids)))
	sb.WriteByte('\n')
	for _, id := range ids {
		b, _ := s.BDD(id)
		writeBDD(&sb, uint64(id), b)
	}
	return sb.String()
}

// writeBDD appends one "<bdd_id> <num_levels>\n<levels line>\n---\n" chunk.
func writeBDD(sb *strings.Builder, id uint64, b *soc.BDD) {
	levels := b.Levels()

	assigned := map[soc.NodeID]uint64{}
	var next uint64 = 1
	for _, lvl := range levels {
		for _, n := range lvl.Nodes {
			assigned[n] = next
			next++
		}
	}
	terminalID := next

	sb.WriteString(strconv.FormatUint(id, 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(levels) + 1))
	sb.WriteByte('\n')

	for _, lvl := range levels {
		writeLevel(sb, lvl, b, assigned, terminalID)
	}
	// Synthetic terminal level: empty lhs, one node, both targets "0".
	sb.WriteByte(':')
	sb.WriteByte('(')
	sb.WriteString(strconv.FormatUint(terminalID, 10))
	sb.WriteString(";0,0)")
	sb.WriteByte('|')
	sb.WriteByte('\n')
	sb.WriteString("---\n")
}

func writeLevel(sb *strings.Builder, lvl soc.Level, b *soc.BDD, assigned map[soc.NodeID]uint64, terminalID uint64) {
	for i, v := range lvl.LHS {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte(':')
	for i, n := range lvl.Nodes {
		if i > 0 {
			sb.WriteByte(',')
		}
		zero, one := b.Children(n)
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatUint(assigned[n], 10))
		sb.WriteByte(';')
		sb.WriteString(targetString(zero, b, assigned, terminalID))
		sb.WriteByte(',')
		sb.WriteString(targetString(one, b, assigned, terminalID))
		sb.WriteByte(')')
	}
	sb.WriteByte('|')
}

// targetString resolves a child edge to the textual target spec.md §6.2
// expects: "0" for the reserved no-edge marker, the terminal node's
// assigned id for Sink, or the child's own assigned id otherwise.
func targetString(id soc.NodeID, b *soc.BDD, assigned map[soc.NodeID]uint64, terminalID uint64) string {
	switch {
	case b.IsDeadEnd(id):
		return "0"
	case id == soc.Sink:
		return strconv.FormatUint(terminalID, 10)
	default:
		return strconv.FormatUint(assigned[id], 10)
	}
}
