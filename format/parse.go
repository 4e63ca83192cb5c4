// SPDX-License-Identifier: MIT
// Package: CryptaPath/format
//
// parse.go — exchange-format text to a freshly built SoC.

package format

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/Simula-UiB/CryptaPath/gf2"
	"github.com/Simula-UiB/CryptaPath/soc"
)

// rawNode is one "(id;zero,one)" descriptor before its id and targets
// have been resolved against the rest of the chunk.
type rawNode struct {
	id, zero, one uint64
}

// rawLevel is one "<lhs>:<rhs>" segment before its lhs has been turned
// into a gf2.LC.
type rawLevel struct {
	vars  []uint64
	nodes []rawNode
}

// Parse builds an SoC from spec.md §6.2 exchange-format text. Variable
// and BDD identity are whatever the text declares for variables (BDD ids
// themselves are not preserved — soc.AppendBDD assigns its own, per
// spec.md §8 E5's "up to node/id renumbering").
func Parse(text string) (*soc.SoC, error) {
	lines := splitLines(text)
	cursor := 0

	numVars, err := nextInt(lines, &cursor, "num_unique_vars")
	if err != nil {
		return nil, err
	}
	numBDDs, err := nextInt(lines, &cursor, "num_bdds")
	if err != nil {
		return nil, err
	}

	s := soc.New()
	for i := 0; i < numBDDs; i++ {
		if err := parseOneBDD(s, lines, &cursor); err != nil {
			return nil, err
		}
	}

	if got := len(s.Variables()); got != numVars {
		return nil, formatErrorf("Parse", ErrMalformedInput)
	}
	return s, nil
}

func splitLines(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

func nextInt(lines []string, cursor *int, what string) (int, error) {
	if *cursor >= len(lines) {
		return 0, formatErrorf("Parse:"+what, ErrMalformedInput)
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[*cursor]))
	*cursor++
	if err != nil || n < 0 {
		return 0, formatErrorf("Parse:"+what, ErrMalformedInput)
	}
	return n, nil
}

func parseOneBDD(s *soc.SoC, lines []string, cursor *int) error {
	if *cursor >= len(lines) {
		return formatErrorf("Parse:header", ErrMalformedInput)
	}
	header := strings.Fields(lines[*cursor])
	*cursor++
	if len(header) != 2 {
		return formatErrorf("Parse:header", ErrMalformedInput)
	}
	if _, err := strconv.ParseUint(header[0], 10, 64); err != nil {
		return formatErrorf("Parse:header", ErrMalformedInput)
	}
	numLevels, err := strconv.Atoi(header[1])
	if err != nil || numLevels < 1 {
		return formatErrorf("Parse:header", ErrMalformedInput)
	}

	if *cursor >= len(lines) {
		return formatErrorf("Parse:levels", ErrMalformedInput)
	}
	levelsLine := lines[*cursor]
	*cursor++

	rawLevels, err := parseLevelsLine(levelsLine, numLevels)
	if err != nil {
		return err
	}

	if *cursor >= len(lines) || lines[*cursor] != "---" {
		return formatErrorf("Parse:terminator", ErrMalformedInput)
	}
	*cursor++

	levelSpecs, err := resolveBDD(rawLevels)
	if err != nil {
		return err
	}

	b, err := soc.NewBDD(levelSpecs)
	if err != nil {
		return err
	}
	if _, err := s.AppendBDD(b); err != nil {
		return err
	}
	return nil
}

// parseLevelsLine splits "<lhs>:<rhs>|<lhs>:<rhs>|…|<lhs>:<rhs>|" into
// numLevels rawLevel values, requiring the trailing "|" the grammar
// always emits.
func parseLevelsLine(line string, numLevels int) ([]rawLevel, error) {
	if !strings.HasSuffix(line, "|") {
		return nil, formatErrorf("Parse:levels", ErrMalformedInput)
	}
	chunks := strings.Split(line[:len(line)-1], "|")
	if len(chunks) != numLevels {
		return nil, formatErrorf("Parse:levels", ErrMalformedInput)
	}

	out := make([]rawLevel, numLevels)
	for i, chunk := range chunks {
		lvl, err := parseLevelChunk(chunk)
		if err != nil {
			return nil, err
		}
		out[i] = lvl
	}
	return out, nil
}

func parseLevelChunk(chunk string) (rawLevel, error) {
	parts := strings.SplitN(chunk, ":", 2)
	if len(parts) != 2 {
		return rawLevel{}, formatErrorf("Parse:level", ErrMalformedInput)
	}
	lhsStr, rhsStr := parts[0], parts[1]

	var lvl rawLevel
	if lhsStr != "" {
		for _, tok := range strings.Split(lhsStr, "+") {
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return rawLevel{}, formatErrorf("Parse:lhs", ErrMalformedInput)
			}
			lvl.vars = append(lvl.vars, v)
		}
	}

	if rhsStr == "" {
		return rawLevel{}, formatErrorf("Parse:rhs", ErrMalformedInput)
	}
	// Descriptors carry their own comma, so split only at "),(" and put
	// back the parentheses the split consumed.
	descs := strings.Split(rhsStr, "),(")
	for i, desc := range descs {
		if i > 0 {
			desc = "(" + desc
		}
		if i < len(descs)-1 {
			desc += ")"
		}
		n, err := parseNodeDescriptor(desc)
		if err != nil {
			return rawLevel{}, err
		}
		lvl.nodes = append(lvl.nodes, n)
	}
	return lvl, nil
}

func parseNodeDescriptor(desc string) (rawNode, error) {
	if !strings.HasPrefix(desc, "(") || !strings.HasSuffix(desc, ")") {
		return rawNode{}, formatErrorf("Parse:node", ErrMalformedInput)
	}
	body := desc[1 : len(desc)-1]
	fields := strings.SplitN(body, ";", 2)
	if len(fields) != 2 {
		return rawNode{}, formatErrorf("Parse:node", ErrMalformedInput)
	}
	targets := strings.SplitN(fields[1], ",", 2)
	if len(targets) != 2 {
		return rawNode{}, formatErrorf("Parse:node", ErrMalformedInput)
	}

	id, err1 := strconv.ParseUint(fields[0], 10, 64)
	zero, err2 := strconv.ParseUint(targets[0], 10, 64)
	one, err3 := strconv.ParseUint(targets[1], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return rawNode{}, formatErrorf("Parse:node", ErrMalformedInput)
	}
	return rawNode{id: id, zero: zero, one: one}, nil
}

// location is where a raw node id resolves to: either the terminal
// (sink) node, or a specific (level, index) slot among the real levels.
type location struct {
	isTerminal bool
	level      int
	index      int
}

// resolveBDD turns the raw, level-local parse of one BDD chunk into the
// soc.LevelSpec slice NewBDD expects: it builds a global id->location
// map across every level (ids are unique within a chunk, not
// level-scoped, per spec.md §6.2), validates the synthetic terminal
// level, and resolves every real node's zero/one target against that
// map.
func resolveBDD(raw []rawLevel) ([]soc.LevelSpec, error) {
	if len(raw) < 1 {
		return nil, formatErrorf("Parse:bdd", ErrMalformedInput)
	}
	terminal := raw[len(raw)-1]
	real := raw[:len(raw)-1]

	if len(terminal.vars) != 0 || len(terminal.nodes) != 1 {
		return nil, formatErrorf("Parse:terminal", ErrMalformedInput)
	}
	termNode := terminal.nodes[0]
	if termNode.zero != 0 || termNode.one != 0 {
		return nil, formatErrorf("Parse:terminal", ErrMalformedInput)
	}

	locations := map[uint64]location{termNode.id: {isTerminal: true}}
	for li, lvl := range real {
		for ni, n := range lvl.nodes {
			if _, dup := locations[n.id]; dup {
				return nil, formatErrorf("Parse:node", ErrMalformedInput)
			}
			locations[n.id] = location{level: li, index: ni}
		}
	}

	specs := make([]soc.LevelSpec, len(real))
	for li, lvl := range real {
		vars := make([]gf2.Variable, len(lvl.vars))
		for i, v := range lvl.vars {
			vars[i] = gf2.Variable(v)
		}
		specs[li].LHS = gf2.NewLC(vars...)
		specs[li].Nodes = make([]soc.NodeSpec, len(lvl.nodes))
		for ni, n := range lvl.nodes {
			zero, err := resolveTarget(n.zero, li, locations)
			if err != nil {
				return nil, err
			}
			one, err := resolveTarget(n.one, li, locations)
			if err != nil {
				return nil, err
			}
			specs[li].Nodes[ni] = soc.NodeSpec{Zero: zero, One: one}
		}
	}
	return specs, nil
}

func resolveTarget(target uint64, fromLevel int, locations map[uint64]location) (soc.EdgeRef, error) {
	if target == 0 {
		return soc.RefNone, nil
	}
	loc, ok := locations[target]
	if !ok {
		return soc.EdgeRef{}, formatErrorf("Parse:target", ErrMalformedInput)
	}
	if loc.isTerminal {
		return soc.RefSink, nil
	}
	if loc.level <= fromLevel {
		return soc.EdgeRef{}, formatErrorf("Parse:target", ErrMalformedInput)
	}
	return soc.RefNode(loc.level, loc.index), nil
}
