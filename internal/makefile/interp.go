// Package makefile interprets the subset of the legacy game Makefiles
// needed to recover their object lists: line continuations, nested
// ifeq/ifneq/ifdef/ifndef conditionals, = and += assignments, and
// $(...) expansion including findstring.
package makefile

import (
	"regexp"
	"strings"
)

var assignRx = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*(\+?=)\s*(.*)$`)

// Interpreter evaluates the conditional/assignment subset of a legacy
// Makefile one logical line at a time. It owns the variable store and
// the stack of nested conditional frames; the base frame is always true
// and a statement only takes effect when every enclosing frame is true.
type Interpreter struct {
	vars  map[string]string
	scope []bool
}

// NewInterpreter returns an interpreter seeded with a copy of vars.
func NewInterpreter(vars map[string]string) *Interpreter {
	in := &Interpreter{
		vars:  make(map[string]string, len(vars)),
		scope: []bool{true},
	}
	for k, v := range vars {
		in.vars[k] = v
	}
	return in
}

// ProcessLine consumes one logical line. Conditional bookkeeping happens
// even inside inactive branches so that nested blocks stay balanced;
// assignments apply only in an active scope. Lines outside the supported
// subset (rules, recipes, := assignments) are ignored.
func (in *Interpreter) ProcessLine(line string) {
	raw := strings.TrimSpace(line)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return
	}

	switch {
	case strings.HasPrefix(raw, "ifeq") || strings.HasPrefix(raw, "ifneq"):
		in.push(in.evalCond(raw))
		return
	case strings.HasPrefix(raw, "ifdef "):
		name := strings.TrimSpace(raw[len("ifdef "):])
		in.push(in.vars[name] != "")
		return
	case strings.HasPrefix(raw, "ifndef "):
		name := strings.TrimSpace(raw[len("ifndef "):])
		in.push(in.vars[name] == "")
		return
	case raw == "else":
		prev := in.pop()
		in.push(!prev)
		return
	case raw == "endif":
		// An excess endif is tolerated; the base frame never pops.
		if len(in.scope) > 1 {
			in.scope = in.scope[:len(in.scope)-1]
		}
		return
	}

	if !in.active() {
		return
	}
	m := assignRx.FindStringSubmatch(raw)
	if m == nil {
		return
	}
	name, op, value := m[1], m[2], strings.TrimSpace(m[3])
	if op == "+=" {
		in.vars[name] = strings.TrimSpace(in.vars[name] + " " + value)
	} else {
		in.vars[name] = value
	}
}

// evalCond evaluates an ifeq/ifneq line: outer parentheses stripped,
// split at the first comma outside nested parentheses, both sides
// expanded against the current store and compared for exact equality.
func (in *Interpreter) evalCond(raw string) bool {
	neg := strings.HasPrefix(raw, "ifneq")
	inside := strings.TrimSpace(raw[5:])
	if strings.HasPrefix(inside, "(") && strings.HasSuffix(inside, ")") {
		inside = inside[1 : len(inside)-1]
	}

	lhs, rhs := inside, ""
	depth := 0
scan:
	for i := 0; i < len(inside); i++ {
		switch inside[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				lhs, rhs = inside[:i], inside[i+1:]
				break scan
			}
		}
	}

	eq := Expand(strings.TrimSpace(lhs), in.vars) == Expand(strings.TrimSpace(rhs), in.vars)
	if neg {
		return !eq
	}
	return eq
}

func (in *Interpreter) push(cond bool) {
	parent := true
	if n := len(in.scope); n > 0 {
		parent = in.scope[n-1]
	}
	in.scope = append(in.scope, parent && cond)
}

func (in *Interpreter) pop() bool {
	n := len(in.scope)
	if n == 0 {
		return true
	}
	v := in.scope[n-1]
	in.scope = in.scope[:n-1]
	return v
}

func (in *Interpreter) active() bool {
	return in.scope[len(in.scope)-1]
}

// Depth reports the conditional nesting depth, counting the base frame.
func (in *Interpreter) Depth() int { return len(in.scope) }

// Lookup returns the raw, unexpanded value stored under name.
func (in *Interpreter) Lookup(name string) string { return in.vars[name] }

// Vars exposes the live store, for expansion once all lines are consumed.
func (in *Interpreter) Vars() map[string]string { return in.vars }
