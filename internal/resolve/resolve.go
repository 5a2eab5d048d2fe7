// Package resolve maps object tokens from the legacy Makefiles to the
// source files they are compiled from, by probing a fixed, ordered set
// of candidate locations under the game's code tree.
package resolve

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolver resolves object tokens against <root>/<game>/code. It only
// ever stats the filesystem; given an unchanged tree, resolution is
// deterministic.
type Resolver struct {
	root string
	game string
}

// New returns a resolver for one game tree under the project root.
func New(root, game string) *Resolver {
	return &Resolver{root: root, game: game}
}

// UnknownCategoryError reports a token matching no marker category.
type UnknownCategoryError struct {
	Token string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no source category for object %q", e.Token)
}

// NoSourceError reports a token whose candidates all failed the
// existence probe.
type NoSourceError struct {
	Token string
}

func (e *NoSourceError) Error() string {
	return fmt.Sprintf("no source file found for object %q", e.Token)
}

// Source resolves one object token to a source path relative to the
// project root, in forward-slash form. The first category whose marker
// occurs in the token selects the candidate list; within it the first
// existing file wins.
func (r *Resolver) Source(token string) (string, error) {
	tok := strings.ReplaceAll(token, `\`, "/")
	for _, cat := range categories {
		idx := strings.LastIndex(tok, cat.marker)
		if idx < 0 {
			continue
		}
		stem := strings.TrimSuffix(tok[idx+len(cat.marker):], ".o")
		return r.probeCategory(cat, stem, token)
	}
	return "", &UnknownCategoryError{Token: token}
}

func (r *Resolver) probeCategory(cat category, stem, token string) (string, error) {
	for _, rule := range cat.prefixes {
		if !strings.HasPrefix(stem, rule.prefix) {
			continue
		}
		s := stem
		if rule.strip {
			s = stem[len(rule.prefix):]
		}
		if rel, ok := r.probe(rule.probes, s); ok {
			return rel, nil
		}
		if rule.exclusive {
			return "", &NoSourceError{Token: token}
		}
	}
	if rel, ok := r.probe(cat.probes, stem); ok {
		return rel, nil
	}
	return "", &NoSourceError{Token: token}
}

func (r *Resolver) probe(probes []probe, stem string) (string, bool) {
	for _, p := range probes {
		rel := path.Join(r.game, "code", p.dir, stem+p.ext)
		if _, err := os.Stat(filepath.Join(r.root, filepath.FromSlash(rel))); err == nil {
			return rel, true
		}
	}
	return "", false
}
