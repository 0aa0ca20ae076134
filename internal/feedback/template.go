// Package feedback fills the coach's response templates.
package feedback

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/synapse/internal/pick"
)

// ErrUnknownPool is returned when rendering from a pool that does not exist.
var ErrUnknownPool = errors.New("unknown template pool")

// Pool names.
const (
	PoolArenaCorrect   = "arena-correct"
	PoolArenaIncorrect = "arena-incorrect"
	PoolArenaTimeout   = "arena-timeout"
	PoolSenseiProbe    = "sensei-probe"
	PoolSenseiResist   = "sensei-resist"
	PoolSenseiAccept   = "sensei-accept"
	PoolEncouragement  = "encouragement"
	PoolStudyRec       = "study-rec"
)

// Fill replaces the first occurrence of each {name} placeholder with its value.
// Positions are resolved against the template, so inserted values are never
// re-scanned. Placeholders without a value stay literal.
func Fill(template string, values map[string]string) string {
	type hit struct {
		at    int
		token string
		value string
	}
	hits := make([]hit, 0, len(values))
	for name, v := range values {
		token := "{" + name + "}"
		if i := strings.Index(template, token); i >= 0 {
			hits = append(hits, hit{at: i, token: token, value: v})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	var b strings.Builder
	last := 0
	for _, h := range hits {
		if h.at < last {
			continue
		}
		b.WriteString(template[last:h.at])
		b.WriteString(h.value)
		last = h.at + len(h.token)
	}
	b.WriteString(template[last:])
	return b.String()
}

// Engine renders templates from named pools using an injected random source.
type Engine struct {
	pools map[string][]string
	src   pick.Source
}

// NewEngine returns an engine over the built-in pools.
func NewEngine(src pick.Source) *Engine {
	return &Engine{pools: defaultPools(), src: src}
}

// Source returns the engine's random source.
func (e *Engine) Source() pick.Source { return e.src }

// Pool returns a copy of the templates in the named pool.
func (e *Engine) Pool(name string) ([]string, error) {
	p, ok := e.pools[name]
	if !ok {
		return nil, fmt.Errorf("pool %q: %w", name, ErrUnknownPool)
	}
	return append([]string(nil), p...), nil
}

// Render picks one template from the named pool uniformly at random and fills it.
func (e *Engine) Render(pool string, values map[string]string) (string, error) {
	p, ok := e.pools[pool]
	if !ok || len(p) == 0 {
		return "", fmt.Errorf("render %q: %w", pool, ErrUnknownPool)
	}
	return Fill(pick.One(e.src, p), values), nil
}

// mustRender is for built-in pools, which always exist.
func (e *Engine) mustRender(pool string, values map[string]string) string {
	s, err := e.Render(pool, values)
	if err != nil {
		panic(err)
	}
	return s
}
