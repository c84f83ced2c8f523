// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strings"
	"sync"

	"github.com/go-geodesy/projectron/grid"
)

// Engine is the process-wide CRS registry: a cache of parsed Params keyed
// by definition text, and a set of loaded nadgrids keyed by
// grid name. The package-level DefaultEngine is what Transform/Parse/
// MakeConverter use unless a caller builds their own, the way a
// self-contained library with no ambient global state would still want
// one convenient default instance.
type Engine struct {
	mu     sync.RWMutex
	params map[string]*Params
	grids  map[string]*grid.Grid
}

// NewEngine returns an empty registry; grids must be loaded explicitly via
// LoadGrid. Parsing a definition that names a grid does not check that the
// grid is loaded; a transform through a mandatory grid that is not loaded
// fails with a *TransformFailure.
func NewEngine() *Engine {
	return &Engine{
		params: make(map[string]*Params),
		grids:  make(map[string]*grid.Grid),
	}
}

// DefaultEngine is the shared registry used by the package-level Parse,
// Transform and MakeConverter helpers.
var DefaultEngine = NewEngine()

// Parse resolves a CRS definition (PROJ string, WKT1, WKT2 or PROJJSON) to
// a bound *Params, caching by the exact definition text so repeated
// Transform calls with the same strings skip reparsing.
func (e *Engine) Parse(def string) (*Params, error) {
	key := strings.TrimSpace(def)
	e.mu.RLock()
	if p, ok := e.params[key]; ok {
		e.mu.RUnlock()
		return p, nil
	}
	e.mu.RUnlock()

	p, err := parseDefinition(key)
	if err != nil {
		return nil, err
	}
	p.defText = key

	e.mu.Lock()
	if existing, ok := e.params[key]; ok {
		e.mu.Unlock()
		return existing, nil
	}
	e.params[key] = p
	e.mu.Unlock()
	return p, nil
}

// LoadGrid registers an already-parsed NTv2 grid under name so later
// datum shifts whose +nadgrids clause references it can find it.
func (e *Engine) LoadGrid(name string, g *grid.Grid) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grids[name] = g
}

func (e *Engine) lookupGrid(name string) (*grid.Grid, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	g, ok := e.grids[strings.TrimPrefix(name, "@")]
	return g, ok
}

func parseDefinition(def string) (*Params, error) {
	trimmed := strings.TrimSpace(def)
	switch {
	case strings.HasPrefix(trimmed, "+"):
		return parseProjString(trimmed)
	case strings.HasPrefix(trimmed, "{"):
		return parsePROJJSON([]byte(trimmed))
	case looksLikeWKT(trimmed):
		return parseWKT(trimmed)
	case strings.EqualFold(trimmed, "WGS84") || strings.EqualFold(trimmed, "EPSG:4326"):
		return parseProjString("+proj=longlat +datum=WGS84 +no_defs")
	default:
		if z, south, ok := parseUTMEPSG(trimmed); ok {
			sb := "+proj=utm +zone=" + itoa(z) + " +datum=WGS84 +units=m +no_defs"
			if south {
				sb += " +south"
			}
			return parseProjString(sb)
		}
	}
	return nil, defErr("unrecognized CRS definition: " + def)
}

func looksLikeWKT(s string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range []string{"GEOGCS[", "PROJCS[", "GEOGCRS[", "PROJCRS[", "BOUNDCRS[", "GEOCCS["} {
		if strings.HasPrefix(upper, kw) || strings.Contains(upper[:min(len(upper), 20)], kw) {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// parseUTMEPSG recognizes the WGS84/UTM EPSG shortcut ranges:
// 32601-32660 (north) and 32701-32760 (south).
func parseUTMEPSG(s string) (zone int, south bool, ok bool) {
	s = strings.TrimPrefix(strings.ToUpper(s), "EPSG:")
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false, false
		}
		n = n*10 + int(c-'0')
	}
	switch {
	case n >= 32601 && n <= 32660:
		return n - 32600, false, true
	case n >= 32701 && n <= 32760:
		return n - 32700, true, true
	}
	return 0, false, false
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
