// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"
)

// parseWKT2 walks a WKT2 (ISO 19162) tree using a top-level-comma tokenizer
// and WKT2's own keyword set (GEOGCRS/PROJCRS/BASEGEOGCRS/CONVERSION/
// METHOD/PARAMETER/BOUNDCRS). Parameter names are matched
// case-insensitively against the PROJJSON mapping table in projjson.go so
// both formats share one name -> field resolver.
func parseWKT2(text string) (*Params, error) {
	node, err := wkt2Parse(text)
	if err != nil {
		return nil, err
	}
	p := defaultParams()
	if err := wkt2Bind(p, node); err != nil {
		return nil, err
	}
	if err := p.deriveEllipsoid(""); err != nil {
		return nil, err
	}
	if err := p.deriveDatum(); err != nil {
		return nil, err
	}
	if err := p.BindProjection(); err != nil {
		return nil, err
	}
	return p, nil
}

// wkt2Node is a generic parsed WKT2 clause: a keyword, every one of its
// plain (unbracketed) arguments in source order, and its bracketed
// children in source order. arg is args[0] when present, kept separately
// since most clauses only ever look at their first argument (a quoted
// name).
type wkt2Node struct {
	keyword  string
	arg      string
	args     []string
	children []*wkt2Node
}

func wkt2Parse(text string) (*wkt2Node, error) {
	text = strings.TrimSpace(text)
	idx := strings.IndexAny(text, "[(")
	if idx < 0 {
		return nil, defErr("malformed WKT2: no opening bracket")
	}
	last := text[len(text)-1]
	if last != ']' && last != ')' {
		return nil, defErr("malformed WKT2: no closing bracket")
	}
	keyword := strings.TrimSpace(text[:idx])
	body := text[idx+1 : len(text)-1]
	return wkt2ParseBody(keyword, body)
}

// bracketsToSquare normalizes WKT2's optional "(...)" delimiter form to
// "[...]" so the rest of the tokenizer only has to handle one bracket kind.
func bracketsToSquare(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			b.WriteByte('[')
		case ')':
			b.WriteByte(']')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// splitTopLevelFields splits a WKT2 clause body on its top-level commas,
// i.e. commas outside any nested "[...]" or quoted string — the grammar a
// PARAMETER or CONVERSION argument list uses: "name", CHILD[...],
// PARAMETER[...], ...
func splitTopLevelFields(body string) []string {
	var fields []string
	depth := 0
	start := 0
	inQuote := false
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"':
			inQuote = !inQuote
		case '[':
			if !inQuote {
				depth++
			}
		case ']':
			if !inQuote {
				depth--
			}
		case ',':
			if !inQuote && depth == 0 {
				fields = append(fields, body[start:i])
				start = i + 1
			}
		}
	}
	fields = append(fields, body[start:])
	return fields
}

// wkt2ParseBody parses one clause's body into a node: every plain
// (unbracketed) field becomes a node.args entry, and every
// "KEYWORD[...]" field becomes a recursively parsed child, both in
// source order.
func wkt2ParseBody(keyword, body string) (*wkt2Node, error) {
	node := &wkt2Node{keyword: strings.ToUpper(strings.TrimSpace(keyword))}
	for _, field := range splitTopLevelFields(bracketsToSquare(body)) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		idx := strings.IndexByte(field, '[')
		if idx < 0 {
			node.args = append(node.args, strings.Trim(field, "\" "))
			continue
		}
		if field[len(field)-1] != ']' {
			return nil, defErr("malformed WKT2 field: " + field)
		}
		childKeyword := strings.TrimSpace(field[:idx])
		inner := field[idx+1 : len(field)-1]
		child, err := wkt2ParseBody(childKeyword, inner)
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
	if len(node.args) > 0 {
		node.arg = node.args[0]
	}
	return node, nil
}

func wkt2Child(n *wkt2Node, keyword string) *wkt2Node {
	for _, c := range n.children {
		if c.keyword == keyword {
			return c
		}
	}
	return nil
}

func wkt2Children(n *wkt2Node, keyword string) []*wkt2Node {
	var out []*wkt2Node
	for _, c := range n.children {
		if c.keyword == keyword {
			out = append(out, c)
		}
	}
	return out
}

func wkt2Bind(p *Params, n *wkt2Node) error {
	switch n.keyword {
	case "BOUNDCRS":
		src := wkt2Child(n, "SOURCECRS")
		if src != nil && len(src.children) > 0 {
			if err := wkt2Bind(p, src.children[0]); err != nil {
				return err
			}
		}
		if xf := wkt2Child(n, "ABRIDGEDTRANSFORMATION"); xf != nil {
			wkt2BindAbridgedTransformation(p, xf)
		}
		return nil
	case "GEOGCRS", "BASEGEOGCRS":
		p.Title = n.arg
		p.ProjName = "longlat"
		if datum := wkt2Child(n, "DATUM"); datum != nil {
			wkt2BindDatum(p, datum)
		}
		if pm := wkt2Child(n, "PRIMEM"); pm != nil {
			wkt2BindPrimeM(p, pm)
		}
		return nil
	case "PROJCRS":
		p.Title = n.arg
		if base := wkt2Child(n, "BASEGEOGCRS"); base != nil {
			if err := wkt2Bind(p, base); err != nil {
				return err
			}
		}
		if conv := wkt2Child(n, "CONVERSION"); conv != nil {
			wkt2BindConversion(p, conv)
		}
		return nil
	}
	return defErr("unsupported WKT2 root keyword: " + n.keyword)
}

func wkt2BindDatum(p *Params, n *wkt2Node) {
	p.DatumCode = strings.ToLower(n.arg)
	wktDatumRename(p)
	if ell := wkt2Child(n, "ELLIPSOID"); ell != nil {
		wkt2BindEllipsoid(p, ell)
	}
}

// wkt2BindEllipsoid reads ELLIPSOID["name", semi_major_axis,
// inverse_flattening] — three plain arguments in source order.
func wkt2BindEllipsoid(p *Params, n *wkt2Node) {
	if len(n.args) >= 2 {
		if a, err := strconv.ParseFloat(n.args[1], 64); err == nil {
			p.A = a
		}
	}
	if len(n.args) >= 3 {
		if rf, err := strconv.ParseFloat(n.args[2], 64); err == nil {
			p.Rf = rf
		}
	}
}

func wkt2BindPrimeM(p *Params, n *wkt2Node) {
	name := strings.ToLower(n.arg)
	if name == "greenwich" || name == "" {
		return
	}
	if pm, ok := lookupPrimeMeridian(name); ok {
		p.FromGreenwich = parseDegreeString(pm.defn) * d2r
		return
	}
	if len(n.args) >= 2 {
		if deg, err := strconv.ParseFloat(n.args[1], 64); err == nil {
			p.FromGreenwich = deg * d2r
		}
	}
}

func wkt2BindConversion(p *Params, n *wkt2Node) {
	if method := wkt2Child(n, "METHOD"); method != nil {
		p.ProjName = canonicalProjName(method.arg)
		bindOmercVariant(p, method.arg)
	}
	for _, param := range wkt2Children(n, "PARAMETER") {
		wkt2BindParameter(p, param)
	}
}

// wkt2BindParameter reads PARAMETER["name", value, ANGLEUNIT[...]|
// LENGTHUNIT[...], ...] — the name is args[0], the numeric value is
// args[1], and an ANGLEUNIT/LENGTHUNIT child (when present) carries this
// parameter's own unit conversion factor as its second argument,
// overriding the degree/metre class default applyNamedParameter falls
// back to.
func wkt2BindParameter(p *Params, n *wkt2Node) {
	if len(n.args) < 2 {
		return
	}
	name := strings.ToLower(n.args[0])
	val, err := strconv.ParseFloat(n.args[1], 64)
	if err != nil {
		return
	}
	applyNamedParameter(p, name, val, wkt2ParamUnitFactor(n))
}

// wkt2ParamUnitFactor reads a PARAMETER clause's own ANGLEUNIT/
// LENGTHUNIT/UNIT child's conversion-factor argument; returns 0 (meaning
// "no override, use the class default") when absent or unparsable.
func wkt2ParamUnitFactor(n *wkt2Node) float64 {
	for _, kw := range []string{"ANGLEUNIT", "LENGTHUNIT", "UNIT"} {
		u := wkt2Child(n, kw)
		if u == nil || len(u.args) < 2 {
			continue
		}
		if f, err := strconv.ParseFloat(u.args[1], 64); err == nil {
			return f
		}
	}
	return 0
}

func wkt2BindAbridgedTransformation(p *Params, n *wkt2Node) {
	var params [7]float64
	for _, param := range wkt2Children(n, "PARAMETER") {
		if len(param.args) < 2 {
			continue
		}
		name := strings.ToLower(param.args[0])
		val, err := strconv.ParseFloat(param.args[1], 64)
		if err != nil {
			continue
		}
		switch name {
		case "x-axis translation":
			params[0] = val
		case "y-axis translation":
			params[1] = val
		case "z-axis translation":
			params[2] = val
		case "x-axis rotation":
			params[3] = val
		case "y-axis rotation":
			params[4] = val
		case "z-axis rotation":
			params[5] = val
		case "scale difference":
			params[6] = val
		}
	}
	p.DatumParams = params[:]
}
