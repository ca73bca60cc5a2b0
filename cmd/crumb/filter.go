package main

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/crumbware/binarycookies/cookie"
)

// filterEnv flattens a record for the filter expression. Absent string
// fields read as "" so expressions need no nil handling.
func filterEnv(r *cookie.Record) map[string]any {
	s := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return map[string]any{
		"version":    int(r.Version),
		"flags":      int(r.Flags),
		"hasPort":    int(r.HasPort),
		"domain":     s(r.Domain),
		"name":       s(r.Name),
		"path":       s(r.Path),
		"value":      s(r.Value),
		"comment":    s(r.Comment),
		"commentUrl": s(r.CommentURL),
		"expiry":     r.Expiry,
		"creation":   r.Creation,
	}
}

func compileFilter(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(filterEnv(&cookie.Record{})), expr.AsBool())
}

func applyFilter(prg *vm.Program, records []*cookie.Record) ([]*cookie.Record, error) {
	kept := make([]*cookie.Record, 0, len(records))
	for _, r := range records {
		res, err := expr.Run(prg, filterEnv(r))
		if err != nil {
			return nil, err
		}
		if res.(bool) {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
