/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	"errors"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// analyseImpl checks the resolution invariant over the whole unit: names are
// indexed first, then every reference is resolved against the complete index,
// so declaration order does not matter
func analyseImpl(ns xdrdef.Namespaces) error {
	errs := make([]error, 0)
	errs = analyseDuplicateNames(ns, errs)

	idx := ns.Index()
	errs = analyseReferences(ns, idx, errs)
	errs = analyseSwitches(ns, idx, errs)
	return errors.Join(errs...)
}

func analyseDuplicateNames(ns xdrdef.Namespaces, errs []error) []error {
	namedIndex := make(map[string]struct{})
	check := func(name, namespace string) {
		if xdrdef.IsPrimitive(name) || name == xdrdef.Void {
			errs = append(errs, ErrNameReserved(name, namespace))
			return
		}
		if _, ok := namedIndex[name]; ok {
			errs = append(errs, ErrNameRedeclared(name, namespace))
			return
		}
		namedIndex[name] = struct{}{}
	}
	for _, n := range ns {
		for _, td := range n.Typedefs {
			check(td.Def.Name, n.Name)
		}
		for _, s := range n.Structs {
			check(s.Name, n.Name)
		}
		for _, e := range n.Enums {
			check(e.Name, n.Name)
		}
		for _, u := range n.Unions {
			check(u.Name, n.Name)
		}
	}
	return errs
}

func analyseReferences(ns xdrdef.Namespaces, idx *xdrdef.Index, errs []error) []error {
	ns.Defs(func(owner string, d xdrdef.Def) {
		if !idx.Resolvable(d.TypeName) {
			errs = append(errs, ErrUndefined(owner, d.Name, d.TypeName))
		}
	})
	return errs
}

func analyseSwitches(ns xdrdef.Namespaces, idx *xdrdef.Index, errs []error) []error {
	for _, n := range ns {
		for _, u := range n.Unions {
			if _, ok := idx.Enums[u.Switch.EnumType]; !ok {
				errs = append(errs, ErrSwitchTypeNotEnum(u.Name, u.Switch.EnumType))
			}
		}
	}
	return errs
}
