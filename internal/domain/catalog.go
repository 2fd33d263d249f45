package domain

import "reflect"

// TypeInfo describes one domain type for display.
type TypeInfo struct {
	Name      string
	Kind      string // "struct" or "interface"
	Embeds    []string
	Satisfies []string
}

var capabilities = []reflect.Type{
	reflect.TypeOf((*Informer)(nil)).Elem(),
	reflect.TypeOf((*Ager)(nil)).Elem(),
}

// Catalog lists the domain types with the capabilities each one satisfies.
// Satisfaction is checked on the pointer type, so pointer-receiver methods count.
func Catalog() []TypeInfo {
	types := []reflect.Type{
		reflect.TypeOf(Person{}),
		reflect.TypeOf(Employee{}),
		reflect.TypeOf(Dog{}),
	}

	out := make([]TypeInfo, 0, len(types)+len(capabilities))
	for _, t := range types {
		info := TypeInfo{Name: t.Name(), Kind: "struct"}
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Anonymous {
				info.Embeds = append(info.Embeds, f.Type.Name())
			}
		}
		ptr := reflect.PointerTo(t)
		for _, c := range capabilities {
			if ptr.Implements(c) {
				info.Satisfies = append(info.Satisfies, c.Name())
			}
		}
		out = append(out, info)
	}

	for _, c := range capabilities {
		out = append(out, TypeInfo{Name: c.Name(), Kind: "interface"})
	}
	return out
}
