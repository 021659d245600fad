package suite

import (
	"slices"
	"strings"

	"github.com/weiihann/contbench/element"
)

// Type is an element type the catalogue can run against.
type Type struct {
	Name  string
	Size  uintptr
	Small bool

	benches map[string]func(s sweep)
}

func newType[E element.Element[E]]() Type {
	return Type{
		Name:  element.Name[E](),
		Size:  element.Size[E](),
		Small: element.IsSmall[E](),
		benches: map[string]func(s sweep){
			"fill_back":        fillBack[E],
			"emplace_back":     emplaceBack[E],
			"fill_front":       fillFront[E],
			"emplace_front":    emplaceFront[E],
			"linear_search":    find[E],
			"write":            write[E],
			"random_insert":    randomInsert[E],
			"random_remove":    randomRemove[E],
			"sort":             sortAll[E],
			"reverse":          reverseAll[E],
			"destruction":      destruction[E],
			"number_crunching": numberCrunching[E],
			"erase1":           randomErase[E](1),
			"erase10":          randomErase[E](10),
			"erase25":          randomErase[E](25),
			"erase50":          randomErase[E](50),
			"traversal":        traversal[E],
			"find":             find[E],
			"fill_back_backup": fillBackBackup[E],
		},
	}
}

var types = []Type{
	newType[element.Trivial8](),
	newType[element.Trivial32](),
	newType[element.Trivial128](),
	newType[element.Trivial1024](),
	newType[element.Trivial4096](),
	newType[element.String](),
	newType[element.Blob](),
}

// Types returns the element types in run order.
func Types() []Type {
	return slices.Clone(types)
}

// TypeNames returns the names of the element types in run order.
func TypeNames() []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}

	return names
}

// LookupType finds an element type by name, ignoring case.
func LookupType(name string) (Type, bool) {
	i := slices.IndexFunc(types, func(t Type) bool {
		return strings.EqualFold(t.Name, name)
	})
	if i < 0 {
		return Type{}, false
	}

	return types[i], true
}

// Runs reports whether t can run b.
func (t Type) Runs(b Benchmark) bool {
	if b.SmallOnly && !t.Small {
		return false
	}

	_, ok := t.benches[b.Name]

	return ok
}
