package scene

// WalkFunc is called for each object with its nesting depth. Returning false
// skips the object's children; the walk still continues with its siblings.
// Use FindFirst to stop at the first match.
type WalkFunc func(obj Object, depth int) bool

// Walk visits objs and their descendants depth first in stacking order.
func Walk(objs []Object, fn WalkFunc) {
	walk(objs, 0, fn)
}

func walk(objs []Object, depth int, fn WalkFunc) {
	for _, o := range objs {
		if !fn(o, depth) {
			continue
		}
		if g, ok := o.(*Group); ok {
			walk(g.objects, depth+1, fn)
		}
	}
}

// FindFirst returns the first object, depth first, that match reports, and
// stops walking as soon as it is found.
func FindFirst(objs []Object, match func(Object) bool) Object {
	for _, o := range objs {
		if match(o) {
			return o
		}
		if g, ok := o.(*Group); ok {
			if found := FindFirst(g.objects, match); found != nil {
				return found
			}
		}
	}
	return nil
}

// Ancestors returns the chain of groups containing obj, outermost first.
func Ancestors(obj Object) []*Group {
	var chain []*Group
	for g := obj.Item().group; g != nil; g = g.group {
		chain = append([]*Group{g}, chain...)
	}
	return chain
}
