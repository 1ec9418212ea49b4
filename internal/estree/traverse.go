package estree

import "reflect"

type traverser struct {
	onEnter func(Node)
	onExit  func(Node)
}

// TraverseAST walks the generic tree depth first, wiring each node's parent
// link along the way. Either callback may be nil.
func TraverseAST(root Node, onEnter func(node Node), onExit func(node Node)) {
	t := traverser{
		onEnter,
		onExit,
	}

	t.traverse(root, nil)
}

// WireParents sets the parent link on every node reachable from root.
func WireParents(root Node) {
	TraverseAST(root, nil, nil)
}

func (t *traverser) traverse(node Node, parent Node) {
	if node == nil {
		return
	}
	node.SetParent(parent)

	if t.onEnter != nil {
		t.onEnter(node)
	}

	for _, child := range childNodes(node) {
		t.traverse(child, node)
	}

	if t.onExit != nil {
		t.onExit(node)
	}
}

// childNodes gathers every child node held in the struct's fields, in field
// order. Fields are discovered reflectively so the walk stays correct as node
// shapes change.
func childNodes(node Node) []Node {
	v := reflect.Indirect(reflect.ValueOf(node))
	if v.Kind() != reflect.Struct {
		return nil
	}

	var children []Node
	typ := v.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		appendChildNodes(v.Field(i), &children)
	}
	return children
}

func appendChildNodes(v reflect.Value, out *[]Node) {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return
		}
		child, ok := v.Interface().(Node)
		if !ok {
			return
		}
		// a typed nil pointer stored in an interface still counts as absent
		cv := reflect.ValueOf(child)
		if cv.Kind() == reflect.Pointer && cv.IsNil() {
			return
		}
		*out = append(*out, child)
	case reflect.Slice:
		for i := range v.Len() {
			appendChildNodes(v.Index(i), out)
		}
	}
}
