package estree

import (
	"github.com/microsoft/typescript-go/shim/ast"
)

// NodeMaps is the bidirectional correspondence between native nodes and the
// generic nodes built from them. The generic-to-native direction is written
// whenever a node is created. The native-to-generic direction is first-writer
// wins and is written after a node's subtree finishes converting, so a native
// node that produces both a wrapper and an inner generic node resolves to the
// one conversion considers primary.
type NodeMaps struct {
	esTreeNodeToTSNode map[Node]*ast.Node
	tsNodeToESTreeNode map[*ast.Node]Node
}

func newNodeMaps() *NodeMaps {
	return &NodeMaps{
		esTreeNodeToTSNode: make(map[Node]*ast.Node),
		tsNodeToESTreeNode: make(map[*ast.Node]Node),
	}
}

func (m *NodeMaps) linkESTreeToTS(esNode Node, tsNode *ast.Node) {
	if tsNode == nil || esNode == nil {
		return
	}
	m.esTreeNodeToTSNode[esNode] = tsNode
}

func (m *NodeMaps) linkTSToESTree(tsNode *ast.Node, esNode Node) {
	if tsNode == nil || esNode == nil {
		return
	}
	if _, present := m.tsNodeToESTreeNode[tsNode]; !present {
		m.tsNodeToESTreeNode[tsNode] = esNode
	}
}

// TSNodeFor returns the native node a generic node was built from, reporting
// false for synthetic nodes with no single native source.
func (m *NodeMaps) TSNodeFor(esNode Node) (*ast.Node, bool) {
	tsNode, ok := m.esTreeNodeToTSNode[esNode]
	return tsNode, ok
}

// ESTreeNodeFor returns the generic node built from a native node, reporting
// false for native nodes the conversion folded away.
func (m *NodeMaps) ESTreeNodeFor(tsNode *ast.Node) (Node, bool) {
	esNode, ok := m.tsNodeToESTreeNode[tsNode]
	return esNode, ok
}

func (m *NodeMaps) Len() int {
	return len(m.esTreeNodeToTSNode)
}
