package entities

// FilterByBaseType returns the nodes whose base type equals baseType, in input order.
// Nodes without a recognised base type only ever match BaseTypeOther.
func FilterByBaseType(nodes []Node, baseType BaseType) []Node {
	filtered := make([]Node, 0, len(nodes))
	for _, node := range nodes {
		if node.BaseType() == baseType {
			filtered = append(filtered, node)
		}
	}
	return filtered
}

// PartitionByBaseType splits nodes into documents, folders and everything else
// in a single pass, preserving relative order inside each group.
func PartitionByBaseType(nodes []Node) ([]Node, []Node, []Node) {
	var documents, folders, others []Node
	for _, node := range nodes {
		switch node.BaseType() {
		case BaseTypeDocument:
			documents = append(documents, node)
		case BaseTypeFolder:
			folders = append(folders, node)
		default:
			others = append(others, node)
		}
	}
	return documents, folders, others
}
