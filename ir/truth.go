package ir

// Truth reports whether node is a non-empty container, a non-empty
// string or a non-zero number.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case DictionaryType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case IntegerType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0.0
	default:
		return false
	}
}
