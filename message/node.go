package message

import "github.com/shapestone/shape-core/pkg/ast"

var zeroPos = ast.Position{}

// Node exports the message as an AST object. Requests carry method, path, query and
// params, responses carry statusCode and reason. Both carry version, headers and body.
func (m *Message) Node() ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"version": ast.NewLiteralNode(m.Protocol(), zeroPos),
		"headers": pairsNode(m.Headers),
		"body":    ast.NewLiteralNode(string(m.Body), zeroPos),
	}

	if m.IsRequest() {
		props["type"] = ast.NewLiteralNode("request", zeroPos)
		props["method"] = ast.NewLiteralNode(m.Method, zeroPos)
		props["path"] = ast.NewLiteralNode(m.Path, zeroPos)
		props["query"] = ast.NewLiteralNode(m.Query, zeroPos)
		props["params"] = pairsNode(m.Params)
	} else {
		props["type"] = ast.NewLiteralNode("response", zeroPos)
		props["statusCode"] = ast.NewLiteralNode(int64(m.Code), zeroPos)
		props["reason"] = ast.NewLiteralNode(m.Reason, zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

func pairsNode(h *Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, 0, h.Len())
	for key, value := range h.All() {
		elements = append(elements, ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(key, zeroPos),
			"value": ast.NewLiteralNode(value, zeroPos),
		}, zeroPos))
	}

	return ast.NewArrayDataNode(elements, zeroPos)
}
