package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var c children
	switch n := node.(type) {
	case *File:
		for _, stmt := range n.Statements {
			c.add(stmt)
		}

	case *UnaryExpr:
		c.add(n.Operand)
	case *BinaryExpr:
		c.add(n.Left, n.Right)
	case *LogicalExpr:
		c.add(n.Left, n.Right)
	case *CallExpr:
		c.add(n.Callee)
		for _, arg := range n.Args {
			c.add(arg)
		}
	case *ArrayExpr:
		for _, el := range n.Elements {
			c.add(el)
		}
	case *IndexExpr:
		c.add(n.Target, n.Index)
	case *DotExpr:
		c.add(n.Object, n.Property)
	case *NamespaceExpr:
		c.add(n.Object, n.Property)
	case *RangeExpr:
		c.add(n.Low, n.High)
	case *TernaryExpr:
		c.add(n.Test, n.Consequent, n.Alternate)
	case *AssignExpr:
		c.add(n.Target, n.Value)
	case *FnExpr:
		c.generics(n.Generics)
		c.params(n.Params)
		c.typ(n.ReturnType)
		if n.Body != nil {
			c.add(n.Body)
		}
		c.add(n.Implicit)

	case *Block:
		for _, stmt := range n.Statements {
			c.add(stmt)
		}
	case *ExprStmt:
		c.add(n.Expr)
	case *PrintlnStmt:
		c.add(n.Value)
	case *IfStmt:
		c.add(n.Test, n.Body, n.Else)
	case *WhileStmt:
		c.add(n.Test, n.Body)
	case *ForStmt:
		c.add(n.Item, n.Iterator, n.Body)
	case *LoopStmt:
		c.add(n.Count, n.Body)
	case *ReturnStmt:
		c.add(n.Value)
	case *CrashStmt:
		c.add(n.Value)
	case *TryStmt:
		c.add(n.Body)
		if n.Recover != nil {
			c.add(n.Recover)
		}
	case *RecoverBlock:
		c.params(n.Params)
		c.add(n.Body)

	case *Param:
		c.add(n.Name)
		c.typ(n.Label)
	case *GenericParam:
		c.add(n.Name)
		for _, iface := range n.Implements {
			c.add(iface)
		}
	case *FunctionDecl:
		c.add(n.Name)
		c.generics(n.Generics)
		c.params(n.Params)
		c.typ(n.ReturnType)
		c.add(n.Body)
	case *Method:
		c.add(n.Name)
		c.generics(n.Generics)
		c.params(n.Params)
		c.typ(n.ReturnType)
		c.add(n.Body)
	case *Attribute:
		c.add(n.Key)
		c.typ(n.Label)
		c.add(n.Value)
	case *Implement:
		c.add(n.Interface)
	case *ClassDecl:
		c.add(n.Name)
		c.generics(n.Generics)
		for _, prop := range n.Properties {
			c.add(prop)
		}
	case *InterfaceDecl:
		c.add(n.Name)
		c.generics(n.Generics)
		for _, prop := range n.Properties {
			c.add(prop)
		}
	case *Variant:
		c.add(n.Name)
		for _, field := range n.Fields {
			c.typ(field)
		}
	case *EnumDecl:
		c.add(n.Name)
		c.generics(n.Generics)
		for _, v := range n.Variants {
			c.add(v)
		}
	case *Mapping:
		c.add(n.Key, n.Value)
	case *RecordDecl:
		c.add(n.Name)
		for _, m := range n.Mappings {
			c.add(m)
		}
	case *TypeAliasDecl:
		c.add(n.Name)
		c.generics(n.Generics)
		c.typ(n.Value)
	case *ModuleDecl:
		c.add(n.Name, n.Body)
	case *VarDecl:
		c.add(n.Name)
		c.typ(n.Label)
		c.add(n.Value)
	case *Import:
		c.add(n.Name, n.Local)
	case *UseDecl:
		for _, im := range n.Imports {
			c.add(im)
		}
		c.add(n.Source)
	case *PrependDecl:
		c.add(n.Source)
	case *TestBlock:
		c.add(n.Body)
	case *PublicStmt:
		c.add(n.Decl)

	case *ConcreteType:
		c.add(n.Name)
		for _, arg := range n.Args {
			c.typ(arg)
		}
	case *FunctionType:
		c.generics(n.Generics)
		c.params(n.Params)
		c.typ(n.Return)
	case *DotType:
		c.typ(n.Object)
		if n.Property != nil {
			c.add(n.Property)
		}
	}
	return c.nodes
}

// children drops nil values, including typed nil pointers stored in an
// interface.
type children struct {
	nodes []Node
}

func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if !isNil(n) {
			c.nodes = append(c.nodes, n)
		}
	}
}

func (c *children) typ(t TypeExpr) {
	if t != nil {
		c.add(t)
	}
}

func (c *children) params(params []*Param) {
	for _, p := range params {
		c.add(p)
	}
}

func (c *children) generics(generics []*GenericParam) {
	for _, g := range generics {
		c.add(g)
	}
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Ident:
		return v == nil
	case *Block:
		return v == nil
	case *StringLit:
		return v == nil
	case *RecoverBlock:
		return v == nil
	case *ConcreteType:
		return v == nil
	}
	return false
}
