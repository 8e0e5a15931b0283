package lowering

import (
	"scilla/internal/ast"
	"scilla/internal/errors"
)

// Type expressions are reduced bottom-up. Names push identifiers, every
// complete type expression leaves exactly one descriptor, and typed names
// turn their descriptor into a declaration.

func (e *Engine) EmitTypedIdentifier(mode ast.TraversalMode, node *ast.TypedIdentifier) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}
	return ast.Continue, e.declare(node.Name.Value)
}

// declare pops a descriptor, resolves it and pushes the declaration of name.
func (e *Engine) declare(name string) error {
	desc, err := e.stack.popDescriptor()
	if err != nil {
		return err
	}
	t, err := e.resolve(desc)
	if err != nil {
		return err
	}
	e.stack.push(VariableDeclaration{Name: name, Type: t})
	return nil
}

func (e *Engine) EmitTypeAnnotation(mode ast.TraversalMode, node *ast.TypeAnnotation) (ast.TraversalResult, error) {
	return ast.Continue, nil
}

func (e *Engine) EmitScillaType(mode ast.TraversalMode, node ast.ScillaType) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		switch node.(type) {
		case *ast.FunctionType:
			return ast.Continue, errors.UnsupportedType(e.position(), "function")
		case *ast.PolyFunctionType:
			return ast.Continue, errors.UnsupportedType(e.position(), "polymorphic")
		case *ast.TypeVarType:
			return ast.Continue, errors.UnsupportedType(e.position(), "type variable")
		}
		return ast.Continue, nil
	}

	switch n := node.(type) {
	case *ast.GenericType:
		args, err := e.stack.popDescriptors(len(n.Arguments))
		if err != nil {
			return ast.Continue, err
		}
		head, err := e.stack.popIdentifier()
		if err != nil {
			return ast.Continue, err
		}
		e.stack.push(&TypeDescriptor{MainType: head.Unresolved, SubTypes: args})
	case *ast.MapType:
		return ast.Continue, e.reduceMap()
	}
	// Enclosed and address types already left their descriptor.
	return ast.Continue, nil
}

// reduceMap pops a value then a key descriptor and pushes the map.
func (e *Engine) reduceMap() error {
	value, err := e.stack.popDescriptor()
	if err != nil {
		return err
	}
	key, err := e.stack.popDescriptor()
	if err != nil {
		return err
	}
	e.stack.push(&TypeDescriptor{MainType: "Map", SubTypes: []*TypeDescriptor{key, value}})
	return nil
}

// reduceName turns the identifier on top of the stack into a descriptor
// without arguments.
func (e *Engine) reduceName() error {
	id, err := e.stack.popIdentifier()
	if err != nil {
		return err
	}
	e.stack.push(&TypeDescriptor{MainType: id.Unresolved})
	return nil
}

func (e *Engine) EmitTypeArgument(mode ast.TraversalMode, node ast.TypeArgument) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		if _, ok := node.(*ast.TemplateTypeArgument); ok {
			return ast.Continue, errors.UnsupportedType(e.position(), "type variable")
		}
		return ast.Continue, nil
	}

	switch node.(type) {
	case *ast.GenericTypeArgument:
		return ast.Continue, e.reduceName()
	case *ast.MapTypeArgument:
		return ast.Continue, e.reduceMap()
	}
	return ast.Continue, nil
}

func (e *Engine) EmitTypeMapKey(mode ast.TraversalMode, node *ast.TypeMapKey) (ast.TraversalResult, error) {
	if mode == ast.Exit && node.Identifier != nil {
		return ast.Continue, e.reduceName()
	}
	return ast.Continue, nil
}

func (e *Engine) EmitTypeMapValue(mode ast.TraversalMode, node *ast.TypeMapValue) (ast.TraversalResult, error) {
	if mode == ast.Exit && node.Identifier != nil {
		return ast.Continue, e.reduceName()
	}
	return ast.Continue, nil
}

func (e *Engine) EmitTypeMapEntry(mode ast.TraversalMode, node *ast.TypeMapEntry) (ast.TraversalResult, error) {
	if mode == ast.Exit {
		return ast.Continue, e.reduceMap()
	}
	return ast.Continue, nil
}

func (e *Engine) EmitAddressType(mode ast.TraversalMode, node *ast.AddressType) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}

	fields, err := e.stack.popDeclarations(len(node.Fields))
	if err != nil {
		return ast.Continue, err
	}
	base, err := e.stack.popIdentifier()
	if err != nil {
		return ast.Continue, err
	}
	e.stack.push(&TypeDescriptor{
		MainType: base.Unresolved,
		Address:  &AddressPayload{TypeName: node.TypeName, Fields: toFields(fields)},
	})
	return ast.Continue, nil
}

func (e *Engine) EmitAddressTypeField(mode ast.TraversalMode, node *ast.AddressTypeField) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}
	return ast.Continue, e.declare(node.Identifier.Node.Name.Value)
}

func (e *Engine) EmitMetaIdentifier(mode ast.TraversalMode, node *ast.MetaIdentifier) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		if node.Kind == ast.MetaByteString {
			e.stack.push(Identifier{Unresolved: "ByStr", Kind: TypeName})
			return ast.SkipChildren, nil
		}
		return ast.Continue, nil
	}

	switch node.Kind {
	case ast.MetaNameInNamespace:
		name, err := e.stack.popIdentifier()
		if err != nil {
			return ast.Continue, err
		}
		ns, err := e.stack.popIdentifier()
		if err != nil {
			return ast.Continue, err
		}
		e.stack.push(Identifier{Unresolved: ns.Unresolved + "." + name.Unresolved, Kind: TypeName})
	case ast.MetaNameInHexspace:
		name, err := e.stack.popIdentifier()
		if err != nil {
			return ast.Continue, err
		}
		e.stack.push(Identifier{Unresolved: node.Hexspace + "." + name.Unresolved, Kind: TypeName})
	}
	return ast.Continue, nil
}

func (e *Engine) EmitTypeNameIdentifier(mode ast.TraversalMode, node *ast.TypeNameIdentifier) (ast.TraversalResult, error) {
	kind := Unknown
	if node.Kind == ast.EventType {
		kind = Event
	}
	e.stack.push(Identifier{Unresolved: node.Value(), Kind: kind})
	return ast.SkipChildren, nil
}

func (e *Engine) EmitVariableIdentifier(mode ast.TraversalMode, node *ast.VariableIdentifier) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitByteStr(mode ast.TraversalMode, node *ast.ByteStr) (ast.TraversalResult, error) {
	return ast.Continue, nil
}
