package lowering

import (
	"strings"

	"scilla/contract"
	"scilla/internal/ast"
	"scilla/internal/errors"
)

func (e *Engine) EmitProgram(mode ast.TraversalMode, node *ast.Program) (ast.TraversalResult, error) {
	return ast.Continue, nil
}

func (e *Engine) EmitImportDeclarations(mode ast.TraversalMode, node *ast.ImportDeclarations) (ast.TraversalResult, error) {
	return ast.Continue, nil
}

func (e *Engine) EmitImportedName(mode ast.TraversalMode, node *ast.ImportedName) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}

	var alias Identifier
	if node.Alias != nil {
		var err error
		if alias, err = e.stack.popIdentifier(); err != nil {
			return ast.Continue, err
		}
	}
	name, err := e.stack.popIdentifier()
	if err != nil {
		return ast.Continue, err
	}

	e.contract.Imports = append(e.contract.Imports, contract.Import{Name: name.Unresolved, Alias: alias.Unresolved})
	e.record(ImportSymbol, name.Unresolved, alias.Unresolved)
	return ast.Continue, nil
}

// EmitLibraryDefinition visits the library's definitions itself so that they
// are lowered inside the library namespace.
func (e *Engine) EmitLibraryDefinition(mode ast.TraversalMode, node *ast.LibraryDefinition) (ast.TraversalResult, error) {
	if mode == ast.Exit {
		return ast.Continue, nil
	}

	name := node.Name.Node.Value()
	e.contract.Library = name
	e.pushNamespace(name)
	defer e.popNamespace()

	for _, def := range node.Definitions {
		if ret, err := def.Visit(e); err != nil || ret != ast.Continue {
			return ret, err
		}
	}
	return ast.SkipChildren, nil
}

func (e *Engine) EmitLibraryEntry(mode ast.TraversalMode, node ast.LibraryEntry) (ast.TraversalResult, error) {
	switch n := node.(type) {
	case *ast.LetDefinition:
		return ast.SkipChildren, nil
	case *ast.TypeDefinition:
		if mode == ast.Exit {
			return ast.Continue, e.finishTypeDefinition(n)
		}
	}
	return ast.Continue, nil
}

func (e *Engine) finishTypeDefinition(n *ast.TypeDefinition) error {
	clauses, err := e.stack.popDescriptors(len(n.Clauses))
	if err != nil {
		return err
	}
	name, err := e.stack.popIdentifier()
	if err != nil {
		return err
	}

	def := contract.TypeDefinition{Namespace: e.currentNamespace(), Name: name.Unresolved}
	for _, clause := range clauses {
		ctor := contract.Constructor{Name: clause.MainType}
		for _, arg := range clause.SubTypes {
			t, err := e.resolve(arg)
			if err != nil {
				return err
			}
			ctor.Args = append(ctor.Args, t)
		}
		def.Constructors = append(def.Constructors, ctor)
	}

	e.contract.Types = append(e.contract.Types, def)
	e.record(TypeSymbol, def.Name, constructorNames(def.Constructors))
	return nil
}

func constructorNames(ctors []contract.Constructor) string {
	names := make([]string, len(ctors))
	for i, c := range ctors {
		names[i] = c.Name
	}
	return "| " + strings.Join(names, " | ")
}

func (e *Engine) EmitTypeAlternativeClause(mode ast.TraversalMode, node *ast.TypeAlternativeClause) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}

	args, err := e.stack.popDescriptors(len(node.Arguments))
	if err != nil {
		return ast.Continue, err
	}
	ctor, err := e.stack.popIdentifier()
	if err != nil {
		return ast.Continue, err
	}

	desc := &TypeDescriptor{MainType: ctor.Unresolved, SubTypes: args}
	e.stack.push(desc)
	e.record(ConstructorSymbol, ctor.Unresolved, desc.String())
	return ast.Continue, nil
}

// EmitContractDefinition visits the contract's parameters, fields and
// components itself. The constraint is not part of the surface and is never
// visited.
func (e *Engine) EmitContractDefinition(mode ast.TraversalMode, node *ast.ContractDefinition) (ast.TraversalResult, error) {
	if mode == ast.Exit {
		return ast.Continue, nil
	}

	name := node.Name.Node.Value()
	e.contract.Name = name
	e.pushNamespace(name)
	defer e.popNamespace()

	if ret, err := node.Parameters.Visit(e); err != nil || ret != ast.Continue {
		return ret, err
	}
	params, err := e.stack.popDeclarations(len(node.Parameters.Node.Parameters))
	if err != nil {
		return ast.Continue, err
	}
	e.contract.InitParams = toFields(params)

	for _, field := range node.Fields {
		if ret, err := field.Visit(e); err != nil || ret != ast.Continue {
			return ret, err
		}
	}
	for _, component := range node.Components {
		if ret, err := component.Visit(e); err != nil || ret != ast.Continue {
			return ret, err
		}
	}
	return ast.SkipChildren, nil
}

func (e *Engine) EmitWithConstraint(mode ast.TraversalMode, node *ast.WithConstraint) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}

func (e *Engine) EmitContractField(mode ast.TraversalMode, node *ast.ContractField) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		return ast.Continue, nil
	}

	decl, err := e.stack.popDeclaration()
	if err != nil {
		return ast.Continue, err
	}
	e.contract.Fields = append(e.contract.Fields, contract.NewField(decl.Name, decl.Type))
	e.record(FieldSymbol, decl.Name, decl.Type.String())
	return ast.Continue, nil
}

func (e *Engine) EmitComponentDefinition(mode ast.TraversalMode, node *ast.ComponentDefinition) (ast.TraversalResult, error) {
	if mode == ast.Enter {
		e.inComponent = true
		return ast.Continue, nil
	}
	e.inComponent = false

	params, err := e.stack.popDeclarations(len(node.Parameters.Node.Parameters))
	if err != nil {
		return ast.Continue, err
	}
	id, err := e.stack.popIdentifier()
	if err != nil {
		return ast.Continue, err
	}
	if id.Kind != ComponentName {
		return ast.Continue, errors.Internal("expected component name found %s", id.Kind)
	}

	id.IsDefinition = true
	id.Resolved = qualify(e.currentNamespace(), id.Unresolved)
	t := contract.NewTransition(id.Unresolved, toFields(params)...)

	if node.Kind == ast.Procedure {
		id.Kind = ProcedureName
		e.contract.Procedures = append(e.contract.Procedures, t)
		e.record(ProcedureSymbol, t.Name, t.String())
	} else {
		id.Kind = TransitionName
		e.contract.Transitions = append(e.contract.Transitions, t)
		e.record(TransitionSymbol, t.Name, t.String())
	}
	e.log.Debugf("%s %s has %d parameter(s)", id.Kind, id.QualifiedName(), len(t.Params))
	return ast.Continue, nil
}

func (e *Engine) EmitComponentID(mode ast.TraversalMode, node *ast.ComponentID) (ast.TraversalResult, error) {
	e.stack.push(Identifier{Unresolved: node.Name.Value, Kind: ComponentName})
	return ast.SkipChildren, nil
}

func (e *Engine) EmitComponentParameters(mode ast.TraversalMode, node *ast.ComponentParameters) (ast.TraversalResult, error) {
	return ast.Continue, nil
}

// EmitParameterPair records contract parameters as symbols once their
// declaration is on the stack. Component parameters are part of the
// component's signature instead.
func (e *Engine) EmitParameterPair(mode ast.TraversalMode, node *ast.ParameterPair) (ast.TraversalResult, error) {
	if mode == ast.Exit && !e.inComponent {
		decl, err := peekAs[VariableDeclaration](&e.stack, "variable declaration")
		if err != nil {
			return ast.Continue, err
		}
		e.record(InitParamSymbol, decl.Name, decl.Type.String())
	}
	return ast.Continue, nil
}

func (e *Engine) EmitComponentBody(mode ast.TraversalMode, node *ast.ComponentBody) (ast.TraversalResult, error) {
	return ast.SkipChildren, nil
}
