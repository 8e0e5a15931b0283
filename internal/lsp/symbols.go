package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scilla"
	"scilla/internal/ast"
	"scilla/internal/lowering"
)

var symbolKinds = map[lowering.SymbolKind]protocol.SymbolKind{
	lowering.InitParamSymbol:   protocol.SymbolKindVariable,
	lowering.FieldSymbol:       protocol.SymbolKindField,
	lowering.TransitionSymbol:  protocol.SymbolKindMethod,
	lowering.ProcedureSymbol:   protocol.SymbolKindFunction,
	lowering.TypeSymbol:        protocol.SymbolKindEnum,
	lowering.ConstructorSymbol: protocol.SymbolKindEnumMember,
	lowering.ImportSymbol:      protocol.SymbolKindModule,
}

// collectDocumentSymbols builds the outline: imports, then the library with
// its types and their constructors, then the contract with its parameters,
// fields and components.
func collectDocumentSymbols(a *scilla.Analysis) []protocol.DocumentSymbol {
	var (
		imports []protocol.DocumentSymbol
		library *protocol.DocumentSymbol
		ctors   []protocol.DocumentSymbol
	)

	if lib := a.Program.Library; lib != nil {
		library = &protocol.DocumentSymbol{
			Name:           lib.Node.Name.Node.Value(),
			Detail:         ptrString("library"),
			Kind:           protocol.SymbolKindNamespace,
			Range:          toRange(lib.Start, lib.End),
			SelectionRange: toRange(lib.Node.Name.Start, lib.Node.Name.End),
		}
	}

	c := a.Program.Contract
	contract := protocol.DocumentSymbol{
		Name:           c.Node.Name.Node.Value(),
		Detail:         ptrString("contract"),
		Kind:           protocol.SymbolKindClass,
		Range:          toRange(c.Start, c.End),
		SelectionRange: toRange(c.Node.Name.Start, c.Node.Name.End),
	}

	for _, sym := range a.Symbols {
		ds := documentSymbol(sym)
		switch sym.Kind {
		case lowering.ImportSymbol:
			imports = append(imports, ds)
		case lowering.ConstructorSymbol:
			ctors = append(ctors, ds)
		case lowering.TypeSymbol:
			ds.Children, ctors = ctors, nil
			if library != nil {
				library.Children = append(library.Children, ds)
			}
		default:
			contract.Children = append(contract.Children, ds)
		}
	}

	out := append([]protocol.DocumentSymbol{}, imports...)
	if library != nil {
		out = append(out, *library)
	}
	return append(out, contract)
}

func documentSymbol(sym lowering.Symbol) protocol.DocumentSymbol {
	r := toRange(sym.Start, sym.End)
	ds := protocol.DocumentSymbol{
		Name:           sym.Name,
		Kind:           symbolKinds[sym.Kind],
		Range:          r,
		SelectionRange: r,
	}
	if sym.Detail != "" {
		ds.Detail = ptrString(sym.Detail)
	}
	return ds
}

// toPosition converts a 1-based source position to a 0-based LSP position.
func toPosition(p ast.Position) protocol.Position {
	if !p.IsValid() {
		return protocol.Position{}
	}
	return protocol.Position{Line: uint32(p.Line - 1), Character: uint32(max(0, p.Column-1))}
}

func toRange(start, end ast.Position) protocol.Range {
	return protocol.Range{Start: toPosition(start), End: toPosition(end)}
}
