package lowering

import (
	"regexp"
	"strconv"

	"scilla/contract"
	"scilla/internal/errors"
)

var scalarTypes = map[string]contract.Type{
	"Int32":   contract.Int32,
	"Int64":   contract.Int64,
	"Int128":  contract.Int128,
	"Int256":  contract.Int256,
	"Uint32":  contract.Uint32,
	"Uint64":  contract.Uint64,
	"Uint128": contract.Uint128,
	"Uint256": contract.Uint256,
	"String":  contract.String,
	"BNum":    contract.BNum,
	"Bool":    contract.Bool,
	"ByStr":   contract.ByStr,
}

var byteStringSize = regexp.MustCompile(`^ByStr([0-9]+)$`)

// resolve turns a finished descriptor into its final type.
func (e *Engine) resolve(d *TypeDescriptor) (contract.Type, error) {
	if d.Address != nil && d.MainType != "ByStr20" {
		return nil, errors.InvalidAddress(e.position(), d.MainType)
	}

	if t, ok := scalarTypes[d.MainType]; ok {
		if err := e.arity(d, 0); err != nil {
			return nil, err
		}
		return t, nil
	}

	switch d.MainType {
	case "Map":
		args, err := e.resolveArgs(d, 2)
		if err != nil {
			return nil, err
		}
		return contract.Map(args[0], args[1]), nil
	case "Pair":
		args, err := e.resolveArgs(d, 2)
		if err != nil {
			return nil, err
		}
		return contract.Pair(args[0], args[1]), nil
	case "Option":
		args, err := e.resolveArgs(d, 1)
		if err != nil {
			return nil, err
		}
		return contract.Option(args[0]), nil
	case "List":
		args, err := e.resolveArgs(d, 1)
		if err != nil {
			return nil, err
		}
		return contract.List(args[0]), nil
	case "ByStr20":
		if err := e.arity(d, 0); err != nil {
			return nil, err
		}
		if d.Address == nil {
			return contract.ByStr20, nil
		}
		return contract.ByStr20With(d.Address.TypeName, d.Address.Fields...), nil
	}

	if m := byteStringSize.FindStringSubmatch(d.MainType); m != nil {
		if err := e.arity(d, 0); err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(m[1])
		if err != nil || size == 0 {
			return nil, errors.ByteStringWidth(e.position(), d.MainType)
		}
		return contract.ByStrX(size), nil
	}

	// User-defined and imported ADTs take no type arguments.
	if err := e.arity(d, 0); err != nil {
		return nil, err
	}
	return contract.Other(d.MainType), nil
}

func (e *Engine) arity(d *TypeDescriptor, want int) error {
	if len(d.SubTypes) != want {
		return errors.TypeArity(e.position(), d.MainType, want, len(d.SubTypes))
	}
	return nil
}

func (e *Engine) resolveArgs(d *TypeDescriptor, want int) ([]contract.Type, error) {
	if err := e.arity(d, want); err != nil {
		return nil, err
	}
	args := make([]contract.Type, want)
	for i, sub := range d.SubTypes {
		t, err := e.resolve(sub)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	return args, nil
}
