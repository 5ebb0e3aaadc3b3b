// Copyright 2026 The Conjure-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serialize

import (
	"encoding/json"

	"github.com/conjure-cp/conjure-go/ast"
)

// MarshalExpression encodes an Expression as a discriminated union keyed by
// its variant name (ast.ExprKind.String()), e.g. {"Sum": {"Args": [...]}},
// {"Ineq": {"A": ..., "B": ..., "K": -1}}. Variadic variants carry "Args";
// binary variants carry "Lhs"/"Rhs" or the variant's own field names.
func MarshalExpression(e ast.Expression) ([]byte, error) {
	switch v := e.(type) {
	case ast.ConstantInt:
		return singleton("ConstantInt", int(v))
	case ast.ConstantBool:
		return singleton("ConstantBool", bool(v))
	case ast.Reference:
		nameJSON, err := MarshalName(v.Name)
		if err != nil {
			return nil, err
		}
		return objectSingleton("Reference", "Name", jsonRaw(nameJSON))
	case ast.Sum:
		return marshalArgsVariant("Sum", v.Args)
	case ast.Not:
		argJSON, err := MarshalExpression(v.Arg)
		if err != nil {
			return nil, err
		}
		return objectSingleton("Not", "Arg", jsonRaw(argJSON))
	case ast.And:
		return marshalArgsVariant("And", v.Args)
	case ast.Or:
		return marshalArgsVariant("Or", v.Args)
	case ast.Eq:
		return marshalBinary("Eq", v.Lhs, v.Rhs)
	case ast.Neq:
		return marshalBinary("Neq", v.Lhs, v.Rhs)
	case ast.Geq:
		return marshalBinary("Geq", v.Lhs, v.Rhs)
	case ast.Leq:
		return marshalBinary("Leq", v.Lhs, v.Rhs)
	case ast.Gt:
		return marshalBinary("Gt", v.Lhs, v.Rhs)
	case ast.Lt:
		return marshalBinary("Lt", v.Lhs, v.Rhs)
	case ast.SumGeq:
		return marshalSumRhs("SumGeq", v.Args, v.Rhs)
	case ast.SumLeq:
		return marshalSumRhs("SumLeq", v.Args, v.Rhs)
	case ast.Ineq:
		aJSON, err := MarshalExpression(v.A)
		if err != nil {
			return nil, err
		}
		bJSON, err := MarshalExpression(v.B)
		if err != nil {
			return nil, err
		}
		data, err := object(map[string]interface{}{
			"A": jsonRaw(aJSON),
			"B": jsonRaw(bJSON),
			"K": v.K,
		})
		if err != nil {
			return nil, err
		}
		return singleton("Ineq", jsonRaw(data))
	default:
		return nil, &UnknownDiscriminatorError{Kind: "Expression", Key: e.Kind().String()}
	}
}

// objectSingleton wraps a single field into a one-field object, then into a
// discriminated-union singleton, e.g. {"Not": {"Arg": ...}}.
func objectSingleton(discriminator, fieldName string, fieldValue interface{}) ([]byte, error) {
	data, err := object(map[string]interface{}{fieldName: fieldValue})
	if err != nil {
		return nil, err
	}
	return singleton(discriminator, jsonRaw(data))
}

func marshalArgsVariant(discriminator string, args []ast.Expression) ([]byte, error) {
	argsJSON, err := marshalExpressionList(args)
	if err != nil {
		return nil, err
	}
	return objectSingleton(discriminator, "Args", argsJSON)
}

func marshalBinary(discriminator string, lhs, rhs ast.Expression) ([]byte, error) {
	lhsJSON, err := MarshalExpression(lhs)
	if err != nil {
		return nil, err
	}
	rhsJSON, err := MarshalExpression(rhs)
	if err != nil {
		return nil, err
	}
	data, err := object(map[string]interface{}{
		"Lhs": jsonRaw(lhsJSON),
		"Rhs": jsonRaw(rhsJSON),
	})
	if err != nil {
		return nil, err
	}
	return singleton(discriminator, jsonRaw(data))
}

func marshalSumRhs(discriminator string, args []ast.Expression, rhs ast.Expression) ([]byte, error) {
	argsJSON, err := marshalExpressionList(args)
	if err != nil {
		return nil, err
	}
	rhsJSON, err := MarshalExpression(rhs)
	if err != nil {
		return nil, err
	}
	data, err := object(map[string]interface{}{
		"Args": argsJSON,
		"Rhs":  jsonRaw(rhsJSON),
	})
	if err != nil {
		return nil, err
	}
	return singleton(discriminator, jsonRaw(data))
}

// marshalExpressionList encodes a slice of Expressions preserving
// declaration order (spec.md §6: "arrays preserve declaration order").
func marshalExpressionList(args []ast.Expression) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(args))
	for i, a := range args {
		data, err := MarshalExpression(a)
		if err != nil {
			return nil, err
		}
		out[i] = jsonRaw(data)
	}
	return out, nil
}

// UnmarshalExpression decodes the form MarshalExpression produces.
func UnmarshalExpression(data []byte) (ast.Expression, error) {
	key, value, err := decodeSingleton(data)
	if err != nil {
		return nil, err
	}
	switch key {
	case "ConstantInt":
		var v int
		if err := unmarshalInto(value, &v); err != nil {
			return nil, err
		}
		return ast.NewConstantInt(v), nil
	case "ConstantBool":
		var v bool
		if err := unmarshalInto(value, &v); err != nil {
			return nil, err
		}
		return ast.NewConstantBool(v), nil
	case "Reference":
		var wire struct {
			Name json.RawMessage
		}
		if err := unmarshalInto(value, &wire); err != nil {
			return nil, err
		}
		name, err := UnmarshalName(wire.Name)
		if err != nil {
			return nil, err
		}
		return ast.NewReference(name), nil
	case "Sum":
		args, err := unmarshalArgsField(value)
		if err != nil {
			return nil, err
		}
		return ast.NewSum(args...), nil
	case "Not":
		var wire struct {
			Arg json.RawMessage
		}
		if err := unmarshalInto(value, &wire); err != nil {
			return nil, err
		}
		arg, err := UnmarshalExpression(wire.Arg)
		if err != nil {
			return nil, err
		}
		return ast.NewNot(arg), nil
	case "And":
		args, err := unmarshalArgsField(value)
		if err != nil {
			return nil, err
		}
		return ast.NewAnd(args...), nil
	case "Or":
		args, err := unmarshalArgsField(value)
		if err != nil {
			return nil, err
		}
		return ast.NewOr(args...), nil
	case "Eq", "Neq", "Geq", "Leq", "Gt", "Lt":
		lhs, rhs, err := unmarshalBinaryFields(value)
		if err != nil {
			return nil, err
		}
		switch key {
		case "Eq":
			return ast.NewEq(lhs, rhs), nil
		case "Neq":
			return ast.NewNeq(lhs, rhs), nil
		case "Geq":
			return ast.NewGeq(lhs, rhs), nil
		case "Leq":
			return ast.NewLeq(lhs, rhs), nil
		case "Gt":
			return ast.NewGt(lhs, rhs), nil
		default: // "Lt"
			return ast.NewLt(lhs, rhs), nil
		}
	case "SumGeq", "SumLeq":
		var wire struct {
			Args []json.RawMessage
			Rhs  json.RawMessage
		}
		if err := unmarshalInto(value, &wire); err != nil {
			return nil, err
		}
		args, err := unmarshalExpressionSlice(wire.Args)
		if err != nil {
			return nil, err
		}
		rhs, err := UnmarshalExpression(wire.Rhs)
		if err != nil {
			return nil, err
		}
		if key == "SumGeq" {
			return ast.NewSumGeq(args, rhs), nil
		}
		return ast.NewSumLeq(args, rhs), nil
	case "Ineq":
		var wire struct {
			A json.RawMessage
			B json.RawMessage
			K int
		}
		if err := unmarshalInto(value, &wire); err != nil {
			return nil, err
		}
		a, err := UnmarshalExpression(wire.A)
		if err != nil {
			return nil, err
		}
		b, err := UnmarshalExpression(wire.B)
		if err != nil {
			return nil, err
		}
		return ast.NewIneq(a, b, wire.K), nil
	default:
		return nil, &UnknownDiscriminatorError{Kind: "Expression", Key: key}
	}
}

func unmarshalArgsField(value json.RawMessage) ([]ast.Expression, error) {
	var wire struct {
		Args []json.RawMessage
	}
	if err := unmarshalInto(value, &wire); err != nil {
		return nil, err
	}
	return unmarshalExpressionSlice(wire.Args)
}

func unmarshalBinaryFields(value json.RawMessage) (lhs, rhs ast.Expression, err error) {
	var wire struct {
		Lhs json.RawMessage
		Rhs json.RawMessage
	}
	if err := unmarshalInto(value, &wire); err != nil {
		return nil, nil, err
	}
	lhs, err = UnmarshalExpression(wire.Lhs)
	if err != nil {
		return nil, nil, err
	}
	rhs, err = UnmarshalExpression(wire.Rhs)
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func unmarshalExpressionSlice(raw []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(raw))
	for i, r := range raw {
		e, err := UnmarshalExpression(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
