package expression

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Engine is a wrapper around expr-lang/expr with a compiled-program cache
type Engine struct {
	programCache map[string]*vm.Program
	functions    map[string]func(params ...interface{}) (interface{}, error)
	mu           sync.RWMutex
}

// NewEngine creates a new expression engine
func NewEngine() *Engine {
	return &Engine{
		programCache: make(map[string]*vm.Program),
		functions:    make(map[string]func(params ...interface{}) (interface{}, error)),
	}
}

// Evaluate compiles (if needed) and runs an expression against the given environment
func (e *Engine) Evaluate(expression string, env map[string]interface{}) (interface{}, error) {
	program, err := e.getProgram(expression, env)
	if err != nil {
		return nil, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	return output, nil
}

// EvaluateBool runs a boolean expression. Non-boolean results are an error.
func (e *Engine) EvaluateBool(expression string, env map[string]interface{}) (bool, error) {
	out, err := e.Evaluate(expression, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, want bool", expression, out)
	}
	return b, nil
}

// RegisterFunction registers a custom function
func (e *Engine) RegisterFunction(name string, fn func(params ...interface{}) (interface{}, error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.functions == nil {
		e.functions = make(map[string]func(params ...interface{}) (interface{}, error))
	}
	e.functions[name] = fn
	// Clear cache as available functions changed
	e.programCache = make(map[string]*vm.Program)
}

func (e *Engine) getProgram(expression string, env map[string]interface{}) (*vm.Program, error) {
	e.mu.RLock()
	if prog, ok := e.programCache[expression]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Double check
	if prog, ok := e.programCache[expression]; ok {
		return prog, nil
	}

	options := []expr.Option{
		expr.Env(env),
		expr.Function("LOWER", func(params ...interface{}) (interface{}, error) {
			s, err := stringArg("LOWER", params, 0)
			if err != nil {
				return nil, err
			}
			return strings.ToLower(s), nil
		}),
		expr.Function("UPPER", func(params ...interface{}) (interface{}, error) {
			s, err := stringArg("UPPER", params, 0)
			if err != nil {
				return nil, err
			}
			return strings.ToUpper(s), nil
		}),
		// CONTAINS(haystack, needle) is case-insensitive
		expr.Function("CONTAINS", func(params ...interface{}) (interface{}, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("CONTAINS expects 2 arguments, got %d", len(params))
			}
			haystack, err := stringArg("CONTAINS", params, 0)
			if err != nil {
				return nil, err
			}
			needle, err := stringArg("CONTAINS", params, 1)
			if err != nil {
				return nil, err
			}
			return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)), nil
		}),
		// CONTAINS_ALL(haystack, needle...) is true when every needle occurs
		expr.Function("CONTAINS_ALL", func(params ...interface{}) (interface{}, error) {
			if len(params) < 2 {
				return nil, fmt.Errorf("CONTAINS_ALL expects at least 2 arguments, got %d", len(params))
			}
			haystack, err := stringArg("CONTAINS_ALL", params, 0)
			if err != nil {
				return nil, err
			}
			haystack = strings.ToLower(haystack)
			for i := 1; i < len(params); i++ {
				needle, err := stringArg("CONTAINS_ALL", params, i)
				if err != nil {
					return nil, err
				}
				if !strings.Contains(haystack, strings.ToLower(needle)) {
					return false, nil
				}
			}
			return true, nil
		}),
	}

	// Add custom functions
	for name, fn := range e.functions {
		options = append(options, expr.Function(name, fn))
	}

	// Compile
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}

// Validate compiles an expression without running it
func (e *Engine) Validate(expression string, env map[string]interface{}) error {
	_, err := e.getProgram(expression, env)
	return err
}

func stringArg(fn string, params []interface{}, i int) (string, error) {
	if i >= len(params) {
		return "", fmt.Errorf("%s: missing argument %d", fn, i+1)
	}
	switch v := params[i].(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
