package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/parser"
)

// run parses and executes src, returning everything written via print.
func run(t *testing.T, src string) string {
	t.Helper()
	stmts, err := parser.Parse(src)
	require.NoError(t, err)
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""), nil)
	require.NoError(t, it.Run(stmts))
	return out.String()
}

// TestEndToEndScenarios exercises the six source/stdout pairs from spec.md
// §8 verbatim.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "scoped integers",
			src:      `int x = 100; print(x); ComeAndDo t(){ int x = 42; print(x); } t(); print(x);`,
			expected: "100\n42\n100\n",
		},
		{
			name:     "short-circuit and promotion",
			src:      `int a = 5; int c = 0; print(a > 0 && c > 0); print(!c); float f = 1; print(f + 2);`,
			expected: "0\n1\n3\n",
		},
		{
			name:     "array literal, write, read",
			src:      `int arr[] = {1,2,3,4,5}; arr[2] = 42; print(arr[2]); print(arr[0]);`,
			expected: "42\n1\n",
		},
		{
			name: "single inheritance and method dispatch",
			src: `
			class A { int v; ComeAndDo show(){ print(v); } }
			class B : A { ComeAndDo init(int x){ v = x; } }
			B b(7); b.show();
			`,
			expected: "7\n",
		},
		{
			name: "object array with fields and method",
			src: `
			class P { string n; ComeAndDo greet(){ print(n); } }
			P p[2]; p[0].n = "Alice"; p[1].n = "Bob"; p[0].greet(); p[1].greet();
			`,
			expected: "Alice\nBob\n",
		},
		{
			name:     "string concatenation across types",
			src:      `string s = "x=" + 5; print(s);`,
			expected: "x=5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.src))
		})
	}
}

// TestReadAfterWriteSameScope covers invariant 3: a name read immediately
// after being written in the same scope returns the written value.
func TestReadAfterWriteSameScope(t *testing.T) {
	assert.Equal(t, "9\n", run(t, `int x = 9; print(x);`))
	assert.Equal(t, "9\n", run(t, `float x = 9; print(x);`))
	assert.Equal(t, "hi\n", run(t, `string x = "hi"; print(x);`))
}

// TestIntegerWriteNeverWritesThrough exercises the §4.4/§9 asymmetry: an
// integer write inside a function always lands in the innermost frame even
// when a same-named integer already exists in an enclosing scope, while a
// string write to an existing outer name writes through.
func TestIntegerWriteNeverWritesThrough(t *testing.T) {
	out := run(t, `
	int x = 1;
	ComeAndDo f() { x = 2; print(x); }
	f();
	print(x);
	`)
	assert.Equal(t, "2\n1\n", out)
}

func TestStringWriteThroughToEnclosingScope(t *testing.T) {
	out := run(t, `
	string s = "outer";
	ComeAndDo f() { s = "inner"; }
	f();
	print(s);
	`)
	assert.Equal(t, "inner\n", out)
}

// TestBaseFirstFieldUnionAndOverride covers invariant 4.
func TestBaseFirstFieldUnionAndOverride(t *testing.T) {
	out := run(t, `
	class A { int a = 1; int shared = 10; }
	class B : A { int b = 2; int shared = 20; }
	B x;
	print(x.a);
	print(x.b);
	print(x.shared);
	`)
	assert.Equal(t, "1\n2\n20\n", out)
}

// TestArithmeticResultTypePromotion covers invariant 5.
func TestArithmeticResultTypePromotion(t *testing.T) {
	assert.Equal(t, "7\n", run(t, `print(3 + 4);`))
	assert.Equal(t, "7\n", run(t, `print(3.0 + 4);`))
}

// TestShortCircuitDoesNotEvaluateRHS covers invariant 6 by using division
// by zero on the would-be-skipped side: if it were evaluated, the program
// would halt with an ArithmeticError instead of printing.
func TestShortCircuitDoesNotEvaluateRHS(t *testing.T) {
	assert.Equal(t, "0\n", run(t, `int z = 0; print(z > 0 && (1 / z) > 0);`))
	assert.Equal(t, "1\n", run(t, `int z = 1; print(z > 0 || (1 / (z - 1)) > 0);`))
}

// TestArrayElementWritesAreIdempotent covers invariant 7.
func TestArrayElementWritesAreIdempotent(t *testing.T) {
	out := run(t, `
	int arr[3];
	arr[1] = 5;
	arr[1] = 5;
	print(arr[1]);
	`)
	assert.Equal(t, "5\n", out)
}

// TestConstructorFieldReadBack covers invariant 8.
func TestConstructorFieldReadBack(t *testing.T) {
	out := run(t, `
	class Point { int x; int y; ComeAndDo init(int a, int b) { x = a; y = b; } }
	Point p(3, 4);
	print(p.x);
	print(p.y);
	`)
	assert.Equal(t, "3\n4\n", out)
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	_, err := parser.Parse(`int z = 0; print(1 / z);`)
	require.NoError(t, err)
	stmts, _ := parser.Parse(`int z = 0; print(1 / z);`)
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""), nil)
	err = it.Run(stmts)
	require.Error(t, err)
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	stmts, err := parser.Parse(`print(undefined_name);`)
	require.NoError(t, err)
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""), nil)
	require.Error(t, it.Run(stmts))
}

func TestArrayBoundsCheckFails(t *testing.T) {
	stmts, err := parser.Parse(`int arr[2]; print(arr[5]);`)
	require.NoError(t, err)
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""), nil)
	require.Error(t, it.Run(stmts))
}

func TestMissingBaseClassIsNameError(t *testing.T) {
	stmts, err := parser.Parse(`class B : Ghost { int v; } B b;`)
	require.NoError(t, err)
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""), nil)
	require.Error(t, it.Run(stmts))
}
