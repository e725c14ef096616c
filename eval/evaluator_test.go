/*
File    : gomixlite/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a minimal IOHost for tests: Write appends to Output, ReadLine
// drains Inputs in order, ReadFile serves from Files.
type fakeHost struct {
	Output []string
	Inputs []string
	Files  map[string]string
}

func newFakeHost() *fakeHost { return &fakeHost{Files: map[string]string{}} }

func (h *fakeHost) Write(s string) { h.Output = append(h.Output, s) }

func (h *fakeHost) ReadLine() (string, error) {
	if len(h.Inputs) == 0 {
		return "", errors.New("no more input")
	}
	line := h.Inputs[0]
	h.Inputs = h.Inputs[1:]
	return line, nil
}

func (h *fakeHost) ClearScreen() {}

func (h *fakeHost) ReadFile(path string) (string, error) {
	src, ok := h.Files[path]
	if !ok {
		return "", errors.New("no such file: " + path)
	}
	return src, nil
}

func run(t *testing.T, src string) (string, *fakeHost) {
	t.Helper()
	host := newFakeHost()
	ev := New(host)
	value, err := ev.Run("<test>", src, ev.Global)
	require.Nil(t, err, "unexpected error: %v", err)
	return value.ToString(), host
}

func runErr(t *testing.T, src string) string {
	t.Helper()
	host := newFakeHost()
	ev := New(host)
	_, err := ev.Run("<test>", src, ev.Global)
	require.NotNil(t, err)
	return err.Details
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	value, _ := run(t, "VAR a = 1 + 2 * 3\na")
	assert.Equal(t, "7", value)
}

func TestEval_StringRepeat(t *testing.T) {
	value, _ := run(t, `VAR s = "ab" * 3
s`)
	assert.Equal(t, "ababab", value)
}

func TestEval_ListAppend(t *testing.T) {
	value, _ := run(t, `VAR L = [1, 2, 3]
APPEND(L, 4)
L`)
	assert.Equal(t, "[1, 2, 3, 4]", value)
}

func TestEval_RecursiveFibonacci(t *testing.T) {
	value, _ := run(t, `FUN fib(n) -> IF n < 2 THEN n ELSE fib(n-1) + fib(n-2)
fib(10)`)
	assert.Equal(t, "55", value)
}

func TestEval_BlockFunctionWithWhileAndReturn(t *testing.T) {
	value, _ := run(t, `FUN count(n)
  VAR i = 0
  WHILE i < n THEN
    VAR i = i + 1
  END
  RETURN i
END
count(5)`)
	assert.Equal(t, "5", value)
}

func TestEval_DivisionByZero(t *testing.T) {
	details := runErr(t, "1 / 0")
	assert.Equal(t, "Division by 0", details)
}

func TestEval_ScopeLookupIsDynamicAtCallTime(t *testing.T) {
	value, _ := run(t, `VAR x = 1
FUN f() -> x
VAR x = 2
f()`)
	assert.Equal(t, "2", value)
}

func TestEval_ForLoopAccumulatesOneLineBody(t *testing.T) {
	value, _ := run(t, "FOR i = 0 TO 3 THEN i*i")
	assert.Equal(t, "[0, 1, 4]", value)
}

func TestEval_ForBlockFormReturnsNull(t *testing.T) {
	value, host := run(t, "FOR i = 0 TO 3 THEN\n  PRINT(i)\nEND")
	assert.Equal(t, "0", value)
	assert.Equal(t, []string{"0", "1", "2"}, host.Output)
}

func TestEval_BreakOnlyExitsNearestLoop(t *testing.T) {
	value, _ := run(t, `FOR i = 0 TO 5 THEN
  IF i == 2 THEN
    BREAK
  END
END
VAR out = []
FOR j = 0 TO 3 THEN
  IF j == 1 THEN
    CONTINUE
  END
  APPEND(out, j)
END
out`)
	assert.Equal(t, "[0, 2]", value)
}

func TestEval_VarAssignmentIsAlwaysLocal(t *testing.T) {
	value, _ := run(t, `VAR x = 1
FUN f()
  VAR x = 99
END
f()
x`)
	assert.Equal(t, "1", value)
}

func TestEval_UndefinedVariable(t *testing.T) {
	details := runErr(t, "y")
	assert.Equal(t, "'y' is not defined", details)
}

func TestEval_ListIndexOutOfBounds(t *testing.T) {
	details := runErr(t, "[1,2,3] / 5")
	assert.Equal(t, "index out of bounds", details)
}

func TestEval_RunFileSharesGlobalScope(t *testing.T) {
	host := newFakeHost()
	host.Files["lib.gml"] = "VAR shared = 42"
	ev := New(host)
	_, err := ev.Run("<test>", `RUN("lib.gml")
shared`, ev.Global)
	require.Nil(t, err)
	value, _ := ev.Global.Table.Get("shared")
	assert.Equal(t, "42", value.ToString())
}

func TestEval_Determinism(t *testing.T) {
	src := "VAR a = 2 ^ 10\na"
	v1, _ := run(t, src)
	v2, _ := run(t, src)
	assert.Equal(t, v1, v2)
}

func TestEval_InputReadsFromHost(t *testing.T) {
	host := newFakeHost()
	host.Inputs = []string{"hello"}
	ev := New(host)
	value, err := ev.Run("<test>", "INPUT()", ev.Global)
	require.Nil(t, err)
	assert.Equal(t, "hello", value.ToString())
}

func TestEval_PrintWritesViaHost(t *testing.T) {
	_, host := run(t, `PRINT("hi")`)
	require.Len(t, host.Output, 1)
	assert.True(t, strings.Contains(host.Output[0], "hi"))
}
