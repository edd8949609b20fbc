package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"stekk/parser"
	"stekk/value"
)

// mockEnv is a minimal value.EnvOps backed by a plain slice stack and
// name map, standing in for eval.Environment so Direct built-ins can be
// exercised without importing package eval (which itself imports
// builtins, so a direct dependency here would cycle).
type mockEnv struct {
	stack   []value.Value
	names   map[string]value.Value
	printed []string
	toRead  string
}

func newMockEnv() *mockEnv {
	return &mockEnv{names: make(map[string]value.Value)}
}

func (m *mockEnv) Push(v value.Value) { m.stack = append(m.stack, v) }
func (m *mockEnv) Pop() value.Value {
	if len(m.stack) == 0 {
		return value.N
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}
func (m *mockEnv) StackLen() int      { return len(m.stack) }
func (m *mockEnv) Stack() *value.List { return value.NewList(m.stack) }
func (m *mockEnv) SetName(name string, v value.Value) { m.names[name] = v }
func (m *mockEnv) GetName(name string) (value.Value, bool) {
	v, ok := m.names[name]
	return v, ok
}
func (m *mockEnv) Print(s string)            { m.printed = append(m.printed, s) }
func (m *mockEnv) Read() (string, error)     { return m.toRead, nil }
func (m *mockEnv) RegisterOp()               {}
func (m *mockEnv) FailIO(message string)     { panic(message) }
func (m *mockEnv) Invoke(callable value.Value) value.Value {
	w, ok := callable.(*value.BuiltinWord)
	if !ok {
		return value.N
	}
	if w.Direct != nil {
		w.Direct(m)
		return value.N
	}
	args := make([]value.Value, w.Arity)
	for i := w.Arity - 1; i >= 0; i-- {
		args[i] = m.Pop()
	}
	results, ok := w.Pure(args)
	if !ok {
		m.Push(value.T)
		return value.N
	}
	for _, r := range results {
		m.Push(r)
	}
	return value.N
}

func wordOf(t *testing.T, name string) *value.BuiltinWord {
	t.Helper()
	names := make(map[string]value.Value)
	Install(names)
	v, ok := names[name]
	if !ok {
		t.Fatalf("no built-in word named %q", name)
	}
	w, ok := v.(*value.BuiltinWord)
	if !ok {
		t.Fatalf("%q is not a *value.BuiltinWord", name)
	}
	return w
}

func callPure(t *testing.T, name string, args ...value.Value) ([]value.Value, bool) {
	t.Helper()
	w := wordOf(t, name)
	if w.Pure == nil {
		t.Fatalf("%q has no Pure function", name)
	}
	return w.Pure(args)
}

func TestArithmeticPureWords(t *testing.T) {
	tests := []struct {
		name string
		word string
		args []value.Value
		want value.Value
	}{
		{"add_ints", "+", []value.Value{value.NewInt(2), value.NewInt(3)}, value.NewInt(5)},
		{"add_promotes_to_float", "+", []value.Value{value.NewInt(2), value.NewFloat(0.5)}, value.NewFloat(2.5)},
		{"sub", "-", []value.Value{value.NewInt(10), value.NewInt(3)}, value.NewInt(7)},
		{"mul", "*", []value.Value{value.NewInt(4), value.NewInt(5)}, value.NewInt(20)},
		{"lt_true", "<", []value.Value{value.NewInt(1), value.NewInt(2)}, value.NewInt(1)},
		{"lt_false", "<", []value.Value{value.NewInt(2), value.NewInt(1)}, value.NewInt(0)},
		{"eq", "=", []value.Value{value.NewInt(2), value.NewInt(2)}, value.NewInt(1)},
		{"and_both_truthy", "and", []value.Value{value.NewInt(1), value.NewInt(1)}, value.NewInt(1)},
		{"or_one_truthy", "or", []value.Value{value.NewInt(0), value.NewInt(1)}, value.NewInt(1)},
		{"not_truthy", "not", []value.Value{value.NewInt(1)}, value.NewInt(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, ok := callPure(t, tt.word, tt.args...)
			if !ok || len(results) != 1 || !results[0].Equal(tt.want) {
				t.Errorf("%s(%v) = %v, %v, want %v, true", tt.word, tt.args, results, ok, tt.want)
			}
		})
	}
}

func TestIntDivisionByZeroFails(t *testing.T) {
	_, ok := callPure(t, "/i", value.NewInt(1), value.NewInt(0))
	if ok {
		t.Error("1 /i 0 should fail, not return a value")
	}
}

func TestFloatDivisionByZeroYieldsInf(t *testing.T) {
	results, ok := callPure(t, "/f", value.NewFloat(1), value.NewFloat(0))
	if !ok || len(results) != 1 {
		t.Fatalf("1.0 /f 0.0 = %v, %v, want a result", results, ok)
	}
	if results[0].String() != "inf" {
		t.Errorf("1.0 /f 0.0 = %v, want inf", results[0])
	}
}

func TestFloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	results, ok := callPure(t, "/i", value.NewInt(-7), value.NewInt(2))
	if !ok || !results[0].Equal(value.NewInt(-4)) {
		t.Errorf("-7 /i 2 = %v, %v, want -4, true", results, ok)
	}
}

func TestStackWords(t *testing.T) {
	tests := []struct {
		name string
		word string
		args []value.Value
		want []value.Value
	}{
		{"dup", "dup", []value.Value{value.NewInt(1)}, []value.Value{value.NewInt(1), value.NewInt(1)}},
		{"swap", "swap", []value.Value{value.NewInt(1), value.NewInt(2)}, []value.Value{value.NewInt(2), value.NewInt(1)}},
		{"over", "over", []value.Value{value.NewInt(1), value.NewInt(2)}, []value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(1)}},
		{"rot", "rot", []value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}, []value.Value{value.NewInt(3), value.NewInt(2), value.NewInt(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, ok := callPure(t, tt.word, tt.args...)
			if !ok || len(results) != len(tt.want) {
				t.Fatalf("%s(%v) = %v, %v", tt.word, tt.args, results, ok)
			}
			for i := range tt.want {
				if !results[i].Equal(tt.want[i]) {
					t.Errorf("result[%d] = %v, want %v", i, results[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuestionMarkDropsNoneOnly(t *testing.T) {
	results, ok := callPure(t, "?", value.N)
	if !ok || len(results) != 0 {
		t.Errorf("?($N) = %v, %v, want [], true", results, ok)
	}
	results, ok = callPure(t, "?", value.NewInt(5))
	if !ok || len(results) != 1 || !results[0].Equal(value.NewInt(5)) {
		t.Errorf("?(5) = %v, %v, want [5], true", results, ok)
	}
}

func TestGrabCollectsStackIntoAReversedList(t *testing.T) {
	env := newMockEnv()
	env.Push(value.N)
	env.Push(value.NewInt(1))
	env.Push(value.NewInt(2))
	env.Push(value.NewInt(3))
	wordOf(t, "grab").Direct(env)
	top := env.Pop()
	want := value.NewList([]value.Value{value.NewInt(3), value.NewInt(2), value.NewInt(1)})
	if !top.Equal(want) {
		t.Errorf("grab result = %v, want %v", top, want)
	}
}

func TestBloatPushesNThenOriginalOrder(t *testing.T) {
	env := newMockEnv()
	env.Push(value.NewList([]value.Value{value.NewInt(3), value.NewInt(2), value.NewInt(1)}))
	wordOf(t, "bloat").Direct(env)
	want := []value.Value{value.N, value.NewInt(1), value.NewInt(2), value.NewInt(3)}
	if len(env.stack) != len(want) {
		t.Fatalf("stack = %v, want %v", env.stack, want)
	}
	for i := range want {
		if !env.stack[i].Equal(want[i]) {
			t.Errorf("stack[%d] = %v, want %v", i, env.stack[i], want[i])
		}
	}
}

func TestCollectionsPureWords(t *testing.T) {
	list := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)})

	t.Run("len", func(t *testing.T) {
		results, ok := callPure(t, "len", list)
		if !ok || !results[0].Equal(value.NewInt(3)) {
			t.Errorf("len = %v, %v, want 3, true", results, ok)
		}
	})
	t.Run("sum", func(t *testing.T) {
		results, ok := callPure(t, "sum", list)
		if !ok || !results[0].Equal(value.NewInt(6)) {
			t.Errorf("sum = %v, %v, want 6, true", results, ok)
		}
	})
	t.Run("contains_found", func(t *testing.T) {
		results, ok := callPure(t, "contains", list, value.NewInt(2))
		if !ok || !results[0].Equal(value.NewInt(1)) {
			t.Errorf("contains = %v, %v, want 1, true", results, ok)
		}
	})
	t.Run("contains_range_membership", func(t *testing.T) {
		results, ok := callPure(t, "contains", value.NewRange(1, 3), value.NewInt(3))
		if !ok || !results[0].Equal(value.NewInt(1)) {
			t.Errorf("contains = %v, %v, want 1, true", results, ok)
		}
	})
	t.Run("range_length_is_inclusive", func(t *testing.T) {
		n, ok := length(value.NewRange(1, 3))
		if !ok || n != 3 {
			t.Errorf("length(1..3) = %v, %v, want 3, true", n, ok)
		}
	})
	t.Run("concat_strings", func(t *testing.T) {
		results, ok := callPure(t, "++", value.NewStr("a"), value.NewStr("b"))
		if !ok || !results[0].Equal(value.NewStr("ab")) {
			t.Errorf("++ = %v, %v, want ab, true", results, ok)
		}
	})
	t.Run("concat_lists", func(t *testing.T) {
		results, ok := callPure(t, "++",
			value.NewList([]value.Value{value.NewInt(1)}),
			value.NewList([]value.Value{value.NewInt(2)}))
		want := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
		if !ok || !results[0].Equal(want) {
			t.Errorf("++ = %v, %v, want %v, true", results, ok, want)
		}
	})
}

func TestForeachAccumulatesOverAList(t *testing.T) {
	env := newMockEnv()
	env.SetName("acc", value.NewInt(0))
	plus := wordOf(t, "+")
	accumulate := &value.BuiltinWord{
		Name:  "accumulate",
		Arity: -1,
		Direct: func(e value.EnvOps) {
			item := e.Pop()
			acc, _ := e.GetName("acc")
			e.Push(acc)
			e.Push(item)
			e.Invoke(plus)
			e.SetName("acc", e.Pop())
		},
	}
	env.Push(value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}))
	env.Push(accumulate)
	wordOf(t, "foreach").Direct(env)
	acc, _ := env.GetName("acc")
	if !acc.Equal(value.NewInt(6)) {
		t.Errorf("acc = %v, want 6", acc)
	}
}

func TestSetDefaultOnlyBindsWhenUnset(t *testing.T) {
	env := newMockEnv()
	env.SetName("x", value.NewInt(1))
	env.Push(value.NewStr("x"))
	env.Push(value.NewInt(99))
	wordOf(t, "set_default").Direct(env)
	env.Push(value.NewStr("y"))
	env.Push(value.NewInt(2))
	wordOf(t, "set_default").Direct(env)

	x, _ := env.GetName("x")
	y, _ := env.GetName("y")
	if !x.Equal(value.NewInt(1)) {
		t.Errorf("x = %v, want 1 (unchanged)", x)
	}
	if !y.Equal(value.NewInt(2)) {
		t.Errorf("y = %v, want 2", y)
	}
}

func TestStringsPureWords(t *testing.T) {
	t.Run("ord_and_chr_round_trip", func(t *testing.T) {
		ordResults, ok := callPure(t, "ord", value.NewStr("A"))
		if !ok || !ordResults[0].Equal(value.NewInt(65)) {
			t.Fatalf("ord(A) = %v, %v, want 65, true", ordResults, ok)
		}
		chrResults, ok := callPure(t, "chr", ordResults[0])
		if !ok || !chrResults[0].Equal(value.NewStr("A")) {
			t.Errorf("chr(65) = %v, %v, want A, true", chrResults, ok)
		}
	})
	t.Run("str_join", func(t *testing.T) {
		results, ok := callPure(t, "str_join", value.NewStr("-"),
			value.NewList([]value.Value{value.NewStr("a"), value.NewStr("b")}))
		if !ok || !results[0].Equal(value.NewStr("a-b")) {
			t.Errorf("str_join = %v, %v, want a-b, true", results, ok)
		}
	})
	t.Run("parse_int_valid", func(t *testing.T) {
		results, ok := callPure(t, "parse_int", value.NewStr("42"))
		if !ok || !results[0].Equal(value.NewInt(42)) {
			t.Errorf("parse_int(42) = %v, %v, want 42, true", results, ok)
		}
	})
	t.Run("parse_int_invalid_yields_error_const", func(t *testing.T) {
		results, ok := callPure(t, "parse_int", value.NewStr("nope"))
		if !ok || !results[0].Equal(value.E) {
			t.Errorf("parse_int(nope) = %v, %v, want $E, true", results, ok)
		}
	})
}

func TestHashingPureWords(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{"md5", "md5", "900150983cd24fb0d6963f7d28e17f72"},
		{"sha1", "sha1", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", "sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"ripemd160", "ripemd160", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, ok := callPure(t, tt.word, value.NewStr("abc"))
			if !ok || results[0].String() != tt.want {
				t.Errorf("%s(abc) = %v, %v, want %s, true", tt.word, results, ok, tt.want)
			}
		})
	}
}

func TestBase64AndHexRoundTrip(t *testing.T) {
	enc, ok := callPure(t, "b64encode", value.NewStr("abc"))
	if !ok || !enc[0].Equal(value.NewStr("YWJj")) {
		t.Fatalf("b64encode(abc) = %v, %v, want YWJj, true", enc, ok)
	}
	dec, ok := callPure(t, "b64decode", enc[0])
	if !ok || !dec[0].Equal(value.NewStr("abc")) {
		t.Errorf("b64decode round trip = %v, %v, want abc, true", dec, ok)
	}
}

func TestHexdecodeOfMalformedInputYieldsErrorConst(t *testing.T) {
	results, ok := callPure(t, "hexdecode", value.NewStr("zz"))
	if !ok || !results[0].Equal(value.E) {
		t.Errorf("hexdecode(zz) = %v, %v, want $E, true", results, ok)
	}
}

func TestCryptThenCryptCheckRoundTrips(t *testing.T) {
	hashResults, ok := callPure(t, "crypt", value.NewStr("hunter2"), value.NewStr(""))
	if !ok {
		t.Fatalf("crypt(hunter2, \"\") failed")
	}
	checkResults, ok := callPure(t, "crypt_check", value.NewStr("hunter2"), hashResults[0])
	if !ok || !checkResults[0].Equal(value.NewInt(1)) {
		t.Errorf("crypt_check = %v, %v, want 1, true", checkResults, ok)
	}
}

func TestCryptWithExplicitCostRoundTrips(t *testing.T) {
	hashResults, ok := callPure(t, "crypt", value.NewStr("hunter2"), value.NewStr("4"))
	if !ok {
		t.Fatalf("crypt(hunter2, \"4\") failed")
	}
	checkResults, ok := callPure(t, "crypt_check", value.NewStr("hunter2"), hashResults[0])
	if !ok || !checkResults[0].Equal(value.NewInt(1)) {
		t.Errorf("crypt_check = %v, %v, want 1, true", checkResults, ok)
	}
}

func TestCryptWithMalformedCostFails(t *testing.T) {
	_, ok := callPure(t, "crypt", value.NewStr("hunter2"), value.NewStr("not-a-number"))
	if ok {
		t.Error("crypt(hunter2, \"not-a-number\") should fail, not succeed")
	}
}

func TestAsSrcRendersABlockBackToSource(t *testing.T) {
	block := value.NewCodeBlock(nil)
	results, ok := callPure(t, "as_src", block)
	if !ok || !results[0].Equal(value.NewStr("{\n}")) {
		t.Errorf("as_src(empty block) = %v, %v, want {\\n}, true", results, ok)
	}
}

func TestSetHelpThenHelpRoundTrips(t *testing.T) {
	block := value.NewCodeBlock(nil)
	_, ok := callPure(t, "set_help", block, value.NewStr("increments"))
	if !ok {
		t.Fatalf("set_help failed")
	}
	results, ok := callPure(t, "help", block)
	if !ok || !results[0].Equal(value.NewStr("increments")) {
		t.Errorf("help = %v, %v, want increments, true", results, ok)
	}
}

func TestHelpOnABuiltinWordReadsItsHelpText(t *testing.T) {
	grab := wordOf(t, "grab")
	results, ok := callPure(t, "help", grab)
	if !ok || !results[0].Equal(value.NewStr(grab.Help)) {
		t.Errorf("help(grab) = %v, %v, want %q, true", results, ok, grab.Help)
	}
}

func TestEvalDirectWordIsIdentityOnANonBlock(t *testing.T) {
	env := newMockEnv()
	env.Push(value.NewInt(5))
	wordOf(t, "eval").Direct(env)
	if got := env.Pop(); !got.Equal(value.NewInt(5)) {
		t.Errorf("eval(5) = %v, want 5", got)
	}
}

func TestIODirectWords(t *testing.T) {
	env := newMockEnv()
	env.toRead = "hi"
	wordOf(t, "read").Direct(env)
	if got := env.Pop(); !got.Equal(value.NewStr("hi")) {
		t.Errorf("read pushed %v, want hi", got)
	}

	env.Push(value.NewStr("hello"))
	wordOf(t, "print").Direct(env)
	if len(env.printed) != 1 || env.printed[0] != "hello" {
		t.Errorf("printed = %v, want [hello]", env.printed)
	}

	env.Push(value.NewStr("world"))
	wordOf(t, "println").Direct(env)
	if len(env.printed) != 2 || env.printed[1] != "world\n" {
		t.Errorf("printed = %v, want a trailing world\\n", env.printed)
	}
}

func TestImportReadsParsesAndBindsAFile(t *testing.T) {
	SetParser(parser.Parse)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greet.stekk"), []byte("42"), 0o644); err != nil {
		t.Fatal(err)
	}
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)

	env := newMockEnv()
	env.Push(value.NewStr("greet"))
	wordOf(t, "import").Direct(env)

	pushed := env.Pop()
	block, ok := pushed.(*value.CodeBlock)
	if !ok {
		t.Fatalf("import pushed %#v, want *value.CodeBlock", pushed)
	}
	bound, ok := env.GetName("greet")
	if !ok || bound != value.Value(block) {
		t.Errorf("import did not bind greet to the pushed block")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("block has %d statements, want 1", len(block.Stmts))
	}
}
