package polish_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/polish"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"paren", "(1)", 1},
		{"paren2", "((1))", 1},
		{"add", "1+2", 3},
		{"add-paren", "((1+2))", 3},
		{"add-sides", "(1)+(2)", 3},
		{"add-deep", "((((1))+((2))))", 3},
		{"add3", "4+5+6", 4 + 5 + 6},
		{"sub3", "4-5-6", 4 - 5 - 6},
		{"mul3", "4*5*6", 4 * 5 * 6},
		{"div3", "8/4/2", 1},
		{"mixed", "2+5*3-4", 13},
		{"mixed-lgroup", "(2+5)*3-4", 17},
		{"mixed-rgroup", "2+5*(3-4)", -3},
		{"mixed-inner", "2+(5*3-4)", 13},
		{"mixed-outer", "(2+5*3)-4", 13},
		{"mixed-both", "(2+5)*(3-4)", -7},
		{"mixed-nested", "((2+(5*3))-4)", 13},
		{"long", "1+4*2+(7-3)/2", 11},
		{"long-nested", "1+4*(2+(7-3))/2", 13},
		{"group", "(1+2)*3", 9},
		{"decimal", "1*1.5", 1.5},
		{"huge", "1e400+1", math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := polish.Parse(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			r, ok := n.Evaluate()
			if !ok {
				t.Fatalf("%q did not reduce, left %v", c.src, n)
			}
			if r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
			if !n.IsLeaf() {
				t.Errorf("%q reduced to %g but the tree still has children", c.src, r)
			}
		})
	}
}

func TestEvaluateFormat(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
	}{
		{"half", "1*1.5", "1.5"},
		{"three-halves", "3/2", "1.5"},
		{"half-div", "1/2", "0.5"},
		{"quarter", "1/4", "0.25"},
		{"eighth", "1/8", "0.125"},
		{"third", "1/3", "0.333333333333333"},
		{"two-thirds", "2/3", "0.666666666666667"},
		{"int", "2+5*3-4", "13"},
		{"neg", "3-4", "-1"},
		{"big", "10000000000000000/1", "10000000000000000"},
		{"small", "1/10000000000000000", "0.0000000000000001"},
		{"big-frac", "(3/2)*(10000000000000000/1)", "15000000000000000"},
		{"big-product", "123456789*1000000000", "123456789000000000"},
		{"big-round", "1/3*1000000000000000000", "333333333333333000"},
		{"tiny-round", "2/3/1000000000000", "0.000000000000666666666666667"},
		{"inf", "1/0", "+Inf"},
		{"neg-inf", "0-1/0", "-Inf"},
		{"nan", "0/0", "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := polish.Parse(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			if _, ok := n.Evaluate(); !ok {
				t.Fatalf("%q did not reduce, left %v", c.src, n)
			}
			if n.Text() != c.text {
				t.Errorf("%q reduced to wrong text: want %q, got %q", c.src, c.text, n.Text())
			}
		})
	}
}

func TestEvaluateDivZero(t *testing.T) {
	n, err := polish.Parse("1/0")
	if err != nil {
		t.Fatal(err)
	}
	r, ok := n.Evaluate()
	if !ok {
		t.Fatal("1/0 did not reduce")
	}
	if !math.IsInf(r, 1) {
		t.Errorf("1/0 should be +Inf, got %g", r)
	}

	n, err = polish.Parse("0/0")
	if err != nil {
		t.Fatal(err)
	}
	r, ok = n.Evaluate()
	if !ok {
		t.Fatal("0/0 did not reduce")
	}
	if !math.IsNaN(r) {
		t.Errorf("0/0 should be NaN, got %g", r)
	}
}

func TestEvaluatePartial(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rem  string
	}{
		{"name", "A", "A"},
		{"add", "A+B", "(A + B)"},
		{"eq", "A=B", "(A = B)"},
		{"lgroup", "(A+B)*C", "((A + B) * C)"},
		{"eq-lhs", "(A+B)=C", "((A + B) = C)"},
		{"eq-inner", "(A=B)+C", "((A = B) + C)"},
		{"assign", "x=a*(b+c)", "(x = (a * (b + c)))"},
		{"assign-num", "x=1+2", "(x = 3)"},
		{"assign-sym", "x=1+a", "(x = (1 + a))"},
		{"eq-nums", "1=1", "(1 = 1)"},
		{"chain-x-first", "x+1+2=3+4", "(((x + 1) + 2) = 7)"},
		{"chain-x-paren", "x+(1+2)=3+4", "((x + 3) = 7)"},
		{"chain-x-lgroup", "(x+1)+2=3+4", "(((x + 1) + 2) = 7)"},
		{"chain-x-last", "1+2+x=3+4", "((3 + x) = 7)"},
		{"chain-x-rgroup", "1+(2+x)=3+4", "((1 + (2 + x)) = 7)"},
		{"chain-group-x", "(1+2)+x=3+4", "((3 + x) = 7)"},
		{"eq3", "x=1=2", "((x = 1) = 2)"},
		{"x-plus-one", "x+1", "(x + 1)"},
		{"sym-mul", "x+1*2", "(x + 2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := polish.Parse(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			if r, ok := n.Evaluate(); ok {
				t.Fatalf("%q reduced to %g", c.src, r)
			}
			if got := n.Infix(); got != c.rem {
				t.Errorf("%q left wrong expression: want %q, got %q", c.src, c.rem, got)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	cases := []string{"(1+2)*3", "x+1", "x+(1+2)=3+4", "1/0", "0/0", "a", "7"}
	for _, src := range cases {
		n, err := polish.Parse(src)
		if err != nil {
			t.Fatal(src, "failed to parse:", err)
		}
		r1, ok1 := n.Evaluate()
		s1 := n.Infix()
		r2, ok2 := n.Evaluate()
		s2 := n.Infix()
		if ok1 != ok2 || s1 != s2 {
			t.Errorf("%q changed on second evaluation: %t %q vs %t %q", src, ok1, s1, ok2, s2)
		}
		if ok1 && r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Errorf("%q gave %g then %g", src, r1, r2)
		}
	}
}

func TestContextDigits(t *testing.T) {
	cases := []struct {
		digits int
		src    string
		text   string
	}{
		{3, "1/3", "0.333"},
		{3, "2/3", "0.667"},
		{1, "1/3+0", "0.3"},
		{-1, "1/3", "0.3333333333333333"},
		{-1, "0.1+0.2", "0.30000000000000004"},
		{polish.DefaultDigits, "0.1+0.2", "0.3"},
		{0, "7/3", "2"},
		{2, "123456/1", "120000"},
		{-1, "1e20*10", "1000000000000000000000"},
	}
	for _, c := range cases {
		ctx := polish.NewContext(polish.Digits(c.digits))
		if ctx.Digits() != c.digits {
			t.Errorf("context has %d digits, want %d", ctx.Digits(), c.digits)
		}
		n, err := polish.Parse(c.src)
		if err != nil {
			t.Fatal(c.src, "failed to parse:", err)
		}
		if _, ok := ctx.Evaluate(n); !ok {
			t.Errorf("%q did not reduce", c.src)
			continue
		}
		if n.Text() != c.text {
			t.Errorf("%q with %d digits: want %q, got %q", c.src, c.digits, c.text, n.Text())
		}
	}
}

func TestContextTrace(t *testing.T) {
	var got []polish.Reduction
	ctx := polish.NewContext(polish.Trace(func(r polish.Reduction) { got = append(got, r) }))
	n, err := polish.Parse("(1+2)*3=x")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ctx.Evaluate(n); ok {
		t.Fatal("equation reduced")
	}
	want := []polish.Reduction{
		{Op: "+", Left: "1", Right: "2", Result: "3", Col: 2},
		{Op: "*", Left: "3", Right: "3", Result: "9", Col: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("wrong reductions: want %+v, got %+v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reduction %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestContextClone(t *testing.T) {
	a := polish.NewContext(polish.Digits(4))
	b := a.Clone(polish.Digits(8), nil)
	if a.Digits() != 4 || b.Digits() != 8 {
		t.Errorf("clone changed the original: %d, %d", a.Digits(), b.Digits())
	}
	if c := b.Clone(); c.Digits() != 8 {
		t.Errorf("clone lost digits: %d", c.Digits())
	}
	if got := a.Format(math.Pi); got != "3.142" {
		t.Errorf("wrong format of pi: %q", got)
	}
}

func TestEvalString(t *testing.T) {
	r, rem, err := polish.EvalString(" ( 1 + 2 ) * 3 ")
	if err != nil || rem != "" || r != 9 {
		t.Errorf("wrong result: %g, %q, %v", r, rem, err)
	}
	r, rem, err = polish.EvalString("x + 1 * 2")
	if err != nil || rem != "(x + 2)" || r != 0 {
		t.Errorf("wrong result: %g, %q, %v", r, rem, err)
	}
	_, _, err = polish.EvalString("(1 + 2")
	if err == nil || !strings.Contains(err.Error(), "unbalanced") {
		t.Errorf("wrong error: %v", err)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	b.Run("nums", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			n, _ := polish.Parse("1+4*(2+(7-3))/2")
			n.Evaluate()
		}
	})
	b.Run("syms", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			n, _ := polish.Parse("x+4*(2+(y-3))/2")
			n.Evaluate()
		}
	})
}

func Example() {
	n, err := polish.Parse("x = (1 + 2) * 3 - y", polish.StripSpace())
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Postfix())
	fmt.Println(n.Infix())
	fmt.Println(n.Prefix())
	if _, ok := n.Evaluate(); !ok {
		fmt.Println(n)
	}

	// Output:
	// x 1 2 + 3 * y - =
	// (x = (((1 + 2) * 3) - y))
	// = x - * + 1 2 3 y
	// (x = (9 - y))
}
