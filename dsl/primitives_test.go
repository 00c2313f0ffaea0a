package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/reoring/pollyskema"
	g "github.com/reoring/pollyskema/dsl"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := pollyskema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got %v", err)
	}
	return iss[0].Code
}

func TestString_Basic(t *testing.T) {
	s := g.String()
	ctx := context.Background()

	v, err := s.Parse(ctx, "hello")
	if err != nil || v != "hello" {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}

	type voiceID string
	v, err = s.Parse(ctx, voiceID("Joanna"))
	if err != nil || v != "Joanna" {
		t.Fatalf("named string: v=%v err=%v", v, err)
	}

	_, err = s.Parse(ctx, 1)
	if code := firstCode(t, err); code != pollyskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %s", code)
	}
}

func TestBool_Basic(t *testing.T) {
	s := g.Bool()
	ctx := context.Background()

	v, err := s.Parse(ctx, true)
	if err != nil || v != true {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}
	v, err = s.Parse(ctx, "false")
	if err != nil || v != false {
		t.Fatalf("string bool: v=%v err=%v", v, err)
	}
	if _, err = s.Parse(ctx, "nope"); err == nil {
		t.Fatalf("expected error for invalid type")
	}
}

func TestInt_Coercion(t *testing.T) {
	s := g.Int()
	ctx := context.Background()

	cases := []struct {
		in   any
		want int64
	}{
		{int64(3), 3},
		{7, 7},
		{uint8(9), 9},
		{float64(22050), 22050},
		{json.Number("16000"), 16000},
		{" 42 ", 42},
	}
	for _, c := range cases {
		v, err := s.Parse(ctx, c.in)
		if err != nil {
			t.Fatalf("parse %v: %v", c.in, err)
		}
		if v != c.want {
			t.Fatalf("parse %v: want %d got %v (%T)", c.in, c.want, v, v)
		}
	}
	for _, bad := range []any{1.5, "x", true, nil} {
		if _, err := s.Parse(ctx, bad); err == nil {
			t.Fatalf("expected error for %v", bad)
		}
	}
}

func TestFloat_Coercion(t *testing.T) {
	s := g.Float()
	ctx := context.Background()

	v, err := s.Parse(ctx, int64(2))
	if err != nil || v != float64(2) {
		t.Fatalf("int: v=%v err=%v", v, err)
	}
	v, err = s.Parse(ctx, "1.25")
	if err != nil || v != 1.25 {
		t.Fatalf("string: v=%v err=%v", v, err)
	}
	if _, err := s.Parse(ctx, true); err == nil {
		t.Fatalf("bool must not be a number")
	}
}

func TestMinMax(t *testing.T) {
	s := g.Int().Min(1).Max(10)
	ctx := context.Background()

	if _, err := s.Parse(ctx, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := s.Parse(ctx, 0)
	if code := firstCode(t, err); code != pollyskema.CodeTooSmall {
		t.Fatalf("want too_small got %s", code)
	}
	_, err = s.Parse(ctx, 11)
	if code := firstCode(t, err); code != pollyskema.CodeTooBig {
		t.Fatalf("want too_big got %s", code)
	}

	js := s.JSONSchema()
	if js.Type != "integer" || js.Minimum == nil || *js.Minimum != 1 || js.Maximum == nil || *js.Maximum != 10 {
		t.Fatalf("unexpected JSON Schema: %+v", js)
	}
}

func TestLength(t *testing.T) {
	s := g.String().MinLen(1).MaxLen(3)
	ctx := context.Background()

	if _, err := s.Parse(ctx, "日本語"); err != nil {
		t.Fatalf("runes counted, got %v", err)
	}
	_, err := s.Parse(ctx, "")
	if code := firstCode(t, err); code != pollyskema.CodeTooShort {
		t.Fatalf("want too_short got %s", code)
	}
	_, err = s.Parse(ctx, "abcd")
	if code := firstCode(t, err); code != pollyskema.CodeTooLong {
		t.Fatalf("want too_long got %s", code)
	}
}

func TestEnum(t *testing.T) {
	s := g.Enum("standard", "neural")
	ctx := context.Background()

	if v, err := s.Parse(ctx, "neural"); err != nil || v != "neural" {
		t.Fatalf("v=%v err=%v", v, err)
	}
	_, err := s.Parse(ctx, "turbo")
	iss, _ := pollyskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pollyskema.CodeInvalidEnum || iss[0].Params["got"] != "turbo" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if js := s.JSONSchema(); len(js.Enum) != 2 || js.Enum[0] != "standard" {
		t.Fatalf("enum not exported: %+v", js)
	}
}

func TestPattern(t *testing.T) {
	s := g.String().Pattern(`^[A-Za-z0-9]{1,20}$`)
	ctx := context.Background()

	if _, err := s.Parse(ctx, "myLexicon1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := s.Parse(ctx, "no spaces")
	if code := firstCode(t, err); code != pollyskema.CodePattern {
		t.Fatalf("want pattern got %s", code)
	}
	if s.JSONSchema().Pattern == "" {
		t.Fatalf("pattern not exported")
	}
}

func TestNullable(t *testing.T) {
	ctx := context.Background()

	if _, err := g.String().Parse(ctx, nil); err == nil {
		t.Fatalf("plain String must reject nil")
	}
	s := g.String().MinLen(2).Nullable()
	v, err := s.Parse(ctx, nil)
	if err != nil || v != nil {
		t.Fatalf("nullable: v=%v err=%v", v, err)
	}
	if !s.JSONSchema().Nullable {
		t.Fatalf("nullable not exported")
	}
}

func TestRefine(t *testing.T) {
	ctx := context.Background()
	even := g.Int().Refine("even", func(_ context.Context, v any) error {
		if v.(int64)%2 != 0 {
			return errOdd
		}
		return nil
	})
	if _, err := even.Parse(ctx, 4); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := even.Parse(ctx, 3)
	iss, _ := pollyskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != pollyskema.CodeBusinessRule || iss[0].Hint != "even" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

type oddErr struct{}

func (oddErr) Error() string { return "odd" }

var errOdd = oddErr{}
