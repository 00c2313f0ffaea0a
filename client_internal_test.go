package pollyskema

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	js "github.com/reoring/pollyskema/jsonschema"
)

type rejectAll struct{}

func (rejectAll) Parse(context.Context, any) (any, error) {
	return nil, Issues{{Path: "/", Code: CodeInvalidType}}
}
func (rejectAll) JSONSchema() *js.Schema { return &js.Schema{} }

// withoutClient runs fn with no process-wide client registered.
func withoutClient(t *testing.T, fn func()) {
	t.Helper()
	prev := currentClient.Swap(nil)
	defer currentClient.Store(prev)
	fn()
}

func TestCurrentClient_Unregistered(t *testing.T) {
	withoutClient(t, func() {
		c, err := CurrentClient(context.Background())
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, ErrNoClient))
		assert.True(t, trustAPIResponses(context.Background()), "fails open")

		SetCurrent(nil)
		assert.Nil(t, GetCurrent(), "nil is ignored")
	})
}

func TestConstruct_UnregisteredTolerates(t *testing.T) {
	l, hook := test.NewNullLogger()
	SetLogger(l)
	defer SetLogger(nil)

	s := MustSchema("Bad", Field{Name: "a", Type: rejectAll{}}, Field{Name: "b", Type: rejectAll{}})
	withoutClient(t, func() {
		m, err := Construct(context.Background(), s, map[string]any{"a": 1, "b": 2})
		require.NoError(t, err)
		assert.Equal(t, 1, m.values["a"])
		require.Len(t, hook.AllEntries(), 1)
		assert.Equal(t, 2, hook.LastEntry().Data["count"])
	})
}

func TestNewSchema_Errors(t *testing.T) {
	_, err := NewSchema("S", Field{Name: ""})
	assert.Error(t, err)
	_, err = NewSchema("S", Field{Name: "a"})
	assert.Error(t, err, "type required")
	_, err = NewSchema("S", Field{Name: "a", Type: rejectAll{}}, Field{Name: "a", Type: rejectAll{}})
	assert.Error(t, err)
	_, err = NewSchema("S", Field{Name: "a", Type: rejectAll{}, HasDefault: true, Default: 1})
	assert.Error(t, err, "defaults are validated")
}

func TestRebase(t *testing.T) {
	iss := Rebase("/voices", Issues{{Path: "/"}, {Path: "/0/id"}, {Path: "name"}})
	assert.Equal(t, []string{"/voices", "/voices/0/id", "/voices/name"}, iss.Paths())

	plain := Rebase("/x", errors.New("boom"))
	require.Len(t, plain, 1)
	assert.Equal(t, CodeParseError, plain[0].Code)
	assert.Nil(t, Rebase("/x", nil))
}

func TestIssues_Error(t *testing.T) {
	iss := Issues{{Path: "/a", Code: "x"}, {Path: "/b", Code: "y"}, {Path: "/c", Code: "z"}, {Path: "/d", Code: "w"}}
	assert.Equal(t, "x at /a; y at /b; z at /c; ... (total 4)", iss.Error())
}
