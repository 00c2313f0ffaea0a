package pollyskema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/i18n"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "/", pollyskema.Root().Pointer())

	p := pollyskema.Root().Field("Voices").Index(2).Field("a/b~c")
	assert.Equal(t, "/Voices/2/a~1b~0c", p.Pointer())
	assert.Equal(t, p.Pointer(), p.String())

	// appending never aliases the parent
	base := pollyskema.Root().Field("x")
	_ = base.Field("y")
	assert.Equal(t, "/x/z", base.Field("z").Pointer())

	it := p.Issue(pollyskema.CodeTooSmall, "min", 1, "got", 0)
	assert.Equal(t, "/Voices/2/a~1b~0c", it.Path)
	assert.Equal(t, map[string]any{"min": 1, "got": 0}, it.Params)
	assert.Equal(t, "value is too small", it.Message)

	iss := pollyskema.Root().Field("v").Rebase(errors.New("boom"))
	assert.Equal(t, []string{"/v"}, iss.Paths())
}

type recordingTranslator struct{ got map[string]string }

func (r *recordingTranslator) Message(code string, data map[string]string) string {
	r.got = data
	return code
}

func TestPathIssue_PassesParamsToTranslator(t *testing.T) {
	it := pollyskema.Root().Issue(pollyskema.CodeInvalidType, "expected", "string")
	assert.Equal(t, "invalid type (expected string)", it.Message)

	rec := &recordingTranslator{}
	i18n.SetTranslator(rec)
	t.Cleanup(func() { i18n.SetTranslator(nil) })

	it = pollyskema.Root().Field("n").Issue(pollyskema.CodeTooBig, "max", 10, "got", 12.5)
	assert.Equal(t, map[string]string{"max": "10", "got": "12.5"}, rec.got)
	assert.Equal(t, pollyskema.CodeTooBig, it.Message)
}
