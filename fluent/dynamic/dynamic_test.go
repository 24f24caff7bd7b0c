//go:build unit

package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owner struct {
	Name string
}

type command struct {
	Subject any
	Owner   *owner
	Tags    []string
	Labels  map[string]string
	Scores  map[int]float64
	secret  string
}

func (c command) Title() string { return "cmd:" + c.secret }

func (c *command) Describe() string { return "described" }

func (c command) Rename(name string) string { return name }

func (c command) Explode() string { panic("boom") }

type embedded struct {
	*owner
}

func newCommand() *command {
	return &command{
		Subject: "test",
		Owner:   &owner{Name: "ana"},
		Tags:    []string{"a", "b"},
		Labels:  map[string]string{"env": "ci"},
		Scores:  map[int]float64{7: 0.5},
		secret:  "s",
	}
}

func requireAbsent(t *testing.T, v Value, path string, cause error) {
	t.Helper()

	a, ok := v.Absent()
	require.True(t, ok, "expected absent value, got %#v", v.Interface())
	assert.Equal(t, path, a.Path)
	assert.ErrorIs(t, a.Cause, cause)
	assert.True(t, v.IsAbsent())
}

func TestResolveWithoutPathReturnsSubject(t *testing.T) {
	t.Parallel()

	v := Resolve("test")
	assert.False(t, v.IsAbsent())
	assert.Equal(t, "test", v.Interface())

	v = Resolve(nil)
	assert.False(t, v.IsAbsent())
	assert.Nil(t, v.Interface())
}

func TestResolveMembers(t *testing.T) {
	t.Parallel()

	cmd := newCommand()

	assert.Equal(t, "test", Resolve(cmd, "Subject").Interface())
	assert.Equal(t, "ana", Resolve(cmd, "Owner.Name").Interface())
	assert.Equal(t, "ana", Resolve(cmd, "Owner", "Name").Interface())
	assert.Equal(t, "b", Resolve(cmd, "Tags.1").Interface())
	assert.Equal(t, "ci", Resolve(cmd, "Labels.env").Interface())
	assert.Equal(t, 0.5, Resolve(cmd, "Scores.7").Interface())
	assert.Equal(t, "cmd:s", Resolve(cmd, "Title").Interface())
	assert.Equal(t, "described", Resolve(cmd, "Describe").Interface())
	assert.Equal(t, "cmd:s", Resolve(*cmd, "Title").Interface())
}

func TestResolveNilMemberIsNotAbsent(t *testing.T) {
	t.Parallel()

	v := Resolve(&command{}, "Subject")

	assert.False(t, v.IsAbsent())
	assert.Nil(t, v.Interface())
}

func TestResolveAccessFailuresAreAbsent(t *testing.T) {
	t.Parallel()

	cmd := newCommand()

	requireAbsent(t, Resolve(cmd, "Missing"), "Missing", ErrMemberNotFound)
	requireAbsent(t, Resolve(cmd, "secret"), "secret", ErrUnexported)
	requireAbsent(t, Resolve(&command{}, "Owner.Name"), "Owner.Name", ErrNilIntermediate)
	requireAbsent(t, Resolve(nil, "Anything"), "Anything", ErrNilIntermediate)
	requireAbsent(t, Resolve(cmd, "Tags.5"), "Tags.5", ErrIndexOutOfRange)
	requireAbsent(t, Resolve(cmd, "Tags.first"), "Tags.first", ErrMemberNotFound)
	requireAbsent(t, Resolve(cmd, "Labels.region"), "Labels.region", ErrMemberNotFound)
	requireAbsent(t, Resolve(cmd, "Scores.x"), "Scores.x", ErrMemberNotFound)
	requireAbsent(t, Resolve(cmd, "Rename"), "Rename", ErrUnsupportedShape)
	requireAbsent(t, Resolve(42, "Value"), "Value", ErrMemberNotFound)
	requireAbsent(t, Resolve(embedded{}, "Name"), "Name", ErrNilIntermediate)
	requireAbsent(t, Resolve(map[int8]string{44: "forty-four"}, "300"), "300", ErrMemberNotFound)
	requireAbsent(t, Resolve(map[uint8]string{44: "forty-four"}, "300"), "300", ErrMemberNotFound)
	requireAbsent(t, Resolve(map[uint16]string{1: "one"}, "-1"), "-1", ErrMemberNotFound)
}

func TestResolveNarrowMapKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "forty-four", Resolve(map[int8]string{44: "forty-four"}, "44").Interface())
	assert.Equal(t, "max", Resolve(map[uint8]string{255: "max"}, "255").Interface())
}

func TestResolveStopsAtFirstAbsentSegment(t *testing.T) {
	t.Parallel()

	requireAbsent(t, Resolve(newCommand(), "Missing.Name.Deeper"), "Missing", ErrMemberNotFound)
}

func TestResolvePropagatesMethodPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "boom", func() {
		Resolve(newCommand(), "Explode")
	})
}

func TestValueMember(t *testing.T) {
	t.Parallel()

	v := Of(newCommand()).Member("Owner").Member("Name")
	assert.Equal(t, "ana", v.Interface())

	missing := Of(newCommand()).Member("Nope").Member("Name")
	requireAbsent(t, missing, "Nope", ErrMemberNotFound)
}

func TestAbsentRendering(t *testing.T) {
	t.Parallel()

	v := Resolve(newCommand(), "Missing")

	a, ok := v.Interface().(Absent)
	require.True(t, ok)
	assert.Contains(t, a.String(), "absent Missing")

	roundTrip := Of(a)
	assert.True(t, roundTrip.IsAbsent())
}
