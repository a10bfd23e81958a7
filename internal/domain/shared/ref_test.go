package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	BaseEntity
	Name string
}

func TestRefFromID_Absent(t *testing.T) {
	r := RefFromID[widget](nil)

	assert.Equal(t, RefUnset, r.Kind())
	assert.False(t, r.IsSet())
	assert.Nil(t, r.IDPtr())
	_, ok := r.ID()
	assert.False(t, ok)
	assert.Equal(t, Ref[widget]{}, r)
}

func TestRefFromID_CarriesOnlyID(t *testing.T) {
	id := int64(42)
	r := RefFromID[widget](&id)

	assert.Equal(t, RefByID, r.Kind())
	got, ok := r.ID()
	require.True(t, ok)
	assert.Equal(t, int64(42), got)

	v, loaded := r.Loaded()
	assert.False(t, loaded)
	assert.Nil(t, v)

	id = 7
	assert.Equal(t, int64(42), *r.IDPtr(), "stub must not alias the caller's id")
}

func TestLoadedRef(t *testing.T) {
	w := &widget{BaseEntity: BaseEntity{ID: 3}, Name: "Alice"}
	r := LoadedRef(w)

	assert.Equal(t, RefLoaded, r.Kind())
	id, _ := r.ID()
	assert.Equal(t, int64(3), id)
	v, ok := r.Loaded()
	require.True(t, ok)
	assert.Same(t, w, v)

	assert.Equal(t, RefUnset, LoadedRef[widget](nil).Kind())
}

func TestRefLabel(t *testing.T) {
	name := func(w *widget) string { return w.Name }

	tests := []struct {
		name string
		ref  Ref[widget]
		want *string
	}{
		{"unset", Ref[widget]{}, nil},
		{"stub", RefTo[widget](5), nil},
		{"loaded without label", LoadedRef(&widget{BaseEntity: BaseEntity{ID: 5}}), nil},
		{"loaded", LoadedRef(&widget{BaseEntity: BaseEntity{ID: 5}, Name: "Bob"}), StringPtr("Bob")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefLabel(tt.ref, name))
		})
	}
}

func TestRef_String(t *testing.T) {
	assert.Equal(t, "unset", Ref[widget]{}.String())
	assert.Equal(t, "reference(9)", RefTo[widget](9).String())
}

func TestPatchHelpers(t *testing.T) {
	notes := "old"
	dst := &notes
	PatchPtr(&dst, nil)
	assert.Equal(t, "old", *dst)

	PatchPtr(&dst, StringPtr("new"))
	assert.Equal(t, "new", *dst)
	assert.Equal(t, "old", notes)

	summary := "A"
	PatchValue(&summary, nil)
	assert.Equal(t, "A", summary)
	PatchValue(&summary, StringPtr("B"))
	assert.Equal(t, "B", summary)

	ref := LoadedRef(&widget{BaseEntity: BaseEntity{ID: 1}})
	PatchRef(&ref, nil)
	assert.Equal(t, RefLoaded, ref.Kind())
	id := int64(2)
	PatchRef(&ref, &id)
	assert.Equal(t, RefTo[widget](2), ref)
}

func TestValueHelpers(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "", StringValue(nil))
	assert.Nil(t, IDPtr(0))
	assert.Equal(t, int64(0), IDValue(nil))
	assert.Nil(t, Copy[int](nil))
	assert.Nil(t, CopyBytes(nil))

	b := []byte{1, 2}
	c := CopyBytes(b)
	c[0] = 9
	assert.Equal(t, byte(1), b[0])
}
