package shared

// StringPtr returns nil for an empty string and a pointer to s otherwise
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IDPtr returns nil for the zero identifier
func IDPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// IDValue dereferences p, returning 0 for nil
func IDValue(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// Copy returns a pointer to a copy of *p, or nil
func Copy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CopyBytes returns a copy of b; nil stays nil
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// PatchPtr replaces *dst with a copy of src when src is present
func PatchPtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = Copy(src)
	}
}

// PatchValue replaces *dst with *src when src is present
func PatchValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// PatchRef replaces the relation with a reference stub when id is present
func PatchRef[T any](dst *Ref[T], id *int64) {
	if id != nil {
		*dst = RefTo[T](*id)
	}
}
