package hashstring

// NullString is the default façade's value type: a nullable string with
// byte-exact equality, satisfying the `comparable` constraint store.Engine
// requires for its StageModify value-collision check (§9).
type NullString struct {
	Valid  bool
	String string
}

// Some wraps s as a present value.
func Some(s string) NullString {
	return NullString{Valid: true, String: s}
}

// None is the absent value, equal to a NullString's zero value.
var None = NullString{}
