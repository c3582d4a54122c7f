package configs

// Configurable is a setting type readable from config files under any of its keys.
type Configurable interface {
	ConfigKeys() []string
}

// Lookup returns the value of the first key set in the highest-precedence file.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	for _, key := range zero.ConfigKeys() {
		for v := range All[T](loader, key) {
			return v
		}
	}
	return zero
}
