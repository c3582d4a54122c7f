package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// IsTest reports whether scopes built with this mode must avoid the network and user config files.
func (m Mode) IsTest() bool {
	return m == ModeDevelopment
}
