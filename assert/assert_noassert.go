//go:build noassert

package assert

func Disable() {
	// No op
}

func Enable() {
	// No op
}

func Enabled() bool {
	return false
}

func True(label string, result bool) {
	// No op
}

func TrueFunc(label string, assertion func() bool) {
	// No op
}
