package rotor

import "fmt"

// Variants lists the registered analysis strategy names.
func Variants() []string {
	return []string{"linear", "nonlinear"}
}

// ByName returns the analysis variant registered under name.
func ByName(name string) (Analyzer, error) {
	switch name {
	case "linear":
		return NewLinearAnalyzer(), nil
	case "nonlinear":
		return NewNonlinearAnalyzer(), nil
	default:
		return nil, fmt.Errorf("unknown analysis variant %q (have %v)", name, Variants())
	}
}
