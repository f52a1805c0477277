package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/nutriplate/internal/security"
)

const generatedSecretLength = 48

// RunGenerateSecretCommand prints a value suitable for SECRET_KEY.
func RunGenerateSecretCommand(out io.Writer) error {
	secret, err := security.GenerateSecret(generatedSecretLength)
	if err != nil {
		return fmt.Errorf("generate secret: %w", err)
	}
	fmt.Fprintln(out, secret)
	return nil
}
