// Package deploy copies the produced database to the web host. It shells out
// to scp so the operator's ssh config and agent just work.
package deploy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Scp transfers path to dest (user@host:dir form).
func Scp(ctx context.Context, path, dest string) error {
	cmd := exec.CommandContext(ctx, "scp", path, dest)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("scp %s to %s: %w", path, dest, err)
	}
	return nil
}
