// Package browser launches the user's default browser. The launch is a
// fire-and-forget side effect: callers treat failure as "copy the URL and
// open it manually", never as a state change.
package browser

import (
	"os/exec"
	"runtime"
)

// Open asks the platform's opener to load the given URL.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
