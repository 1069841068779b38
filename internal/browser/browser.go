// Package browser opens links in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/logger"
)

// Opener opens a URL in a new browsing context
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string) error

// Open calls f
func (f OpenerFunc) Open(url string) error { return f(url) }

// System launches the platform's URL handler
type System struct{}

// Open starts the handler and returns without waiting for it
func (System) Open(url string) error {
	name, args := Command(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return perrors.BrowserOpenFailed(url, err)
	}
	logger.WithComponent("browser").Debug("opened", "url", url, "handler", name)
	go cmd.Wait()
	return nil
}

// Command returns the program and arguments that open url on goos
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
