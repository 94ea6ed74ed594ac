// Package open launches player URLs with the system handler or a configured browser.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anistream/anistream/constant"
	"github.com/anistream/anistream/key"
	"github.com/spf13/viper"
)

// URL opens rawURL with the browser set in the configuration, or the system handler.
// Only http and https URLs are opened.
func URL(rawURL string) error {
	if err := validate(rawURL); err != nil {
		return err
	}

	return StartWith(rawURL, viper.GetString(key.CliBrowser))
}

func validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("refusing to open %q: missing host", rawURL)
	}

	return nil
}

// StartWith opens input with app without waiting. An empty app means the system handler.
func StartWith(input, app string) error {
	var (
		cmd *exec.Cmd
		ok  bool
	)

	if app == "" {
		cmd, ok = command(input)
	} else {
		cmd, ok = commandWith(input, app)
	}

	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open-url", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		// cmd's start treats & as a command separator
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux, constant.Android:
		return exec.Command(app, input), true
	default:
		return nil, false
	}
}
