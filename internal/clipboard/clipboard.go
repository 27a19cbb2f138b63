// Package clipboard copies text to the system clipboard, falling back to
// the OSC 52 escape sequence when no native tool is installed.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Copy places text on the clipboard and reports the method used.
func Copy(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("no content to copy")
	}
	if method, err := copyNative(text); err == nil {
		return method, nil
	}
	if err := copyOSC52(text); err != nil {
		return "", fmt.Errorf("no clipboard method available (install pbcopy, xclip, xsel, or wl-copy): %w", err)
	}
	return "osc52", nil
}

// copyNative tries platform clipboard tools in preference order.
func copyNative(text string) (string, error) {
	if runtime.GOOS == "darwin" {
		return "pbcopy", runClipCmd("pbcopy", nil, text)
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath("wl-copy"); err == nil {
			return "wl-copy", runClipCmd(path, nil, text)
		}
	}
	if path, err := exec.LookPath("xclip"); err == nil {
		return "xclip", runClipCmd(path, []string{"-selection", "clipboard"}, text)
	}
	if path, err := exec.LookPath("xsel"); err == nil {
		return "xsel", runClipCmd(path, []string{"--clipboard", "--input"}, text)
	}
	return "", fmt.Errorf("no clipboard command found")
}

func runClipCmd(name string, args []string, text string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// copyOSC52 emits the OSC 52 sequence on the controlling terminal. Inside
// tmux the sequence is wrapped in a DCS passthrough.
func copyOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	if os.Getenv("TMUX") != "" {
		seq = fmt.Sprintf("\x1bPtmux;\x1b%s\x1b\\", seq)
	}
	_, err = tty.WriteString(seq)
	return err
}
